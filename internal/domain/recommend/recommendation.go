package recommend

import (
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes the two recommendation directions: jobs suggested to a
// user, and student talent suggested to an organization.
type Kind string

const (
	KindJob    Kind = "job"
	KindTalent Kind = "talent"
)

type Status string

const (
	StatusNew       Status = "new"
	StatusViewed    Status = "viewed"
	StatusApplied   Status = "applied"
	StatusContacted Status = "contacted"
	StatusIgnored   Status = "ignored"
)

// JobRecommendation links a user to a job. Visible and mutable only by the
// user it names; at most one active record per (user, job) pair.
type JobRecommendation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	JobID     uuid.UUID
	Score     float64
	Reason    string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TalentRecommendation links an organization to a candidate student. Same
// shape and uniqueness rule on the (organization, student) pair.
type TalentRecommendation struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	StudentID      uuid.UUID
	Score          float64
	Reason         string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
