package feature

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// JobFeature is the structured summary derived from a posting's free text.
// It is regenerable at any time from the posting and never hand-edited.
type JobFeature struct {
	JobID          uuid.UUID
	CategoryID     *uuid.UUID
	RequiredSkills []string
	Keywords       []string
}

// UserFeature holds a user's declared attributes. Behavior-derived statistics
// live in the behavior package; this struct is only what the user told us.
type UserFeature struct {
	UserID            uuid.UUID
	Major             string
	EducationLevel    EducationLevel
	PreferredLocation string
	PreferredJobType  string
	Skills            []string
	Interests         []string
	UpdatedAt         time.Time
}

type EducationLevel int

const (
	EducationNone EducationLevel = iota
	EducationBachelor
	EducationMaster
	EducationDoctorate
)

// ParseEducationLevel maps a stored level string to its ordinal. Unknown or
// empty values collapse to EducationNone, which scoring treats as "no
// requirement" on the job side and "no credential" on the user side.
func ParseEducationLevel(s string) EducationLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bachelor":
		return EducationBachelor
	case "master":
		return EducationMaster
	case "doctorate", "phd":
		return EducationDoctorate
	default:
		return EducationNone
	}
}

func (l EducationLevel) String() string {
	switch l {
	case EducationBachelor:
		return "bachelor"
	case EducationMaster:
		return "master"
	case EducationDoctorate:
		return "doctorate"
	default:
		return "none"
	}
}

// JobTypeLabel maps a coarse job-type tag to the label used for keyword
// matching. Unknown tags pass through unchanged.
func JobTypeLabel(tag string) string {
	switch strings.TrimSpace(tag) {
	case "full_time":
		return "full-time"
	case "part_time":
		return "part-time"
	case "internship":
		return "internship"
	case "remote":
		return "remote"
	default:
		return strings.TrimSpace(tag)
	}
}
