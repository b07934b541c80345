package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campus-match/internal/domain/recommend"
	"campus-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPageSize  = 10
	maxPageSize      = 50
	listCacheTTL     = 5 * time.Minute
	jobListKeyFmt    = "rec:jobs:%s:%d:%d"
	talentListKeyFmt = "rec:talents:%s:%d:%d"
)

// CategoryDetail is the category info joined into a job recommendation row.
type CategoryDetail struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type JobRecommendationItem struct {
	ID          uuid.UUID        `json:"id"`
	JobID       uuid.UUID        `json:"job_id"`
	JobTitle    string           `json:"job_title"`
	JobLocation string           `json:"job_location"`
	JobType     string           `json:"job_type"`
	Score       float64          `json:"score"`
	Reason      string           `json:"reason"`
	Status      string           `json:"status"`
	Categories  []CategoryDetail `json:"categories"`
	CreatedAt   time.Time        `json:"created_at"`
}

type TalentRecommendationItem struct {
	ID             uuid.UUID `json:"id"`
	StudentID      uuid.UUID `json:"student_id"`
	Major          string    `json:"major"`
	EducationLevel string    `json:"education_level"`
	Skills         []string  `json:"skills"`
	Score          float64   `json:"score"`
	Reason         string    `json:"reason"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type RecommendationUsecase interface {
	GetJobRecommendations(ctx context.Context, userID uuid.UUID, page, size int) ([]JobRecommendationItem, error)
	GetTalentRecommendations(ctx context.Context, orgID uuid.UUID, page, size int) ([]TalentRecommendationItem, error)
	UpdateJobRecommendationStatus(ctx context.Context, recID, actingUserID uuid.UUID, status string) error
	UpdateTalentRecommendationStatus(ctx context.Context, recID, actingOrgID uuid.UUID, status string) error
}

type Recommendation struct {
	jobRecs    repository.JobRecommendationRepository
	talentRecs repository.TalentRecommendationRepository
	categories repository.CategoryRepository
	cache      Cache
	log        *zap.Logger
}

func NewRecommendationUsecase(
	jobRecs repository.JobRecommendationRepository,
	talentRecs repository.TalentRecommendationRepository,
	categories repository.CategoryRepository,
	cache Cache,
	log *zap.Logger,
) *Recommendation {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recommendation{jobRecs: jobRecs, talentRecs: talentRecs, categories: categories, cache: cache, log: log}
}

func (u *Recommendation) GetJobRecommendations(ctx context.Context, userID uuid.UUID, page, size int) ([]JobRecommendationItem, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	page, size = normalizePage(page, size)

	cacheKey := fmt.Sprintf(jobListKeyFmt, userID, page, size)
	if u.cache != nil {
		var cached []JobRecommendationItem
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	rows, err := u.jobRecs.ListByUser(ctx, userID, size, (page-1)*size)
	if err != nil {
		return nil, ErrInternal
	}

	catIDs := make([]uuid.UUID, 0)
	for _, row := range rows {
		catIDs = append(catIDs, row.CategoryIDs...)
	}
	names, err := u.categories.FindByIDs(ctx, catIDs)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]JobRecommendationItem, 0, len(rows))
	for _, row := range rows {
		cats := make([]CategoryDetail, 0, len(row.CategoryIDs))
		for _, id := range row.CategoryIDs {
			cats = append(cats, CategoryDetail{ID: id, Name: names[id].Name})
		}
		out = append(out, JobRecommendationItem{
			ID:          row.ID,
			JobID:       row.JobID,
			JobTitle:    row.JobTitle,
			JobLocation: row.JobLocation,
			JobType:     row.JobType,
			Score:       row.Score,
			Reason:      row.Reason,
			Status:      string(row.Status),
			Categories:  cats,
			CreatedAt:   row.CreatedAt,
		})
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, listCacheTTL)
	}
	return out, nil
}

func (u *Recommendation) GetTalentRecommendations(ctx context.Context, orgID uuid.UUID, page, size int) ([]TalentRecommendationItem, error) {
	if orgID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	page, size = normalizePage(page, size)

	cacheKey := fmt.Sprintf(talentListKeyFmt, orgID, page, size)
	if u.cache != nil {
		var cached []TalentRecommendationItem
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	rows, err := u.talentRecs.ListByOrganization(ctx, orgID, size, (page-1)*size)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]TalentRecommendationItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, TalentRecommendationItem{
			ID:             row.ID,
			StudentID:      row.StudentID,
			Major:          row.Major,
			EducationLevel: row.EducationLevel,
			Skills:         row.Skills,
			Score:          row.Score,
			Reason:         row.Reason,
			Status:         string(row.Status),
			CreatedAt:      row.CreatedAt,
		})
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, listCacheTTL)
	}
	return out, nil
}

// UpdateJobRecommendationStatus applies a first-hop status change. Ownership
// is checked before the status value, so a non-owner learns nothing about
// which values are legal.
func (u *Recommendation) UpdateJobRecommendationStatus(ctx context.Context, recID, actingUserID uuid.UUID, status string) error {
	if recID == uuid.Nil || actingUserID == uuid.Nil {
		return ErrInvalidInput
	}

	rec, err := u.jobRecs.FindByID(ctx, recID)
	if err != nil {
		if errors.Is(err, repository.ErrRecommendationNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if rec.UserID != actingUserID {
		return ErrForbidden
	}

	to, err := recommend.ParseStatus(recommend.KindJob, status)
	if err != nil {
		return ErrInvalidInput
	}
	if err := recommend.ValidateTransition(recommend.KindJob, rec.Status, to); err != nil {
		return ErrInvalidInput
	}

	ok, err := u.jobRecs.UpdateStatus(ctx, recID, rec.Status, to)
	if err != nil {
		return ErrInternal
	}
	if !ok {
		// Lost the optimistic race: the record left "new" underneath us.
		return ErrInvalidInput
	}

	if u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, fmt.Sprintf("rec:jobs:%s:*", rec.UserID))
	}
	return nil
}

func (u *Recommendation) UpdateTalentRecommendationStatus(ctx context.Context, recID, actingOrgID uuid.UUID, status string) error {
	if recID == uuid.Nil || actingOrgID == uuid.Nil {
		return ErrInvalidInput
	}

	rec, err := u.talentRecs.FindByID(ctx, recID)
	if err != nil {
		if errors.Is(err, repository.ErrRecommendationNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if rec.OrganizationID != actingOrgID {
		return ErrForbidden
	}

	to, err := recommend.ParseStatus(recommend.KindTalent, status)
	if err != nil {
		return ErrInvalidInput
	}
	if err := recommend.ValidateTransition(recommend.KindTalent, rec.Status, to); err != nil {
		return ErrInvalidInput
	}

	ok, err := u.talentRecs.UpdateStatus(ctx, recID, rec.Status, to)
	if err != nil {
		return ErrInternal
	}
	if !ok {
		return ErrInvalidInput
	}

	if u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, fmt.Sprintf("rec:talents:%s:*", rec.OrganizationID))
	}
	return nil
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}
