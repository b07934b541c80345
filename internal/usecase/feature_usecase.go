package usecase

import (
	"context"
	"errors"
	"strings"

	"campus-match/internal/domain/feature"
	"campus-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserFeatureAttrs is the upsert payload for a user's declared profile.
type UserFeatureAttrs struct {
	Major             string
	EducationLevel    string
	PreferredLocation string
	PreferredJobType  string
	Skills            []string
	Interests         []string
}

type FeatureUsecase interface {
	// ExtractJobFeatures derives and stores the feature record for a posting.
	// Safe to re-run whenever the posting is edited.
	ExtractJobFeatures(ctx context.Context, jobID uuid.UUID) (bool, error)
	RemoveJobFeatures(ctx context.Context, jobID uuid.UUID) error
	UpdateUserFeature(ctx context.Context, userID uuid.UUID, attrs UserFeatureAttrs) (repository.UserFeatureRecord, error)
	GetUserFeature(ctx context.Context, userID uuid.UUID) (repository.UserFeatureRecord, error)
}

type Feature struct {
	jobs        repository.JobRepository
	jobFeatures repository.JobFeatureRepository
	users       repository.UserFeatureRepository
	extractor   *feature.Extractor
	log         *zap.Logger
}

func NewFeatureUsecase(
	jobs repository.JobRepository,
	jobFeatures repository.JobFeatureRepository,
	users repository.UserFeatureRepository,
	extractor *feature.Extractor,
	log *zap.Logger,
) *Feature {
	if log == nil {
		log = zap.NewNop()
	}
	return &Feature{jobs: jobs, jobFeatures: jobFeatures, users: users, extractor: extractor, log: log}
}

func (u *Feature) ExtractJobFeatures(ctx context.Context, jobID uuid.UUID) (bool, error) {
	if jobID == uuid.Nil {
		return false, ErrInvalidInput
	}

	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return false, ErrNotFound
		}
		return false, ErrInternal
	}

	skills, keywords := u.extractor.Extract(feature.PostingText{
		Title:        j.Title,
		Requirements: j.Requirements,
		Description:  j.Description,
		JobType:      j.JobType,
	})

	rec := repository.JobFeatureRecord{
		JobID:          j.ID,
		RequiredSkills: skills,
		Keywords:       keywords,
	}
	if len(j.CategoryIDs) > 0 {
		cat := j.CategoryIDs[0]
		rec.CategoryID = &cat
	}

	if err := u.jobFeatures.Upsert(ctx, rec); err != nil {
		return false, ErrInternal
	}

	u.log.Info("job features extracted",
		zap.String("job_id", j.ID.String()),
		zap.Int("skills", len(skills)),
		zap.Int("keywords", len(keywords)),
	)
	return true, nil
}

func (u *Feature) RemoveJobFeatures(ctx context.Context, jobID uuid.UUID) error {
	if jobID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.jobFeatures.DeleteByJobID(ctx, jobID); err != nil {
		return ErrInternal
	}
	return nil
}

var jobTypeTags = map[string]struct{}{
	"full_time": {}, "part_time": {}, "internship": {}, "remote": {},
}

func (u *Feature) UpdateUserFeature(ctx context.Context, userID uuid.UUID, attrs UserFeatureAttrs) (repository.UserFeatureRecord, error) {
	if userID == uuid.Nil {
		return repository.UserFeatureRecord{}, ErrInvalidInput
	}

	jobType := strings.TrimSpace(attrs.PreferredJobType)
	if jobType != "" {
		if _, ok := jobTypeTags[jobType]; !ok {
			return repository.UserFeatureRecord{}, ErrInvalidInput
		}
	}

	rec := repository.UserFeatureRecord{
		UserID:            userID,
		Major:             strings.TrimSpace(attrs.Major),
		EducationLevel:    feature.ParseEducationLevel(attrs.EducationLevel).String(),
		PreferredLocation: strings.TrimSpace(attrs.PreferredLocation),
		PreferredJobType:  jobType,
		Skills:            trimAll(attrs.Skills),
		Interests:         trimAll(attrs.Interests),
	}

	out, err := u.users.Upsert(ctx, rec)
	if err != nil {
		return repository.UserFeatureRecord{}, ErrInternal
	}
	return out, nil
}

func (u *Feature) GetUserFeature(ctx context.Context, userID uuid.UUID) (repository.UserFeatureRecord, error) {
	rec, err := u.users.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserFeatureNotFound) {
			return repository.UserFeatureRecord{}, ErrNotFound
		}
		return repository.UserFeatureRecord{}, ErrInternal
	}
	return rec, nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
