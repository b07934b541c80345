package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"campus-match/internal/domain/feature"
	"campus-match/internal/repository"

	"github.com/google/uuid"
)

func newFeature(jobs *memJobRepo, feats *memJobFeatureRepo, users *memUserFeatureRepo) *Feature {
	return NewFeatureUsecase(jobs, feats, users, feature.NewExtractor(feature.ExtractorConfig{}), nil)
}

func TestExtractJobFeatures_StoresRecord(t *testing.T) {
	catID := uuid.New()
	job := repository.Job{
		ID:           uuid.New(),
		Title:        "Backend Engineer",
		Requirements: "Required skills: Go, PostgreSQL, Redis",
		Description:  "Build the matching platform.",
		JobType:      "full_time",
		Status:       "open",
		CategoryIDs:  []uuid.UUID{catID},
	}
	jobs := &memJobRepo{jobs: []repository.Job{job}}
	feats := newMemJobFeatureRepo()

	uc := newFeature(jobs, feats, newMemUserFeatureRepo())

	ok, err := uc.ExtractJobFeatures(context.Background(), job.ID)
	if err != nil || !ok {
		t.Fatalf("ExtractJobFeatures = %v, %v", ok, err)
	}

	rec, err := feats.FindByJobID(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("record not stored: %v", err)
	}
	if !reflect.DeepEqual(rec.RequiredSkills, []string{"Go", "PostgreSQL", "Redis"}) {
		t.Fatalf("unexpected skills: %v", rec.RequiredSkills)
	}
	if len(rec.Keywords) == 0 {
		t.Fatalf("expected keywords, got none")
	}
	if rec.CategoryID == nil || *rec.CategoryID != catID {
		t.Fatalf("category not attached: %v", rec.CategoryID)
	}
}

func TestExtractJobFeatures_Reextraction(t *testing.T) {
	job := repository.Job{
		ID:           uuid.New(),
		Title:        "Data Engineer",
		Requirements: "skills: Python",
		Status:       "open",
	}
	jobs := &memJobRepo{jobs: []repository.Job{job}}
	feats := newMemJobFeatureRepo()
	uc := newFeature(jobs, feats, newMemUserFeatureRepo())

	if _, err := uc.ExtractJobFeatures(context.Background(), job.ID); err != nil {
		t.Fatalf("first extraction failed: %v", err)
	}

	jobs.jobs[0].Requirements = "skills: Python, Spark, Airflow"
	if _, err := uc.ExtractJobFeatures(context.Background(), job.ID); err != nil {
		t.Fatalf("re-extraction failed: %v", err)
	}

	rec, _ := feats.FindByJobID(context.Background(), job.ID)
	if !reflect.DeepEqual(rec.RequiredSkills, []string{"Python", "Spark", "Airflow"}) {
		t.Fatalf("record not replaced: %v", rec.RequiredSkills)
	}
}

func TestExtractJobFeatures_UnknownJob(t *testing.T) {
	uc := newFeature(&memJobRepo{}, newMemJobFeatureRepo(), newMemUserFeatureRepo())
	if _, err := uc.ExtractJobFeatures(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveJobFeatures(t *testing.T) {
	jobID := uuid.New()
	feats := newMemJobFeatureRepo()
	feats.records[jobID] = repository.JobFeatureRecord{JobID: jobID}

	uc := newFeature(&memJobRepo{}, feats, newMemUserFeatureRepo())
	if err := uc.RemoveJobFeatures(context.Background(), jobID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := feats.FindByJobID(context.Background(), jobID); !errors.Is(err, repository.ErrJobFeatureNotFound) {
		t.Fatalf("record still present: %v", err)
	}
}

func TestUpdateUserFeature_NormalizesInput(t *testing.T) {
	users := newMemUserFeatureRepo()
	uc := newFeature(&memJobRepo{}, newMemJobFeatureRepo(), users)

	userID := uuid.New()
	rec, err := uc.UpdateUserFeature(context.Background(), userID, UserFeatureAttrs{
		Major:             "  Computer Science ",
		EducationLevel:    "PhD",
		PreferredLocation: " Shanghai ",
		PreferredJobType:  "full_time",
		Skills:            []string{" Go ", "", "SQL"},
		Interests:         []string{"backend "},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.Major != "Computer Science" || rec.PreferredLocation != "Shanghai" {
		t.Fatalf("fields not trimmed: %+v", rec)
	}
	if rec.EducationLevel != "doctorate" {
		t.Fatalf("education = %q, want doctorate", rec.EducationLevel)
	}
	if !reflect.DeepEqual(rec.Skills, []string{"Go", "SQL"}) {
		t.Fatalf("skills = %v", rec.Skills)
	}
	if rec.UpdatedAt.IsZero() {
		t.Fatalf("updated_at not set")
	}
}

func TestUpdateUserFeature_RejectsUnknownJobType(t *testing.T) {
	uc := newFeature(&memJobRepo{}, newMemJobFeatureRepo(), newMemUserFeatureRepo())

	_, err := uc.UpdateUserFeature(context.Background(), uuid.New(), UserFeatureAttrs{
		PreferredJobType: "gig",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetUserFeature_NotFound(t *testing.T) {
	uc := newFeature(&memJobRepo{}, newMemJobFeatureRepo(), newMemUserFeatureRepo())
	if _, err := uc.GetUserFeature(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
