package usecase

import (
	"context"
	"sync"
	"time"

	"campus-match/internal/domain/behavior"
	"campus-match/internal/domain/recommend"
	"campus-match/internal/repository"

	"github.com/google/uuid"
)

type memUserFeatureRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]repository.UserFeatureRecord
	err     error
}

func newMemUserFeatureRepo() *memUserFeatureRepo {
	return &memUserFeatureRepo{records: map[uuid.UUID]repository.UserFeatureRecord{}}
}

func (m *memUserFeatureRepo) Upsert(_ context.Context, rec repository.UserFeatureRecord) (repository.UserFeatureRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return repository.UserFeatureRecord{}, m.err
	}
	rec.UpdatedAt = time.Now().UTC()
	m.records[rec.UserID] = rec
	return rec, nil
}

func (m *memUserFeatureRepo) FindByUserID(_ context.Context, userID uuid.UUID) (repository.UserFeatureRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return repository.UserFeatureRecord{}, m.err
	}
	rec, ok := m.records[userID]
	if !ok {
		return repository.UserFeatureRecord{}, repository.ErrUserFeatureNotFound
	}
	return rec, nil
}

func (m *memUserFeatureRepo) ListAll(context.Context) ([]repository.UserFeatureRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.UserFeatureRecord, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	return out, nil
}

func (m *memUserFeatureRepo) ListUserIDs(context.Context) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uuid.UUID, 0, len(m.records))
	for id := range m.records {
		out = append(out, id)
	}
	return out, nil
}

type memJobRepo struct {
	jobs       []repository.Job
	categories map[uuid.UUID][]uuid.UUID
	err        error
}

func (m *memJobRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Job, error) {
	if m.err != nil {
		return repository.Job{}, m.err
	}
	for _, j := range m.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return repository.Job{}, repository.ErrJobNotFound
}

func (m *memJobRepo) ListOpenJobs(context.Context) ([]repository.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		if j.Status == "open" {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *memJobRepo) ListOpenJobsByOrganization(_ context.Context, orgID uuid.UUID) ([]repository.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		if j.Status == "open" && j.OrganizationID == orgID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *memJobRepo) ListOrganizationIDsWithOpenJobs(context.Context) ([]uuid.UUID, error) {
	seen := map[uuid.UUID]struct{}{}
	out := []uuid.UUID{}
	for _, j := range m.jobs {
		if j.Status != "open" {
			continue
		}
		if _, ok := seen[j.OrganizationID]; ok {
			continue
		}
		seen[j.OrganizationID] = struct{}{}
		out = append(out, j.OrganizationID)
	}
	return out, nil
}

func (m *memJobRepo) CategoriesByJobIDs(_ context.Context, jobIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := map[uuid.UUID][]uuid.UUID{}
	for _, id := range jobIDs {
		if cats, ok := m.categories[id]; ok {
			out[id] = cats
		}
	}
	return out, nil
}

type memJobFeatureRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]repository.JobFeatureRecord
	err     error
}

func newMemJobFeatureRepo() *memJobFeatureRepo {
	return &memJobFeatureRepo{records: map[uuid.UUID]repository.JobFeatureRecord{}}
}

func (m *memJobFeatureRepo) Upsert(_ context.Context, rec repository.JobFeatureRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records[rec.JobID] = rec
	return nil
}

func (m *memJobFeatureRepo) FindByJobID(_ context.Context, jobID uuid.UUID) (repository.JobFeatureRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[jobID]
	if !ok {
		return repository.JobFeatureRecord{}, repository.ErrJobFeatureNotFound
	}
	return rec, nil
}

func (m *memJobFeatureRepo) ListForOpenJobs(context.Context) ([]repository.JobFeatureRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.JobFeatureRecord, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	return out, nil
}

func (m *memJobFeatureRepo) ListByJobIDs(_ context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]repository.JobFeatureRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[uuid.UUID]repository.JobFeatureRecord{}
	for _, id := range jobIDs {
		if rec, ok := m.records[id]; ok {
			out[id] = rec
		}
	}
	return out, nil
}

func (m *memJobFeatureRepo) DeleteByJobID(_ context.Context, jobID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, jobID)
	return nil
}

// memJobRecRepo emulates the unique (user_id, job_id) index: a duplicate
// insert reports inserted=false instead of erroring, like ON CONFLICT DO
// NOTHING.
type memJobRecRepo struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]recommend.JobRecommendation
	pairs   map[[2]uuid.UUID]uuid.UUID
	details []repository.JobRecommendationDetail

	failJobID uuid.UUID
	failErr   error
}

func newMemJobRecRepo() *memJobRecRepo {
	return &memJobRecRepo{
		byID:  map[uuid.UUID]recommend.JobRecommendation{},
		pairs: map[[2]uuid.UUID]uuid.UUID{},
	}
}

func (m *memJobRecRepo) Insert(_ context.Context, rec recommend.JobRecommendation) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil && rec.JobID == m.failJobID {
		return false, m.failErr
	}
	key := [2]uuid.UUID{rec.UserID, rec.JobID}
	if _, ok := m.pairs[key]; ok {
		return false, nil
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	m.byID[rec.ID] = rec
	m.pairs[key] = rec.ID
	return true, nil
}

func (m *memJobRecRepo) JobIDsByUser(_ context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[uuid.UUID]struct{}{}
	for key := range m.pairs {
		if key[0] == userID {
			out[key[1]] = struct{}{}
		}
	}
	return out, nil
}

func (m *memJobRecRepo) FindByID(_ context.Context, id uuid.UUID) (recommend.JobRecommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.byID[id]
	if !ok {
		return recommend.JobRecommendation{}, repository.ErrRecommendationNotFound
	}
	return rec, nil
}

func (m *memJobRecRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to recommend.Status) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.byID[id]
	if !ok || rec.Status != from {
		return false, nil
	}
	rec.Status = to
	rec.UpdatedAt = time.Now().UTC()
	m.byID[id] = rec
	return true, nil
}

func (m *memJobRecRepo) ListByUser(context.Context, uuid.UUID, int, int) ([]repository.JobRecommendationDetail, error) {
	return m.details, nil
}

func (m *memJobRecRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}

type memTalentRecRepo struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]recommend.TalentRecommendation
	pairs   map[[2]uuid.UUID]uuid.UUID
	details []repository.TalentRecommendationDetail
}

func newMemTalentRecRepo() *memTalentRecRepo {
	return &memTalentRecRepo{
		byID:  map[uuid.UUID]recommend.TalentRecommendation{},
		pairs: map[[2]uuid.UUID]uuid.UUID{},
	}
}

func (m *memTalentRecRepo) Insert(_ context.Context, rec recommend.TalentRecommendation) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]uuid.UUID{rec.OrganizationID, rec.StudentID}
	if _, ok := m.pairs[key]; ok {
		return false, nil
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	m.byID[rec.ID] = rec
	m.pairs[key] = rec.ID
	return true, nil
}

func (m *memTalentRecRepo) StudentIDsByOrganization(_ context.Context, orgID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[uuid.UUID]struct{}{}
	for key := range m.pairs {
		if key[0] == orgID {
			out[key[1]] = struct{}{}
		}
	}
	return out, nil
}

func (m *memTalentRecRepo) FindByID(_ context.Context, id uuid.UUID) (recommend.TalentRecommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.byID[id]
	if !ok {
		return recommend.TalentRecommendation{}, repository.ErrRecommendationNotFound
	}
	return rec, nil
}

func (m *memTalentRecRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to recommend.Status) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.byID[id]
	if !ok || rec.Status != from {
		return false, nil
	}
	rec.Status = to
	rec.UpdatedAt = time.Now().UTC()
	m.byID[id] = rec
	return true, nil
}

func (m *memTalentRecRepo) ListByOrganization(context.Context, uuid.UUID, int, int) ([]repository.TalentRecommendationDetail, error) {
	return m.details, nil
}

type memBehaviorRepo struct {
	mu     sync.Mutex
	events []behavior.Event
	err    error
}

func (m *memBehaviorRepo) Append(_ context.Context, ev behavior.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, ev)
	return nil
}

func (m *memBehaviorRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]behavior.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]behavior.Event, 0, len(m.events))
	for _, ev := range m.events {
		if ev.UserID == userID {
			out = append(out, ev)
		}
	}
	return out, nil
}

type memCategoryRepo struct {
	names map[uuid.UUID]string
	err   error
}

func (m *memCategoryRepo) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]repository.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := map[uuid.UUID]repository.Category{}
	for _, id := range ids {
		if name, ok := m.names[id]; ok {
			out[id] = repository.Category{ID: id, Name: name}
		}
	}
	return out, nil
}

type memCache struct {
	mu    sync.Mutex
	store map[string]string
	locks map[string]struct{}
}

func newMemCache() *memCache {
	return &memCache{store: map[string]string{}, locks: map[string]struct{}{}}
}

func (m *memCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (m *memCache) SetJSON(context.Context, string, any, time.Duration) error {
	return nil
}
func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, key)
	delete(m.store, key)
	return nil
}
func (m *memCache) DeleteByPattern(context.Context, string) error { return nil }
func (m *memCache) SetIfNotExists(_ context.Context, key, _ string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.locks[key]; ok {
		return false, nil
	}
	m.locks[key] = struct{}{}
	return true, nil
}
