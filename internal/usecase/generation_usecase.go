package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"campus-match/internal/domain/feature"
	"campus-match/internal/domain/matching"
	"campus-match/internal/domain/recommend"
	"campus-match/internal/pkg/keylock"
	"campus-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerationUsecase runs the batch passes that materialize recommendation
// records. Both passes are idempotent with respect to already-recommended
// pairs: re-invocation only adds newly-eligible ones.
type GenerationUsecase interface {
	GenerateForUser(ctx context.Context, userID uuid.UUID) (int, error)
	GenerateForOrganization(ctx context.Context, orgID uuid.UUID) (int, error)
}

type Generation struct {
	users       repository.UserFeatureRepository
	jobs        repository.JobRepository
	jobFeatures repository.JobFeatureRepository
	jobRecs     repository.JobRecommendationRepository
	talentRecs  repository.TalentRecommendationRepository
	engine      *matching.Engine
	locks       *keylock.KeyLock
	cache       Cache
	log         *zap.Logger

	topN    int
	lockTTL time.Duration
}

func NewGenerationUsecase(
	users repository.UserFeatureRepository,
	jobs repository.JobRepository,
	jobFeatures repository.JobFeatureRepository,
	jobRecs repository.JobRecommendationRepository,
	talentRecs repository.TalentRecommendationRepository,
	engine *matching.Engine,
	cache Cache,
	log *zap.Logger,
	topN int,
	lockTTL time.Duration,
) *Generation {
	if engine == nil {
		engine = matching.NewEngine(matching.DefaultConfig())
	}
	if log == nil {
		log = zap.NewNop()
	}
	if topN <= 0 {
		topN = 10
	}
	if lockTTL <= 0 {
		lockTTL = time.Minute
	}
	return &Generation{
		users: users, jobs: jobs, jobFeatures: jobFeatures,
		jobRecs: jobRecs, talentRecs: talentRecs,
		engine: engine, locks: keylock.New(), cache: cache, log: log,
		topN: topN, lockTTL: lockTTL,
	}
}

// GenerateForUser scores every open posting with a feature record against the
// user's profile and persists the top-N pairs that do not exist yet. A user
// without a feature record is no signal, not an error: zero created.
func (g *Generation) GenerateForUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if userID == uuid.Nil {
		return 0, ErrInvalidInput
	}

	unlock := g.locks.Lock("gen:user:" + userID.String())
	defer unlock()
	release := g.acquireProcessLock(ctx, "gen:lock:user:"+userID.String())
	defer release()

	user, err := g.users.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserFeatureNotFound) {
			g.log.Info("no user feature, skipping generation", zap.String("user_id", userID.String()))
			return 0, nil
		}
		return 0, ErrInternal
	}

	feats, err := g.jobFeatures.ListForOpenJobs(ctx)
	if err != nil {
		return 0, ErrInternal
	}
	openJobs, err := g.jobs.ListOpenJobs(ctx)
	if err != nil {
		return 0, ErrInternal
	}
	jobByID := make(map[uuid.UUID]repository.Job, len(openJobs))
	for _, j := range openJobs {
		jobByID[j.ID] = j
	}

	existing, err := g.jobRecs.JobIDsByUser(ctx, userID)
	if err != nil {
		return 0, ErrInternal
	}

	profile := profileFromRecord(user)

	candidates := make([]recommend.Candidate, 0, len(feats))
	for _, f := range feats {
		j, ok := jobByID[f.JobID]
		if !ok {
			continue
		}
		res := g.engine.Score(profile, jobProfileFromFeature(f), jobInfoFromJob(j))
		candidates = append(candidates, recommend.Candidate{
			ID:     f.JobID,
			Score:  res.Score,
			Reason: matching.JoinReasons(res.Reasons),
		})
	}

	created := 0
	for _, c := range recommend.Rank(candidates) {
		if created >= g.topN {
			break
		}
		if _, ok := existing[c.ID]; ok {
			continue
		}
		inserted, err := g.jobRecs.Insert(ctx, recommend.JobRecommendation{
			UserID: userID,
			JobID:  c.ID,
			Score:  c.Score,
			Reason: c.Reason,
			Status: recommend.StatusNew,
		})
		if err != nil {
			// One bad candidate must not abort the pass.
			g.log.Warn("insert recommendation failed",
				zap.String("user_id", userID.String()),
				zap.String("job_id", c.ID.String()),
				zap.Error(err),
			)
			continue
		}
		if inserted {
			created++
		}
	}

	if g.cache != nil && created > 0 {
		_ = g.cache.DeleteByPattern(ctx, fmt.Sprintf("rec:jobs:%s:*", userID))
	}

	g.log.Info("job recommendations generated",
		zap.String("user_id", userID.String()),
		zap.Int("candidates", len(candidates)),
		zap.Int("created", created),
	)
	return created, nil
}

// GenerateForOrganization scores every student with a feature record against
// the organization's open postings. A student's score is the maximum over
// those postings, not a sum, and the stored reason names the best-matching
// posting; score ties between postings resolve to the lowest job id.
func (g *Generation) GenerateForOrganization(ctx context.Context, orgID uuid.UUID) (int, error) {
	if orgID == uuid.Nil {
		return 0, ErrInvalidInput
	}

	unlock := g.locks.Lock("gen:org:" + orgID.String())
	defer unlock()
	release := g.acquireProcessLock(ctx, "gen:lock:org:"+orgID.String())
	defer release()

	orgJobs, err := g.jobs.ListOpenJobsByOrganization(ctx, orgID)
	if err != nil {
		return 0, ErrInternal
	}
	if len(orgJobs) == 0 {
		g.log.Info("no open postings, skipping talent generation", zap.String("organization_id", orgID.String()))
		return 0, nil
	}

	sort.SliceStable(orgJobs, func(i, j int) bool {
		return orgJobs[i].ID.String() < orgJobs[j].ID.String()
	})

	jobIDs := make([]uuid.UUID, 0, len(orgJobs))
	for _, j := range orgJobs {
		jobIDs = append(jobIDs, j.ID)
	}
	featByJob, err := g.jobFeatures.ListByJobIDs(ctx, jobIDs)
	if err != nil {
		return 0, ErrInternal
	}

	students, err := g.users.ListAll(ctx)
	if err != nil {
		return 0, ErrInternal
	}
	if len(students) == 0 {
		g.log.Info("empty candidate pool, skipping talent generation", zap.String("organization_id", orgID.String()))
		return 0, nil
	}

	existing, err := g.talentRecs.StudentIDsByOrganization(ctx, orgID)
	if err != nil {
		return 0, ErrInternal
	}

	candidates := make([]recommend.Candidate, 0, len(students))
	for _, student := range students {
		profile := profileFromRecord(student)

		var (
			found     bool
			bestScore float64
			bestJob   repository.Job
			bestRes   matching.Result
		)
		for _, j := range orgJobs {
			f, ok := featByJob[j.ID]
			if !ok {
				continue
			}
			res := g.engine.Score(profile, jobProfileFromFeature(f), jobInfoFromJob(j))
			// Strict greater-than keeps the first (lowest-id) posting on ties.
			if !found || res.Score > bestScore {
				found = true
				bestScore = res.Score
				bestJob = j
				bestRes = res
			}
		}
		if !found {
			continue
		}

		candidates = append(candidates, recommend.Candidate{
			ID:     student.UserID,
			Score:  bestScore,
			Reason: fmt.Sprintf("strong candidate for %s: %s", bestJob.Title, matching.JoinReasons(bestRes.Reasons)),
		})
	}

	created := 0
	for _, c := range recommend.Rank(candidates) {
		if created >= g.topN {
			break
		}
		if _, ok := existing[c.ID]; ok {
			continue
		}
		inserted, err := g.talentRecs.Insert(ctx, recommend.TalentRecommendation{
			OrganizationID: orgID,
			StudentID:      c.ID,
			Score:          c.Score,
			Reason:         c.Reason,
			Status:         recommend.StatusNew,
		})
		if err != nil {
			g.log.Warn("insert talent recommendation failed",
				zap.String("organization_id", orgID.String()),
				zap.String("student_id", c.ID.String()),
				zap.Error(err),
			)
			continue
		}
		if inserted {
			created++
		}
	}

	if g.cache != nil && created > 0 {
		_ = g.cache.DeleteByPattern(ctx, fmt.Sprintf("rec:talents:%s:*", orgID))
	}

	g.log.Info("talent recommendations generated",
		zap.String("organization_id", orgID.String()),
		zap.Int("candidates", len(candidates)),
		zap.Int("created", created),
	)
	return created, nil
}

// acquireProcessLock takes the best-effort cross-process SetNX lock. The
// in-process keyed mutex already serializes same-key passes locally and the
// unique pair index backs everything, so a cache miss here is not fatal.
func (g *Generation) acquireProcessLock(ctx context.Context, key string) func() {
	if g.cache == nil {
		return func() {}
	}
	acquired, err := g.cache.SetIfNotExists(ctx, key, "1", g.lockTTL)
	if err != nil || !acquired {
		return func() {}
	}
	return func() { _ = g.cache.Delete(context.Background(), key) }
}

func profileFromRecord(rec repository.UserFeatureRecord) matching.UserProfile {
	return matching.UserProfile{
		Major:             rec.Major,
		EducationLevel:    int(feature.ParseEducationLevel(rec.EducationLevel)),
		PreferredLocation: rec.PreferredLocation,
		PreferredJobType:  rec.PreferredJobType,
		Skills:            rec.Skills,
		Interests:         rec.Interests,
	}
}

func jobProfileFromFeature(f repository.JobFeatureRecord) matching.JobProfile {
	return matching.JobProfile{
		RequiredSkills: f.RequiredSkills,
		Keywords:       f.Keywords,
	}
}

func jobInfoFromJob(j repository.Job) matching.JobInfo {
	return matching.JobInfo{
		Title:          j.Title,
		Location:       j.Location,
		JobType:        j.JobType,
		EducationLevel: int(feature.ParseEducationLevel(j.EducationRequirement)),
	}
}
