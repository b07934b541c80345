package usecase

import (
	"context"
	"time"

	"campus-match/internal/domain/behavior"
	"campus-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BehaviorInput is the raw ingestion payload. The subsystem assigns the
// weight and timestamp, never the caller.
type BehaviorInput struct {
	Type          string
	TargetType    string
	TargetID      uuid.UUID
	SearchKeyword string
}

// CategoryInterestItem is one category interest row with the display name
// joined in.
type CategoryInterestItem struct {
	CategoryID uuid.UUID
	Name       string
	Score      float64
}

type BehaviorStatistics struct {
	ViewCount         int
	ApplyCount        int
	FavoriteCount     int
	RecentSearches    []string
	CategoryInterests []CategoryInterestItem
}

type BehaviorUsecase interface {
	RecordBehavior(ctx context.Context, userID uuid.UUID, in BehaviorInput) (bool, error)
	GetStatistics(ctx context.Context, userID uuid.UUID) (BehaviorStatistics, error)
}

type Behavior struct {
	behaviors  repository.BehaviorRepository
	jobs       repository.JobRepository
	categories repository.CategoryRepository
	weights    behavior.Weights
	log        *zap.Logger
}

func NewBehaviorUsecase(
	behaviors repository.BehaviorRepository,
	jobs repository.JobRepository,
	categories repository.CategoryRepository,
	weights behavior.Weights,
	log *zap.Logger,
) *Behavior {
	if weights == nil {
		weights = behavior.DefaultWeights()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Behavior{behaviors: behaviors, jobs: jobs, categories: categories, weights: weights, log: log}
}

func (u *Behavior) RecordBehavior(ctx context.Context, userID uuid.UUID, in BehaviorInput) (bool, error) {
	if userID == uuid.Nil {
		return false, ErrInvalidInput
	}

	typ, err := behavior.ParseType(in.Type)
	if err != nil {
		return false, ErrInvalidInput
	}
	target, err := behavior.ParseTargetType(in.TargetType)
	if err != nil {
		return false, ErrInvalidInput
	}

	ev := behavior.Event{
		ID:            uuid.New(),
		UserID:        userID,
		Type:          typ,
		TargetType:    target,
		TargetID:      in.TargetID,
		Weight:        u.weights.For(typ),
		SearchKeyword: in.SearchKeyword,
		OccurredAt:    time.Now().UTC(),
	}

	if err := u.behaviors.Append(ctx, ev); err != nil {
		return false, ErrInternal
	}
	return true, nil
}

func (u *Behavior) GetStatistics(ctx context.Context, userID uuid.UUID) (BehaviorStatistics, error) {
	if userID == uuid.Nil {
		return BehaviorStatistics{}, ErrInvalidInput
	}

	events, err := u.behaviors.ListByUser(ctx, userID)
	if err != nil {
		return BehaviorStatistics{}, ErrInternal
	}

	jobIDs := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]struct{})
	for _, ev := range events {
		if ev.TargetType != behavior.TargetJob || ev.TargetID == uuid.Nil {
			continue
		}
		if _, ok := seen[ev.TargetID]; ok {
			continue
		}
		seen[ev.TargetID] = struct{}{}
		jobIDs = append(jobIDs, ev.TargetID)
	}

	jobCategories, err := u.jobs.CategoriesByJobIDs(ctx, jobIDs)
	if err != nil {
		return BehaviorStatistics{}, ErrInternal
	}

	st := behavior.Aggregate(events, jobCategories)

	catIDs := make([]uuid.UUID, 0, len(st.CategoryInterests))
	for _, ci := range st.CategoryInterests {
		catIDs = append(catIDs, ci.CategoryID)
	}
	names, err := u.categories.FindByIDs(ctx, catIDs)
	if err != nil {
		// Names are display sugar; the interest scores still stand.
		u.log.Warn("category names unavailable", zap.Error(err))
		names = nil
	}

	out := BehaviorStatistics{
		ViewCount:      st.ViewCount,
		ApplyCount:     st.ApplyCount,
		FavoriteCount:  st.FavoriteCount,
		RecentSearches: st.RecentSearches,
	}
	out.CategoryInterests = make([]CategoryInterestItem, 0, len(st.CategoryInterests))
	for _, ci := range st.CategoryInterests {
		out.CategoryInterests = append(out.CategoryInterests, CategoryInterestItem{
			CategoryID: ci.CategoryID,
			Name:       names[ci.CategoryID].Name,
			Score:      ci.Score,
		})
	}
	return out, nil
}
