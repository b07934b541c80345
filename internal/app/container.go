package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"campus-match/internal/config"
	"campus-match/internal/database"
	dbpostgres "campus-match/internal/database/postgres"
	"campus-match/internal/domain/feature"
	"campus-match/internal/domain/matching"
	"campus-match/internal/infrastructure/cache"
	"campus-match/internal/usecase"
)

// Container owns every long-lived dependency and the usecases built on
// top of them.
type Container struct {
	Config config.Config
	Tuning config.Tuning
	Log    *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Repos  Repos

	Features        usecase.FeatureUsecase
	Behaviors       usecase.BehaviorUsecase
	Recommendations usecase.RecommendationUsecase
	Generation      usecase.GenerationUsecase
}

func NewContainer(cfg config.Config, log *zap.Logger) (*Container, error) {
	if log == nil {
		log = zap.NewNop()
	}

	tuning, err := config.LoadTuning(cfg.App.TuningPath)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redis := cache.NewRedis(cfg.Redis, log)

	repos := NewPostgresRepos(db)

	extractor := feature.NewExtractor(tuning.Extractor)
	engine := matching.NewEngine(tuning.Scorer)

	features := usecase.NewFeatureUsecase(repos.Jobs, repos.JobFeatures, repos.UserFeatures, extractor, log)
	behaviors := usecase.NewBehaviorUsecase(repos.Behaviors, repos.Jobs, repos.Categories, tuning.Weights(), log)
	recs := usecase.NewRecommendationUsecase(repos.JobRecs, repos.TalentRecs, repos.Categories, redis, log)
	gen := usecase.NewGenerationUsecase(
		repos.UserFeatures,
		repos.Jobs,
		repos.JobFeatures,
		repos.JobRecs,
		repos.TalentRecs,
		engine,
		redis,
		log,
		tuning.Generation.TopN,
		time.Duration(tuning.Generation.LockSeconds)*time.Second,
	)

	return &Container{
		Config:          cfg,
		Tuning:          tuning,
		Log:             log,
		DB:              db,
		Cache:           redis,
		Repos:           repos,
		Features:        features,
		Behaviors:       behaviors,
		Recommendations: recs,
		Generation:      gen,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
