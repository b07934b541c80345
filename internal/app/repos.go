package app

import (
	"campus-match/internal/database"
	"campus-match/internal/repository"
)

// Repos bundles the Postgres-backed repositories behind their interfaces.
type Repos struct {
	Jobs         repository.JobRepository
	JobFeatures  repository.JobFeatureRepository
	UserFeatures repository.UserFeatureRepository
	Behaviors    repository.BehaviorRepository
	Categories   repository.CategoryRepository
	JobRecs      repository.JobRecommendationRepository
	TalentRecs   repository.TalentRecommendationRepository
}

func NewPostgresRepos(db database.DB) Repos {
	return Repos{
		Jobs:         repository.NewPostgresJobRepository(db),
		JobFeatures:  repository.NewPostgresJobFeatureRepository(db),
		UserFeatures: repository.NewPostgresUserFeatureRepository(db),
		Behaviors:    repository.NewPostgresBehaviorRepository(db),
		Categories:   repository.NewPostgresCategoryRepository(db),
		JobRecs:      repository.NewPostgresJobRecommendationRepository(db),
		TalentRecs:   repository.NewPostgresTalentRecommendationRepository(db),
	}
}
