package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserFeatureResponse struct {
	UserID            uuid.UUID `json:"user_id"`
	Major             string    `json:"major"`
	EducationLevel    string    `json:"education_level"`
	PreferredLocation string    `json:"preferred_location"`
	PreferredJobType  string    `json:"preferred_job_type"`
	Skills            []string  `json:"skills"`
	Interests         []string  `json:"interests"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CategoryInterestResponse struct {
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
	Score      float64   `json:"score"`
}

type BehaviorStatisticsResponse struct {
	ViewCount         int                        `json:"view_count"`
	ApplyCount        int                        `json:"apply_count"`
	FavoriteCount     int                        `json:"favorite_count"`
	RecentSearches    []string                   `json:"recent_searches"`
	CategoryInterests []CategoryInterestResponse `json:"category_interests"`
}

type GenerationResponse struct {
	Created int `json:"created"`
}
