package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct-tag validation on a request payload.
func Validate(v any) error {
	return validate.Struct(v)
}

type UpdateUserFeatureRequest struct {
	Major             string   `json:"major" validate:"max=100"`
	EducationLevel    string   `json:"education_level" validate:"omitempty,oneof=none bachelor master doctorate"`
	PreferredLocation string   `json:"preferred_location" validate:"max=100"`
	PreferredJobType  string   `json:"preferred_job_type" validate:"omitempty,oneof=full_time part_time internship remote"`
	Skills            []string `json:"skills" validate:"max=50,dive,min=1,max=80"`
	Interests         []string `json:"interests" validate:"max=50,dive,min=1,max=80"`
}

type RecordBehaviorRequest struct {
	BehaviorType  string `json:"behavior_type" validate:"required"`
	TargetType    string `json:"target_type" validate:"required"`
	TargetID      string `json:"target_id" validate:"omitempty,uuid"`
	SearchKeyword string `json:"search_keyword" validate:"max=120"`
}

type UpdateStatusRequest struct {
	ActorID string `json:"actor_id" validate:"required,uuid"`
	Status  string `json:"status" validate:"required"`
}
