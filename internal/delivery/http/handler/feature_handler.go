package handler

import (
	"github.com/gofiber/fiber/v3"

	"campus-match/internal/delivery/http/dto"
	"campus-match/internal/delivery/http/middleware"
	"campus-match/internal/pkg/response"
	"campus-match/internal/repository"
	"campus-match/internal/usecase"
)

type FeatureHandler struct {
	uc usecase.FeatureUsecase
}

func NewFeatureHandler(uc usecase.FeatureUsecase) *FeatureHandler {
	return &FeatureHandler{uc: uc}
}

func (h *FeatureHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/jobs/:job_id/features/extract", h.ExtractJobFeatures)
	r.Delete("/jobs/:job_id/features", h.RemoveJobFeatures)
	r.Put("/users/:user_id/feature", h.UpdateUserFeature)
	r.Get("/users/:user_id/feature", h.GetUserFeature)
}

func (h *FeatureHandler) ExtractJobFeatures(c fiber.Ctx) error {
	jobID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		return err
	}

	ok, err := h.uc.ExtractJobFeatures(c.Context(), jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"extracted": ok})
}

func (h *FeatureHandler) RemoveJobFeatures(c fiber.Ctx) error {
	jobID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		return err
	}
	if err := h.uc.RemoveJobFeatures(c.Context(), jobID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *FeatureHandler) UpdateUserFeature(c fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}

	var req dto.UpdateUserFeatureRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}
	if err := dto.Validate(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
	}

	rec, err := h.uc.UpdateUserFeature(c.Context(), userID, usecase.UserFeatureAttrs{
		Major:             req.Major,
		EducationLevel:    req.EducationLevel,
		PreferredLocation: req.PreferredLocation,
		PreferredJobType:  req.PreferredJobType,
		Skills:            req.Skills,
		Interests:         req.Interests,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, featureResponse(rec))
}

func (h *FeatureHandler) GetUserFeature(c fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}

	rec, err := h.uc.GetUserFeature(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, featureResponse(rec))
}

func featureResponse(rec repository.UserFeatureRecord) dto.UserFeatureResponse {
	return dto.UserFeatureResponse{
		UserID:            rec.UserID,
		Major:             rec.Major,
		EducationLevel:    rec.EducationLevel,
		PreferredLocation: rec.PreferredLocation,
		PreferredJobType:  rec.PreferredJobType,
		Skills:            rec.Skills,
		Interests:         rec.Interests,
		UpdatedAt:         rec.UpdatedAt,
	}
}
