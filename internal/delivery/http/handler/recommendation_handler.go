package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"campus-match/internal/delivery/http/dto"
	"campus-match/internal/delivery/http/middleware"
	"campus-match/internal/pkg/response"
	"campus-match/internal/usecase"
)

type RecommendationHandler struct {
	recs usecase.RecommendationUsecase
	gen  usecase.GenerationUsecase
}

func NewRecommendationHandler(recs usecase.RecommendationUsecase, gen usecase.GenerationUsecase) *RecommendationHandler {
	return &RecommendationHandler{recs: recs, gen: gen}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/users/:user_id/recommendations/jobs", h.GetJobRecommendations)
	r.Post("/users/:user_id/recommendations/generate", h.GenerateForUser)
	r.Patch("/recommendations/jobs/:id/status", h.UpdateJobStatus)
	r.Get("/organizations/:org_id/recommendations/talents", h.GetTalentRecommendations)
	r.Post("/organizations/:org_id/recommendations/generate", h.GenerateForOrganization)
	r.Patch("/recommendations/talents/:id/status", h.UpdateTalentStatus)
}

func (h *RecommendationHandler) GetJobRecommendations(c fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}

	page := parseQueryInt(c, "page", 1)
	size := parseQueryInt(c, "size", 0)

	items, err := h.recs.GetJobRecommendations(c.Context(), userID, page, size)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *RecommendationHandler) GetTalentRecommendations(c fiber.Ctx) error {
	orgID, err := parseUUIDParam(c, "org_id")
	if err != nil {
		return err
	}

	page := parseQueryInt(c, "page", 1)
	size := parseQueryInt(c, "size", 0)

	items, err := h.recs.GetTalentRecommendations(c.Context(), orgID, page, size)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *RecommendationHandler) GenerateForUser(c fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}

	created, err := h.gen.GenerateForUser(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.GenerationResponse{Created: created})
}

func (h *RecommendationHandler) GenerateForOrganization(c fiber.Ctx) error {
	orgID, err := parseUUIDParam(c, "org_id")
	if err != nil {
		return err
	}

	created, err := h.gen.GenerateForOrganization(c.Context(), orgID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.GenerationResponse{Created: created})
}

func (h *RecommendationHandler) UpdateJobStatus(c fiber.Ctx) error {
	recID, actorID, status, err := h.statusUpdateArgs(c)
	if err != nil {
		return err
	}
	if err := h.recs.UpdateJobRecommendationStatus(c.Context(), recID, actorID, status); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *RecommendationHandler) UpdateTalentStatus(c fiber.Ctx) error {
	recID, actorID, status, err := h.statusUpdateArgs(c)
	if err != nil {
		return err
	}
	if err := h.recs.UpdateTalentRecommendationStatus(c.Context(), recID, actorID, status); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *RecommendationHandler) statusUpdateArgs(c fiber.Ctx) (recID, actorID uuid.UUID, status string, err error) {
	recID, err = parseUUIDParam(c, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, "", err
	}

	var req dto.UpdateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return uuid.Nil, uuid.Nil, "", middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}
	if err := dto.Validate(&req); err != nil {
		return uuid.Nil, uuid.Nil, "", middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
	}

	actorID, err = uuid.Parse(req.ActorID)
	if err != nil {
		return uuid.Nil, uuid.Nil, "", middleware.NewAppError(fiber.StatusBadRequest, "invalid actor_id", err)
	}
	return recID, actorID, req.Status, nil
}
