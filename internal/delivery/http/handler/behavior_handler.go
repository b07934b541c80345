package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"campus-match/internal/delivery/http/dto"
	"campus-match/internal/delivery/http/middleware"
	"campus-match/internal/pkg/response"
	"campus-match/internal/usecase"
)

type BehaviorHandler struct {
	uc usecase.BehaviorUsecase
}

func NewBehaviorHandler(uc usecase.BehaviorUsecase) *BehaviorHandler {
	return &BehaviorHandler{uc: uc}
}

func (h *BehaviorHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/users/:user_id/behaviors", h.RecordBehavior)
	r.Get("/users/:user_id/behaviors/statistics", h.GetStatistics)
}

func (h *BehaviorHandler) RecordBehavior(c fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}

	var req dto.RecordBehaviorRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}
	if err := dto.Validate(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
	}

	var targetID uuid.UUID
	if req.TargetID != "" {
		targetID, err = uuid.Parse(req.TargetID)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "invalid target_id", err)
		}
	}

	recorded, err := h.uc.RecordBehavior(c.Context(), userID, usecase.BehaviorInput{
		Type:          req.BehaviorType,
		TargetType:    req.TargetType,
		TargetID:      targetID,
		SearchKeyword: req.SearchKeyword,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, fiber.Map{"recorded": recorded})
}

func (h *BehaviorHandler) GetStatistics(c fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}

	stats, err := h.uc.GetStatistics(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	interests := make([]dto.CategoryInterestResponse, 0, len(stats.CategoryInterests))
	for _, it := range stats.CategoryInterests {
		interests = append(interests, dto.CategoryInterestResponse{
			CategoryID: it.CategoryID,
			Name:       it.Name,
			Score:      it.Score,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.BehaviorStatisticsResponse{
		ViewCount:         stats.ViewCount,
		ApplyCount:        stats.ApplyCount,
		FavoriteCount:     stats.FavoriteCount,
		RecentSearches:    stats.RecentSearches,
		CategoryInterests: interests,
	})
}
