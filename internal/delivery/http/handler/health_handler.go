package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"campus-match/internal/database"
	"campus-match/internal/pkg/response"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	status := "ok"
	code := fiber.StatusOK

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			status = "degraded"
			code = fiber.StatusServiceUnavailable
		}
	}

	return response.Success(c, code, response.MessageOK, fiber.Map{"status": status})
}
