package routes

import (
	v1 "campus-match/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	v1.RegisterFeatures(r, h.Feature)
	v1.RegisterBehaviors(r, h.Behavior)
	v1.RegisterRecommendations(r, h.Recommendation)
}
