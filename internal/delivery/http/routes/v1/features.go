package v1

import (
	"campus-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterFeatures(r fiber.Router, featureHandler *handler.FeatureHandler) {
	if r == nil {
		return
	}
	if featureHandler == nil {
		return
	}

	featureHandler.RegisterRoutes(r)
}
