package v1

import (
	"campus-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterBehaviors(r fiber.Router, behaviorHandler *handler.BehaviorHandler) {
	if r == nil {
		return
	}
	if behaviorHandler == nil {
		return
	}

	behaviorHandler.RegisterRoutes(r)
}
