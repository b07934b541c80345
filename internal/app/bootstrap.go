package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"campus-match/internal/delivery/http/handler"
	"campus-match/internal/delivery/http/middleware"
	"campus-match/internal/delivery/http/routes"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	errMw := middleware.NewErrorMiddleware(c.Log)
	f.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(c.Log)
	f.Use(accessMw.Middleware())

	registry := routes.NewRegistry(routes.Handlers{
		Health:         handler.NewHealthHandler(c.DB),
		Feature:        handler.NewFeatureHandler(c.Features),
		Behavior:       handler.NewBehaviorHandler(c.Behaviors),
		Recommendation: handler.NewRecommendationHandler(c.Recommendations, c.Generation),
	})
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
