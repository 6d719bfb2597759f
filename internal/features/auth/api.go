package auth

import (
	"go-eventcrm/internal/config"
	"go-eventcrm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	controller *AuthController
	config     *config.Config
}

func NewAuthApi(controller *AuthController, cfg *config.Config) *AuthApi {
	return &AuthApi{
		controller: controller,
		config:     cfg,
	}
}

// Setup registers auth routes. Register and login are the only
// unauthenticated endpoints in the service.
func (h *AuthApi) Setup(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", h.controller.Register)
	auth.Post("/login", h.controller.Login)
	auth.Get("/me", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.Me)
	auth.Post("/change-password", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.ChangePassword)
}
