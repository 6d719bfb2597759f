package assistant

import (
	"go-eventcrm/internal/config"
	"go-eventcrm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AssistantApi struct {
	controller *AssistantController
	config     *config.Config
	perms      middleware.PermissionSource
}

func NewAssistantApi(controller *AssistantController, cfg *config.Config, perms middleware.PermissionSource) *AssistantApi {
	return &AssistantApi{
		controller: controller,
		config:     cfg,
		perms:      perms,
	}
}

// Setup registers the assistant route. Reading a venue's data through
// the model requires the same permission as reading the venue.
func (h *AssistantApi) Setup(app *fiber.App) {
	assistant := app.Group("/api/assistant", middleware.AuthMiddleware(h.config.SkipAuth))
	assistant.Post("/venues/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "restaurants", "read"), h.controller.AskAboutVenue)
}
