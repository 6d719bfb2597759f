package media

import (
	"go-eventcrm/internal/config"
	"go-eventcrm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// entityResources maps the entity path segment to the permission
// resource that gates its gallery.
var entityResources = map[string]string{
	"venues":  "restaurants",
	"singers": "artists",
	"cars":    "cars",
}

type MediaApi struct {
	controller *MediaController
	config     *config.Config
	perms      middleware.PermissionSource
}

func NewMediaApi(controller *MediaController, cfg *config.Config, perms middleware.PermissionSource) *MediaApi {
	return &MediaApi{
		controller: controller,
		config:     cfg,
		perms:      perms,
	}
}

// gate resolves the permission resource from the entity segment before
// delegating to the standard permission check.
func (h *MediaApi) gate(c *fiber.Ctx) error {
	resource, ok := entityResources[c.Params("entity")]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown media entity"})
	}
	return middleware.RequirePermission(h.perms, h.config.SkipAuth, resource, "update")(c)
}

// Setup registers gallery routes and the static file mount.
func (h *MediaApi) Setup(app *fiber.App) {
	app.Static(h.config.FSURL, h.config.FSPath)

	media := app.Group("/api/media", middleware.AuthMiddleware(h.config.SkipAuth))
	media.Post("/:entity/:id", h.gate, h.controller.Upload)
	media.Delete("/:entity/:id", h.gate, h.controller.Remove)
}
