package venue

import (
	"go-eventcrm/internal/config"
	"go-eventcrm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type VenueApi struct {
	controller *VenueController
	config     *config.Config
	perms      middleware.PermissionSource
}

func NewVenueApi(controller *VenueController, cfg *config.Config, perms middleware.PermissionSource) *VenueApi {
	return &VenueApi{
		controller: controller,
		config:     cfg,
		perms:      perms,
	}
}

// Setup registers venue routes. The permission resource keeps the
// legacy "restaurants" name the role documents carry.
func (h *VenueApi) Setup(app *fiber.App) {
	venues := app.Group("/api/venues", middleware.AuthMiddleware(h.config.SkipAuth))

	venues.Get("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "restaurants", "read"), h.controller.ListVenues)
	venues.Post("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "restaurants", "create"), h.controller.CreateVenue)
	venues.Get("/export", middleware.RequirePermission(h.perms, h.config.SkipAuth, "restaurants", "read"), h.controller.ExportVenues)
	venues.Get("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "restaurants", "read"), h.controller.GetVenue)
	venues.Put("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "restaurants", "update"), h.controller.UpdateVenue)
	venues.Delete("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "restaurants", "delete"), h.controller.DeleteVenue)
	venues.Put("/:id/packages", middleware.RequirePermission(h.perms, h.config.SkipAuth, "restaurants", "assign-packages"), h.controller.AssignPackages)
}
