package car

import (
	"go-eventcrm/internal/config"
	"go-eventcrm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type CarApi struct {
	controller *CarController
	config     *config.Config
	perms      middleware.PermissionSource
}

func NewCarApi(controller *CarController, cfg *config.Config, perms middleware.PermissionSource) *CarApi {
	return &CarApi{
		controller: controller,
		config:     cfg,
		perms:      perms,
	}
}

// Setup registers provider and car routes under the "cars" resource.
func (h *CarApi) Setup(app *fiber.App) {
	providers := app.Group("/api/car-providers", middleware.AuthMiddleware(h.config.SkipAuth))
	providers.Get("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "cars", "read"), h.controller.ListProviders)
	providers.Post("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "cars", "create"), h.controller.CreateProvider)
	providers.Get("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "cars", "read"), h.controller.GetProvider)
	providers.Put("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "cars", "update"), h.controller.UpdateProvider)
	providers.Delete("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "cars", "delete"), h.controller.DeleteProvider)
	providers.Get("/:id/cars", middleware.RequirePermission(h.perms, h.config.SkipAuth, "cars", "read"), h.controller.ListProviderCars)

	cars := app.Group("/api/cars", middleware.AuthMiddleware(h.config.SkipAuth))
	cars.Get("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "cars", "read"), h.controller.ListCars)
	cars.Post("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "cars", "create"), h.controller.CreateCar)
	cars.Get("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "cars", "read"), h.controller.GetCar)
	cars.Put("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "cars", "update"), h.controller.UpdateCar)
	cars.Delete("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "cars", "delete"), h.controller.DeleteCar)
}
