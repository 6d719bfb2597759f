package singer

import (
	"go-eventcrm/internal/config"
	"go-eventcrm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SingerApi struct {
	controller *SingerController
	config     *config.Config
	perms      middleware.PermissionSource
}

func NewSingerApi(controller *SingerController, cfg *config.Config, perms middleware.PermissionSource) *SingerApi {
	return &SingerApi{
		controller: controller,
		config:     cfg,
		perms:      perms,
	}
}

// Setup registers singer routes under the "artists" permission resource.
func (h *SingerApi) Setup(app *fiber.App) {
	singers := app.Group("/api/singers", middleware.AuthMiddleware(h.config.SkipAuth))

	singers.Get("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "read"), h.controller.ListSingers)
	singers.Post("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "create"), h.controller.CreateSinger)
	singers.Get("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "read"), h.controller.GetSinger)
	singers.Put("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "update"), h.controller.UpdateSinger)
	singers.Delete("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "delete"), h.controller.DeleteSinger)
	singers.Put("/:id/repertoires", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "assign-repertoires"), h.controller.AssignRepertoires)
	singers.Post("/:id/packages", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "update"), h.controller.AddPricingPackage)
	singers.Put("/:id/packages/:pkgId", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "update"), h.controller.UpdatePricingPackage)
	singers.Delete("/:id/packages/:pkgId", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "update"), h.controller.RemovePricingPackage)
}
