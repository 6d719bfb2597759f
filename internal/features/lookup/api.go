package lookup

import (
	"go-eventcrm/internal/config"
	"go-eventcrm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type LookupApi struct {
	controller *LookupController
	config     *config.Config
	perms      middleware.PermissionSource
}

func NewLookupApi(controller *LookupController, cfg *config.Config, perms middleware.PermissionSource) *LookupApi {
	return &LookupApi{
		controller: controller,
		config:     cfg,
		perms:      perms,
	}
}

// Setup registers lookup routes. Rename rides the create permission;
// value edits ride update.
func (h *LookupApi) Setup(app *fiber.App) {
	lookups := app.Group("/api/lookups", middleware.AuthMiddleware(h.config.SkipAuth))

	lookups.Get("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "lookups", "read"), h.controller.ListLookups)
	lookups.Post("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "lookups", "create"), h.controller.CreateLookup)
	lookups.Get("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "lookups", "read"), h.controller.GetLookup)
	lookups.Put("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "lookups", "create"), h.controller.RenameLookup)
	lookups.Put("/:id/values", middleware.RequirePermission(h.perms, h.config.SkipAuth, "lookups", "update"), h.controller.ReplaceValues)
	lookups.Delete("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "lookups", "delete"), h.controller.DeleteLookup)
}
