package menu

import (
	"go-eventcrm/internal/config"
	"go-eventcrm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type MenuApi struct {
	controller *MenuController
	config     *config.Config
	perms      middleware.PermissionSource
}

func NewMenuApi(controller *MenuController, cfg *config.Config, perms middleware.PermissionSource) *MenuApi {
	return &MenuApi{
		controller: controller,
		config:     cfg,
		perms:      perms,
	}
}

// Setup registers menu catalog and package routes.
func (h *MenuApi) Setup(app *fiber.App) {
	items := app.Group("/api/menu/items", middleware.AuthMiddleware(h.config.SkipAuth))
	items.Get("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "menu-catalog", "read"), h.controller.ListItems)
	items.Post("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "menu-catalog", "create"), h.controller.CreateItem)
	items.Put("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "menu-catalog", "update"), h.controller.UpdateItem)
	items.Delete("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "menu-catalog", "delete"), h.controller.DeleteItem)

	pkgs := app.Group("/api/menu/packages", middleware.AuthMiddleware(h.config.SkipAuth))
	pkgs.Get("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "menu-packages", "read"), h.controller.ListPackages)
	pkgs.Post("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "menu-packages", "create"), h.controller.CreatePackage)
	pkgs.Get("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "menu-packages", "read"), h.controller.GetPackage)
	pkgs.Put("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "menu-packages", "update"), h.controller.UpdatePackage)
	pkgs.Delete("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "menu-packages", "delete"), h.controller.DeletePackage)
}
