package user

import (
	"go-eventcrm/internal/config"
	"go-eventcrm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	controller *UserController
	config     *config.Config
	perms      middleware.PermissionSource
}

func NewUserApi(controller *UserController, cfg *config.Config, perms middleware.PermissionSource) *UserApi {
	return &UserApi{
		controller: controller,
		config:     cfg,
		perms:      perms,
	}
}

// Setup registers user management routes
func (h *UserApi) Setup(app *fiber.App) {
	users := app.Group("/api/users", middleware.AuthMiddleware(h.config.SkipAuth))

	users.Get("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "users", "read"), h.controller.ListUsers)
	users.Put("/me", h.controller.UpdateMe)
	users.Get("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "users", "read"), h.controller.GetUser)
	users.Put("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "users", "update"), h.controller.UpdateUser)
	users.Put("/:id/status", middleware.RequirePermission(h.perms, h.config.SkipAuth, "users", "update"), h.controller.UpdateStatus)
	users.Put("/:id/roles", middleware.RequirePermission(h.perms, h.config.SkipAuth, "users", "assign-roles"), h.controller.AssignRoles)
	users.Delete("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "users", "delete"), h.controller.DeleteUser)
}
