package audit

import (
	"go-eventcrm/internal/config"
	"go-eventcrm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuditApi struct {
	controller *AuditController
	config     *config.Config
	perms      middleware.PermissionSource
}

func NewAuditApi(controller *AuditController, cfg *config.Config, perms middleware.PermissionSource) *AuditApi {
	return &AuditApi{
		controller: controller,
		config:     cfg,
		perms:      perms,
	}
}

// Setup registers audit routes. Reading the audit trail rides on the
// roles:read permission: it is an administrative surface.
func (h *AuditApi) Setup(app *fiber.App) {
	audit := app.Group("/api/audit", middleware.AuthMiddleware(h.config.SkipAuth))

	audit.Get("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "roles", "read"), h.controller.ListEntries)
}
