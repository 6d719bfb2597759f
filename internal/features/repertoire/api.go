package repertoire

import (
	"go-eventcrm/internal/config"
	"go-eventcrm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type RepertoireApi struct {
	controller *RepertoireController
	config     *config.Config
	perms      middleware.PermissionSource
}

func NewRepertoireApi(controller *RepertoireController, cfg *config.Config, perms middleware.PermissionSource) *RepertoireApi {
	return &RepertoireApi{
		controller: controller,
		config:     cfg,
		perms:      perms,
	}
}

// Setup registers song catalog and repertoire routes. Both ride the
// "artists" permission resource, reads under read and writes under
// update.
func (h *RepertoireApi) Setup(app *fiber.App) {
	songs := app.Group("/api/songs", middleware.AuthMiddleware(h.config.SkipAuth))
	songs.Get("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "read"), h.controller.ListSongs)
	songs.Post("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "update"), h.controller.CreateSong)
	songs.Put("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "update"), h.controller.UpdateSong)
	songs.Delete("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "update"), h.controller.DeleteSong)

	reps := app.Group("/api/repertoires", middleware.AuthMiddleware(h.config.SkipAuth))
	reps.Get("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "read"), h.controller.ListRepertoires)
	reps.Post("/", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "update"), h.controller.CreateRepertoire)
	reps.Get("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "read"), h.controller.GetRepertoire)
	reps.Put("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "update"), h.controller.UpdateRepertoire)
	reps.Delete("/:id", middleware.RequirePermission(h.perms, h.config.SkipAuth, "artists", "update"), h.controller.DeleteRepertoire)
}
