package main

import (
	"context"
	"fmt"
	"log"

	common_api "go-eventcrm/internal/common/api"
	"go-eventcrm/internal/config"
	"go-eventcrm/internal/database"
	"go-eventcrm/internal/features/assistant"
	"go-eventcrm/internal/features/audit"
	"go-eventcrm/internal/features/auth"
	"go-eventcrm/internal/features/car"
	"go-eventcrm/internal/features/integrity"
	"go-eventcrm/internal/features/lookup"
	"go-eventcrm/internal/features/media"
	"go-eventcrm/internal/features/menu"
	"go-eventcrm/internal/features/repertoire"
	"go-eventcrm/internal/features/role"
	"go-eventcrm/internal/features/singer"
	"go-eventcrm/internal/features/user"
	"go-eventcrm/internal/features/venue"
	"go-eventcrm/internal/logger"
	"go-eventcrm/internal/middleware"
	"go-eventcrm/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates the Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             64 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute tags a constructor so Fx adds its result to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes calls Setup() on every collected route.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d route groups\n", len(routes))
}

var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer starts Fiber in a goroutine and shuts it down on exit.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			utils.SetSecret(cfg.JWTSecret)
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,
			database.NewRedis,

			// Repositories
			audit.NewAuditRepository,
			role.NewRoleRepository,
			user.NewUserRepository,
			venue.NewVenueRepository,
			singer.NewSingerRepository,
			repertoire.NewRepertoireRepository,
			menu.NewMenuRepository,
			car.NewCarRepository,
			lookup.NewLookupRepository,

			// Services
			audit.NewAuditService,
			role.NewPermissionCache,
			role.NewRoleService,
			user.NewUserService,
			auth.NewAuthService,
			venue.NewVenueService,
			singer.NewSingerService,
			repertoire.NewRepertoireService,
			menu.NewMenuService,
			car.NewCarService,
			media.NewMediaService,
			assistant.NewAssistantService,
			integrity.NewSweeper,

			func(cfg *config.Config) *assistant.GeminiClient {
				return assistant.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
			},
			func(lookupRepo lookup.LookupRepository, cleaner lookup.CustomFieldCleaner, auditService audit.AuditService, zl *zap.Logger, cfg *config.Config) lookup.LookupService {
				return lookup.NewLookupService(lookupRepo, cleaner, auditService, zl, cfg.LookupDeleteCascade)
			},

			// Interface adapters
			func(s role.RoleService) middleware.PermissionSource { return s },
			func(r venue.VenueRepository) lookup.CustomFieldCleaner { return r },

			// Controllers
			auth.NewAuthController,
			role.NewRoleController,
			user.NewUserController,
			venue.NewVenueController,
			singer.NewSingerController,
			repertoire.NewRepertoireController,
			menu.NewMenuController,
			car.NewCarController,
			lookup.NewLookupController,
			media.NewMediaController,
			assistant.NewAssistantController,
			audit.NewAuditController,

			// Routes
			AsRoute(auth.NewAuthApi),
			AsRoute(role.NewRoleApi),
			AsRoute(user.NewUserApi),
			AsRoute(venue.NewVenueApi),
			AsRoute(singer.NewSingerApi),
			AsRoute(repertoire.NewRepertoireApi),
			AsRoute(menu.NewMenuApi),
			AsRoute(car.NewCarApi),
			AsRoute(lookup.NewLookupApi),
			AsRoute(media.NewMediaApi),
			AsRoute(assistant.NewAssistantApi),
			AsRoute(audit.NewAuditApi),
		),
		fx.WithLogger(func(zl *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zl}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(c *cron.Cron) {}, // force scheduler construction
		),
		fx.Provide(integrity.NewScheduler),
	)

	app.Run()
}
