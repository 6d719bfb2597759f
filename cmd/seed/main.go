package main

import (
	"context"
	"errors"
	"time"

	"go-eventcrm/internal/config"
	"go-eventcrm/internal/database"
	"go-eventcrm/internal/features/lookup"
	"go-eventcrm/internal/features/role"
	"go-eventcrm/internal/features/user"
	"go-eventcrm/internal/logger"
	"go-eventcrm/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

type seedRole struct {
	Name        string
	Description string
	Permissions []string
}

// initialRoles mirrors the role set the operators started with. The
// admin role carries every permission in the catalog.
func initialRoles() []seedRole {
	manager := append(role.ResourcePermissionIDs("restaurants"), role.ResourcePermissionIDs("artists")...)
	manager = append(manager, role.ResourcePermissionIDs("cars")...)
	manager = append(manager, "menu-catalog:read", "menu-packages:read")

	return []seedRole{
		{
			Name:        "Администратор",
			Description: "Полный доступ ко всем функциям системы.",
			Permissions: role.AllPermissionIDs(),
		},
		{
			Name:        "Менеджер контента",
			Description: "Может управлять ресторанами, артистами и автомобилями.",
			Permissions: manager,
		},
		{
			Name:        "Пользователь (только чтение)",
			Description: "Может только просматривать информацию без права редактирования.",
			Permissions: []string{
				"restaurants:read",
				"artists:read",
				"cars:read",
				"menu-catalog:read",
				"menu-packages:read",
			},
		},
	}
}

// defaultLookups are the reference categories venues filter on.
var defaultLookups = []string{
	"Кухня",
	"Удобства",
	"Услуги",
	"Подходит для",
}

func Seed(
	lc fx.Lifecycle,
	roleRepo role.RoleRepository,
	userRepo user.UserRepository,
	lookupRepo lookup.LookupRepository,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				logger.Info("Starting database seeding...")

				var adminRole *role.Role
				for _, seed := range initialRoles() {
					existing, err := roleRepo.FindByName(ctx, seed.Name)
					if err == nil {
						logger.Info("Role exists, skipping", zap.String("role", seed.Name))
						if seed.Name == "Администратор" {
							adminRole = existing
						}
						continue
					}
					if !errors.Is(err, mongo.ErrNoDocuments) {
						logger.Error("Role lookup failed", zap.Error(err))
						return
					}

					r := &role.Role{
						Name:        seed.Name,
						Description: seed.Description,
						Permissions: seed.Permissions,
						IsSystem:    true,
						CreatedAt:   time.Now(),
						UpdatedAt:   time.Now(),
					}
					if err := roleRepo.Create(ctx, r); err != nil {
						logger.Error("Role seed failed", zap.String("role", seed.Name), zap.Error(err))
						return
					}
					logger.Info("Seeded role", zap.String("role", seed.Name))
					if seed.Name == "Администратор" {
						adminRole = r
					}
				}

				for _, name := range defaultLookups {
					key := utils.LookupKey(name)
					if _, err := lookupRepo.FindByKey(ctx, key); err == nil {
						logger.Info("Lookup exists, skipping", zap.String("key", key))
						continue
					}
					l := &lookup.Lookup{Name: name, Key: key}
					if err := lookupRepo.Create(ctx, l); err != nil {
						logger.Error("Lookup seed failed", zap.String("key", key), zap.Error(err))
						return
					}
					logger.Info("Seeded lookup", zap.String("key", key))
				}

				// Bootstrap admin account so the first sign-in can
				// manage everything else.
				adminEmail := "admin@example.com"
				if _, err := userRepo.FindByEmail(ctx, adminEmail); errors.Is(err, mongo.ErrNoDocuments) {
					hash, err := utils.HashPassword("admin123")
					if err != nil {
						logger.Error("Password hash failed", zap.Error(err))
						return
					}
					u := &user.User{
						Email:       adminEmail,
						Password:    hash,
						DisplayName: "Administrator",
					}
					if adminRole != nil {
						u.RoleIDs = append(u.RoleIDs, adminRole.ID)
					}
					if err := userRepo.Create(ctx, u); err != nil {
						logger.Error("Admin seed failed", zap.Error(err))
						return
					}
					logger.Info("Seeded admin user", zap.String("email", adminEmail))
				} else {
					logger.Info("Admin user exists, skipping")
				}

				logger.Info("Seeding complete")
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,
			role.NewRoleRepository,
			user.NewUserRepository,
			lookup.NewLookupRepository,
		),
		fx.WithLogger(func(zl *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zl}
		}),
		fx.Invoke(Seed),
	)

	app.Run()
}
