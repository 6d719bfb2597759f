package middleware

import (
	"context"

	"go-eventcrm/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// PermissionSource resolves the effective permission set of a user.
// Implemented by the role service; declared here to avoid a dependency
// on the feature package.
type PermissionSource interface {
	HasPermission(ctx context.Context, roleIDs []string, permission string) (bool, error)
}

// RequirePermission gates a route on "<resource>:<action>" membership in
// the caller's computed permission set. Exact string match only.
func RequirePermission(src PermissionSource, skipAuth bool, resource, action string) fiber.Handler {
	required := resource + ":" + action

	return func(c *fiber.Ctx) error {
		if skipAuth {
			return c.Next()
		}

		claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		allowed, err := src.HasPermission(c.UserContext(), claims.RoleIDs, required)
		if err != nil {
			// Resolution failure degrades to read-nothing, never a crash
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: could not resolve permissions",
			})
		}

		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient permissions",
			})
		}

		return c.Next()
	}
}
