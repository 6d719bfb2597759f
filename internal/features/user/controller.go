package user

import (
	"go-eventcrm/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserController struct {
	UserService UserService
}

func NewUserController(userService UserService) *UserController {
	return &UserController{UserService: userService}
}

// ListUsers godoc
// @Summary List users with resolved roles
// @Tags users
// @Produce json
// @Success 200 {array} UserWithRoles
// @Router /api/users [get]
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	users, err := ctrl.UserService.ListUsersWithRoles(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error retrieving users",
		})
	}
	return c.JSON(users)
}

// GetUser godoc
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserWithRoles
// @Router /api/users/{id} [get]
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	user, err := ctrl.UserService.GetUserWithRoles(c.UserContext(), c.Params("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving user"})
	}
	return c.JSON(user)
}

type updateProfileRequest struct {
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
}

// UpdateUser godoc
// @Summary Update user profile fields
// @Tags users
// @Accept json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/users/{id} [put]
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := ctrl.UserService.UpdateProfile(c.UserContext(), c.Params("id"), req.DisplayName, req.Phone); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating user"})
	}

	return c.JSON(fiber.Map{"message": "User updated successfully"})
}

// UpdateMe godoc
// @Summary Update the signed-in user's own profile
// @Tags users
// @Accept json
// @Success 200 {object} map[string]interface{}
// @Router /api/users/me [put]
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := ctrl.UserService.UpdateProfile(c.UserContext(), claims.UserID, req.DisplayName, req.Phone); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating profile"})
	}

	return c.JSON(fiber.Map{"message": "Profile updated successfully"})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus godoc
// @Summary Activate or suspend a user
// @Tags users
// @Accept json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/users/{id}/status [put]
func (ctrl *UserController) UpdateStatus(c *fiber.Ctx) error {
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Status != "active" && req.Status != "suspended" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status must be active or suspended"})
	}

	if err := ctrl.UserService.UpdateStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating status"})
	}

	return c.JSON(fiber.Map{"message": "Status updated successfully"})
}

type assignRolesRequest struct {
	RoleIDs []string `json:"role_ids"`
}

// AssignRoles godoc
// @Summary Replace the user's role membership
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserWithRoles
// @Router /api/users/{id}/roles [put]
func (ctrl *UserController) AssignRoles(c *fiber.Ctx) error {
	var req assignRolesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := ctrl.UserService.AssignRoles(c.UserContext(), c.Params("id"), req.RoleIDs)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error assigning roles"})
	}

	return c.JSON(user)
}

// DeleteUser godoc
// @Summary Delete user
// @Tags users
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/users/{id} [delete]
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	if err := ctrl.UserService.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting user"})
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
