package role

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type RoleController struct {
	RoleService RoleService
}

func NewRoleController(roleService RoleService) *RoleController {
	return &RoleController{RoleService: roleService}
}

// ListRoles godoc
// @Summary List roles
// @Tags roles
// @Produce json
// @Success 200 {array} Role
// @Router /api/roles [get]
func (ctrl *RoleController) ListRoles(c *fiber.Ctx) error {
	roles, err := ctrl.RoleService.ListRoles(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error retrieving roles",
		})
	}
	return c.JSON(roles)
}

// ListPermissions godoc
// @Summary Permission catalog for the role editor
// @Tags roles
// @Produce json
// @Success 200 {object} map[string][]Permission
// @Router /api/roles/permissions [get]
func (ctrl *RoleController) ListPermissions(c *fiber.Ctx) error {
	return c.JSON(AllPermissions)
}

// GetRole godoc
// @Summary Get role by ID
// @Tags roles
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} Role
// @Router /api/roles/{id} [get]
func (ctrl *RoleController) GetRole(c *fiber.Ctx) error {
	role, err := ctrl.RoleService.GetRoleByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Role not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving role"})
	}
	return c.JSON(role)
}

// CreateRole godoc
// @Summary Create role
// @Tags roles
// @Accept json
// @Produce json
// @Param role body Role true "Role"
// @Success 201 {object} Role
// @Router /api/roles [post]
func (ctrl *RoleController) CreateRole(c *fiber.Ctx) error {
	var role Role
	if err := c.BodyParser(&role); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if role.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Role name is required"})
	}

	created, err := ctrl.RoleService.CreateRole(c.UserContext(), &role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating role"})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateRole godoc
// @Summary Update role
// @Tags roles
// @Accept json
// @Param id path string true "Role ID"
// @Param role body Role true "Role"
// @Success 200 {object} Role
// @Router /api/roles/{id} [put]
func (ctrl *RoleController) UpdateRole(c *fiber.Ctx) error {
	var role Role
	if err := c.BodyParser(&role); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := ctrl.RoleService.UpdateRole(c.UserContext(), c.Params("id"), &role); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating role"})
	}

	return c.JSON(role)
}

// DeleteRole godoc
// @Summary Delete role
// @Tags roles
// @Param id path string true "Role ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/roles/{id} [delete]
func (ctrl *RoleController) DeleteRole(c *fiber.Ctx) error {
	if err := ctrl.RoleService.DeleteRole(c.UserContext(), c.Params("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Role not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Role deleted successfully"})
}
