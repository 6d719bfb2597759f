package menu

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type MenuController struct {
	MenuService MenuService
}

func NewMenuController(menuService MenuService) *MenuController {
	return &MenuController{MenuService: menuService}
}

// ListItems godoc
// @Summary List menu items grouped by category order
// @Tags menu
// @Produce json
// @Success 200 {array} MenuItem
// @Router /api/menu/items [get]
func (ctrl *MenuController) ListItems(c *fiber.Ctx) error {
	items, err := ctrl.MenuService.ListItems(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving menu items"})
	}
	return c.JSON(items)
}

// CreateItem godoc
// @Summary Create a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Success 201 {object} MenuItem
// @Router /api/menu/items [post]
func (ctrl *MenuController) CreateItem(c *fiber.Ctx) error {
	var item MenuItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if item.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Item name is required"})
	}

	created, err := ctrl.MenuService.CreateItem(c.UserContext(), &item)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating menu item"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateItem godoc
// @Summary Update a menu item
// @Tags menu
// @Accept json
// @Param id path string true "Item ID"
// @Success 200 {object} MenuItem
// @Router /api/menu/items/{id} [put]
func (ctrl *MenuController) UpdateItem(c *fiber.Ctx) error {
	var item MenuItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := ctrl.MenuService.UpdateItem(c.UserContext(), c.Params("id"), &item); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating menu item"})
	}
	return c.JSON(item)
}

// DeleteItem godoc
// @Summary Delete a menu item and remove it from all packages
// @Tags menu
// @Param id path string true "Item ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/menu/items/{id} [delete]
func (ctrl *MenuController) DeleteItem(c *fiber.Ctx) error {
	if err := ctrl.MenuService.DeleteItem(c.UserContext(), c.Params("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting menu item"})
	}
	return c.JSON(fiber.Map{"message": "Menu item deleted successfully"})
}

// ListPackages godoc
// @Summary List menu packages
// @Tags menu
// @Produce json
// @Success 200 {array} MenuPackage
// @Router /api/menu/packages [get]
func (ctrl *MenuController) ListPackages(c *fiber.Ctx) error {
	pkgs, err := ctrl.MenuService.ListPackages(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving menu packages"})
	}
	return c.JSON(pkgs)
}

// GetPackage godoc
// @Summary Get a menu package by ID
// @Tags menu
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} MenuPackage
// @Router /api/menu/packages/{id} [get]
func (ctrl *MenuController) GetPackage(c *fiber.Ctx) error {
	pkg, err := ctrl.MenuService.GetPackageByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu package not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving menu package"})
	}
	return c.JSON(pkg)
}

// CreatePackage godoc
// @Summary Create a menu package
// @Tags menu
// @Accept json
// @Produce json
// @Success 201 {object} MenuPackage
// @Router /api/menu/packages [post]
func (ctrl *MenuController) CreatePackage(c *fiber.Ctx) error {
	var pkg MenuPackage
	if err := c.BodyParser(&pkg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if pkg.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Package name is required"})
	}

	created, err := ctrl.MenuService.CreatePackage(c.UserContext(), &pkg)
	if err != nil {
		if errors.Is(err, ErrUnknownItems) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating menu package"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdatePackage godoc
// @Summary Update a menu package
// @Tags menu
// @Accept json
// @Param id path string true "Package ID"
// @Success 200 {object} MenuPackage
// @Router /api/menu/packages/{id} [put]
func (ctrl *MenuController) UpdatePackage(c *fiber.Ctx) error {
	var pkg MenuPackage
	if err := c.BodyParser(&pkg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := ctrl.MenuService.UpdatePackage(c.UserContext(), c.Params("id"), &pkg); err != nil {
		switch {
		case errors.Is(err, ErrUnknownItems):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case err == mongo.ErrNoDocuments:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu package not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating menu package"})
		}
	}
	return c.JSON(pkg)
}

// DeletePackage godoc
// @Summary Delete a menu package
// @Tags menu
// @Param id path string true "Package ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/menu/packages/{id} [delete]
func (ctrl *MenuController) DeletePackage(c *fiber.Ctx) error {
	if err := ctrl.MenuService.DeletePackage(c.UserContext(), c.Params("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu package not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting menu package"})
	}
	return c.JSON(fiber.Map{"message": "Menu package deleted successfully"})
}
