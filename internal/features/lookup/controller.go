package lookup

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type LookupController struct {
	LookupService LookupService
}

func NewLookupController(lookupService LookupService) *LookupController {
	return &LookupController{LookupService: lookupService}
}

// ListLookups godoc
// @Summary List lookup categories
// @Tags lookups
// @Produce json
// @Success 200 {array} Lookup
// @Router /api/lookups [get]
func (ctrl *LookupController) ListLookups(c *fiber.Ctx) error {
	lookups, err := ctrl.LookupService.ListLookups(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving lookups"})
	}
	return c.JSON(lookups)
}

// GetLookup godoc
// @Summary Get lookup by ID
// @Tags lookups
// @Produce json
// @Param id path string true "Lookup ID"
// @Success 200 {object} Lookup
// @Router /api/lookups/{id} [get]
func (ctrl *LookupController) GetLookup(c *fiber.Ctx) error {
	lookup, err := ctrl.LookupService.GetLookupByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lookup not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving lookup"})
	}
	return c.JSON(lookup)
}

type lookupNameRequest struct {
	Name string `json:"name"`
}

// CreateLookup godoc
// @Summary Create a lookup category with a derived key
// @Tags lookups
// @Accept json
// @Produce json
// @Success 201 {object} Lookup
// @Router /api/lookups [post]
func (ctrl *LookupController) CreateLookup(c *fiber.Ctx) error {
	var req lookupNameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	lookup, err := ctrl.LookupService.CreateLookup(c.UserContext(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateKey):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, ErrEmptyName):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating lookup"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(lookup)
}

// RenameLookup godoc
// @Summary Rename a lookup category (key is immutable)
// @Tags lookups
// @Accept json
// @Param id path string true "Lookup ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/lookups/{id} [put]
func (ctrl *LookupController) RenameLookup(c *fiber.Ctx) error {
	var req lookupNameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := ctrl.LookupService.RenameLookup(c.UserContext(), c.Params("id"), req.Name); err != nil {
		switch {
		case err == mongo.ErrNoDocuments:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lookup not found"})
		case errors.Is(err, ErrEmptyName):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error renaming lookup"})
		}
	}
	return c.JSON(fiber.Map{"message": "Lookup renamed successfully"})
}

type lookupValuesRequest struct {
	Values []string `json:"values"`
}

// ReplaceValues godoc
// @Summary Replace a lookup's value list
// @Tags lookups
// @Accept json
// @Produce json
// @Param id path string true "Lookup ID"
// @Success 200 {object} Lookup
// @Router /api/lookups/{id}/values [put]
func (ctrl *LookupController) ReplaceValues(c *fiber.Ctx) error {
	var req lookupValuesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	lookup, err := ctrl.LookupService.ReplaceValues(c.UserContext(), c.Params("id"), req.Values)
	if err != nil {
		switch {
		case err == mongo.ErrNoDocuments:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lookup not found"})
		case errors.Is(err, ErrDuplicateValues):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating values"})
		}
	}
	return c.JSON(lookup)
}

// DeleteLookup godoc
// @Summary Delete a lookup category
// @Tags lookups
// @Param id path string true "Lookup ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/lookups/{id} [delete]
func (ctrl *LookupController) DeleteLookup(c *fiber.Ctx) error {
	if err := ctrl.LookupService.DeleteLookup(c.UserContext(), c.Params("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lookup not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting lookup"})
	}
	return c.JSON(fiber.Map{"message": "Lookup deleted successfully"})
}
