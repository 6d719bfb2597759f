package singer

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type SingerController struct {
	SingerService SingerService
}

func NewSingerController(singerService SingerService) *SingerController {
	return &SingerController{SingerService: singerService}
}

// ListSingers godoc
// @Summary List singers newest first
// @Tags singers
// @Produce json
// @Success 200 {array} Singer
// @Router /api/singers [get]
func (ctrl *SingerController) ListSingers(c *fiber.Ctx) error {
	singers, err := ctrl.SingerService.ListSingers(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving singers"})
	}
	return c.JSON(singers)
}

// GetSinger godoc
// @Summary Get singer by ID
// @Tags singers
// @Produce json
// @Param id path string true "Singer ID"
// @Success 200 {object} Singer
// @Router /api/singers/{id} [get]
func (ctrl *SingerController) GetSinger(c *fiber.Ctx) error {
	singer, err := ctrl.SingerService.GetSingerByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Singer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving singer"})
	}
	return c.JSON(singer)
}

// CreateSinger godoc
// @Summary Create a placeholder singer in draft status
// @Tags singers
// @Produce json
// @Success 201 {object} Singer
// @Router /api/singers [post]
func (ctrl *SingerController) CreateSinger(c *fiber.Ctx) error {
	singer, err := ctrl.SingerService.CreateSinger(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating singer"})
	}
	return c.Status(fiber.StatusCreated).JSON(singer)
}

// UpdateSinger godoc
// @Summary Overwrite a singer document
// @Tags singers
// @Accept json
// @Produce json
// @Param id path string true "Singer ID"
// @Param singer body Singer true "Singer"
// @Success 200 {object} Singer
// @Router /api/singers/{id} [put]
func (ctrl *SingerController) UpdateSinger(c *fiber.Ctx) error {
	var singer Singer
	if err := c.BodyParser(&singer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := ctrl.SingerService.UpdateSinger(c.UserContext(), c.Params("id"), &singer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Singer not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(updated)
}

// DeleteSinger godoc
// @Summary Delete singer
// @Tags singers
// @Param id path string true "Singer ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/singers/{id} [delete]
func (ctrl *SingerController) DeleteSinger(c *fiber.Ctx) error {
	if err := ctrl.SingerService.DeleteSinger(c.UserContext(), c.Params("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Singer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting singer"})
	}
	return c.JSON(fiber.Map{"message": "Singer deleted successfully"})
}

type assignRepertoiresRequest struct {
	RepertoireIDs []string `json:"repertoire_ids"`
}

// AssignRepertoires godoc
// @Summary Replace the singer's assigned repertoires
// @Tags singers
// @Accept json
// @Produce json
// @Param id path string true "Singer ID"
// @Success 200 {object} Singer
// @Router /api/singers/{id}/repertoires [put]
func (ctrl *SingerController) AssignRepertoires(c *fiber.Ctx) error {
	var req assignRepertoiresRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	singer, err := ctrl.SingerService.AssignRepertoires(c.UserContext(), c.Params("id"), req.RepertoireIDs)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Singer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error assigning repertoires"})
	}
	return c.JSON(singer)
}

// AddPricingPackage godoc
// @Summary Add a pricing package to a singer
// @Tags singers
// @Accept json
// @Produce json
// @Param id path string true "Singer ID"
// @Success 201 {object} Singer
// @Router /api/singers/{id}/packages [post]
func (ctrl *SingerController) AddPricingPackage(c *fiber.Ctx) error {
	var pkg PricingPackage
	if err := c.BodyParser(&pkg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if pkg.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Package title is required"})
	}

	singer, err := ctrl.SingerService.AddPricingPackage(c.UserContext(), c.Params("id"), &pkg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Singer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error adding pricing package"})
	}
	return c.Status(fiber.StatusCreated).JSON(singer)
}

// UpdatePricingPackage godoc
// @Summary Update an embedded pricing package
// @Tags singers
// @Accept json
// @Produce json
// @Param id path string true "Singer ID"
// @Param pkgId path string true "Package ID"
// @Success 200 {object} Singer
// @Router /api/singers/{id}/packages/{pkgId} [put]
func (ctrl *SingerController) UpdatePricingPackage(c *fiber.Ctx) error {
	var pkg PricingPackage
	if err := c.BodyParser(&pkg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	singer, err := ctrl.SingerService.UpdatePricingPackage(c.UserContext(), c.Params("id"), c.Params("pkgId"), &pkg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Error updating pricing package"})
	}
	return c.JSON(singer)
}

// RemovePricingPackage godoc
// @Summary Remove an embedded pricing package
// @Tags singers
// @Param id path string true "Singer ID"
// @Param pkgId path string true "Package ID"
// @Success 200 {object} Singer
// @Router /api/singers/{id}/packages/{pkgId} [delete]
func (ctrl *SingerController) RemovePricingPackage(c *fiber.Ctx) error {
	singer, err := ctrl.SingerService.RemovePricingPackage(c.UserContext(), c.Params("id"), c.Params("pkgId"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Singer not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Error removing pricing package"})
	}
	return c.JSON(singer)
}
