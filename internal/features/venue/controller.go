package venue

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type VenueController struct {
	VenueService VenueService
}

func NewVenueController(venueService VenueService) *VenueController {
	return &VenueController{VenueService: venueService}
}

// ListVenues godoc
// @Summary List venues newest first
// @Tags venues
// @Produce json
// @Success 200 {array} Venue
// @Router /api/venues [get]
func (ctrl *VenueController) ListVenues(c *fiber.Ctx) error {
	venues, err := ctrl.VenueService.ListVenues(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving venues"})
	}
	return c.JSON(venues)
}

// GetVenue godoc
// @Summary Get venue by ID
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} Venue
// @Router /api/venues/{id} [get]
func (ctrl *VenueController) GetVenue(c *fiber.Ctx) error {
	venue, err := ctrl.VenueService.GetVenueByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Venue not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving venue"})
	}
	return c.JSON(venue)
}

// CreateVenue godoc
// @Summary Create a placeholder venue
// @Tags venues
// @Produce json
// @Success 201 {object} Venue
// @Router /api/venues [post]
func (ctrl *VenueController) CreateVenue(c *fiber.Ctx) error {
	venue, err := ctrl.VenueService.CreateVenue(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating venue"})
	}
	return c.Status(fiber.StatusCreated).JSON(venue)
}

// UpdateVenue godoc
// @Summary Overwrite a venue document
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param venue body Venue true "Venue"
// @Success 200 {object} Venue
// @Router /api/venues/{id} [put]
func (ctrl *VenueController) UpdateVenue(c *fiber.Ctx) error {
	var venue Venue
	if err := c.BodyParser(&venue); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := ctrl.VenueService.UpdateVenue(c.UserContext(), c.Params("id"), &venue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Venue not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating venue"})
	}
	return c.JSON(updated)
}

// DeleteVenue godoc
// @Summary Delete venue
// @Tags venues
// @Param id path string true "Venue ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/venues/{id} [delete]
func (ctrl *VenueController) DeleteVenue(c *fiber.Ctx) error {
	if err := ctrl.VenueService.DeleteVenue(c.UserContext(), c.Params("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Venue not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting venue"})
	}
	return c.JSON(fiber.Map{"message": "Venue deleted successfully"})
}

type assignPackagesRequest struct {
	PackageIDs []string `json:"package_ids"`
}

// AssignPackages godoc
// @Summary Replace the venue's assigned menu packages
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} Venue
// @Router /api/venues/{id}/packages [put]
func (ctrl *VenueController) AssignPackages(c *fiber.Ctx) error {
	var req assignPackagesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	venue, err := ctrl.VenueService.AssignPackages(c.UserContext(), c.Params("id"), req.PackageIDs)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Venue not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error assigning packages"})
	}
	return c.JSON(venue)
}

// ExportVenues godoc
// @Summary Download the venue list as an Excel workbook
// @Tags venues
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router /api/venues/export [get]
func (ctrl *VenueController) ExportVenues(c *fiber.Ctx) error {
	buf, err := ctrl.VenueService.ExportExcel(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error exporting venues"})
	}

	filename := fmt.Sprintf("venues_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
