package assistant

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type AssistantController struct {
	AssistantService AssistantService
}

func NewAssistantController(assistantService AssistantService) *AssistantController {
	return &AssistantController{AssistantService: assistantService}
}

type askRequest struct {
	Question string `json:"question"`
}

// AskAboutVenue godoc
// @Summary Ask the assistant a question about a venue
// @Tags assistant
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/assistant/venues/{id} [post]
func (ctrl *AssistantController) AskAboutVenue(c *fiber.Ctx) error {
	var req askRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Question is required"})
	}

	reply, err := ctrl.AssistantService.AskAboutVenue(c.UserContext(), c.Params("id"), req.Question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Venue not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error contacting assistant"})
	}

	return c.JSON(fiber.Map{"reply": reply})
}
