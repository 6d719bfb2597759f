package media

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type MediaController struct {
	MediaService MediaService
}

func NewMediaController(mediaService MediaService) *MediaController {
	return &MediaController{MediaService: mediaService}
}

// Upload godoc
// @Summary Upload a media file into an entity's gallery
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param entity path string true "Entity (venues, singers, cars)"
// @Param id path string true "Entity ID"
// @Param kind query string false "photo or video" default(photo)
// @Success 201 {object} map[string]interface{}
// @Router /api/media/{entity}/{id} [post]
func (ctrl *MediaController) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File is required"})
	}

	kind := c.Query("kind", "photo")
	if kind != "photo" && kind != "video" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Kind must be photo or video"})
	}

	url, err := ctrl.MediaService.Upload(c.UserContext(), c.Params("entity"), c.Params("id"), kind, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownEntity):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case err == mongo.ErrNoDocuments:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Document not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error uploading file"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}

// Remove godoc
// @Summary Remove a gallery entry by index
// @Tags media
// @Param entity path string true "Entity (venues, singers, cars)"
// @Param id path string true "Entity ID"
// @Param index query int true "Index in the photo or video list"
// @Param kind query string false "photo or video" default(photo)
// @Success 200 {object} map[string]interface{}
// @Router /api/media/{entity}/{id} [delete]
func (ctrl *MediaController) Remove(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Query("index", "-1"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid index"})
	}

	kind := c.Query("kind", "photo")
	if kind != "photo" && kind != "video" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Kind must be photo or video"})
	}

	if err := ctrl.MediaService.Remove(c.UserContext(), c.Params("entity"), c.Params("id"), kind, index); err != nil {
		switch {
		case errors.Is(err, ErrUnknownEntity):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, ErrBadIndex):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case err == mongo.ErrNoDocuments:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Document not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error removing media"})
		}
	}

	return c.JSON(fiber.Map{"message": "Media removed successfully"})
}
