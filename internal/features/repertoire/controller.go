package repertoire

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type RepertoireController struct {
	Service RepertoireService
}

func NewRepertoireController(service RepertoireService) *RepertoireController {
	return &RepertoireController{Service: service}
}

// ListSongs godoc
// @Summary List the shared song catalog
// @Tags repertoires
// @Produce json
// @Success 200 {array} Song
// @Router /api/songs [get]
func (ctrl *RepertoireController) ListSongs(c *fiber.Ctx) error {
	songs, err := ctrl.Service.ListSongs(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving songs"})
	}
	return c.JSON(songs)
}

// CreateSong godoc
// @Summary Add a song to the catalog
// @Tags repertoires
// @Accept json
// @Produce json
// @Success 201 {object} Song
// @Router /api/songs [post]
func (ctrl *RepertoireController) CreateSong(c *fiber.Ctx) error {
	var song Song
	if err := c.BodyParser(&song); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if song.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Song title is required"})
	}

	created, err := ctrl.Service.CreateSong(c.UserContext(), &song)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating song"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateSong godoc
// @Summary Update a song
// @Tags repertoires
// @Accept json
// @Param id path string true "Song ID"
// @Success 200 {object} Song
// @Router /api/songs/{id} [put]
func (ctrl *RepertoireController) UpdateSong(c *fiber.Ctx) error {
	var song Song
	if err := c.BodyParser(&song); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := ctrl.Service.UpdateSong(c.UserContext(), c.Params("id"), &song); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Song not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating song"})
	}
	return c.JSON(song)
}

// DeleteSong godoc
// @Summary Delete a song and remove it from all repertoires
// @Tags repertoires
// @Param id path string true "Song ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/songs/{id} [delete]
func (ctrl *RepertoireController) DeleteSong(c *fiber.Ctx) error {
	if err := ctrl.Service.DeleteSong(c.UserContext(), c.Params("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Song not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting song"})
	}
	return c.JSON(fiber.Map{"message": "Song deleted successfully"})
}

// ListRepertoires godoc
// @Summary List repertoires
// @Tags repertoires
// @Produce json
// @Success 200 {array} Repertoire
// @Router /api/repertoires [get]
func (ctrl *RepertoireController) ListRepertoires(c *fiber.Ctx) error {
	reps, err := ctrl.Service.ListRepertoires(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving repertoires"})
	}
	return c.JSON(reps)
}

// GetRepertoire godoc
// @Summary Get repertoire by ID
// @Tags repertoires
// @Produce json
// @Param id path string true "Repertoire ID"
// @Success 200 {object} Repertoire
// @Router /api/repertoires/{id} [get]
func (ctrl *RepertoireController) GetRepertoire(c *fiber.Ctx) error {
	rep, err := ctrl.Service.GetRepertoireByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Repertoire not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving repertoire"})
	}
	return c.JSON(rep)
}

// CreateRepertoire godoc
// @Summary Create a repertoire
// @Tags repertoires
// @Accept json
// @Produce json
// @Success 201 {object} Repertoire
// @Router /api/repertoires [post]
func (ctrl *RepertoireController) CreateRepertoire(c *fiber.Ctx) error {
	var rep Repertoire
	if err := c.BodyParser(&rep); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if rep.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Repertoire name is required"})
	}

	created, err := ctrl.Service.CreateRepertoire(c.UserContext(), &rep)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating repertoire"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateRepertoire godoc
// @Summary Update a repertoire's name and song order
// @Tags repertoires
// @Accept json
// @Param id path string true "Repertoire ID"
// @Success 200 {object} Repertoire
// @Router /api/repertoires/{id} [put]
func (ctrl *RepertoireController) UpdateRepertoire(c *fiber.Ctx) error {
	var rep Repertoire
	if err := c.BodyParser(&rep); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := ctrl.Service.UpdateRepertoire(c.UserContext(), c.Params("id"), &rep); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Repertoire not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating repertoire"})
	}
	return c.JSON(rep)
}

// DeleteRepertoire godoc
// @Summary Delete a repertoire definition
// @Tags repertoires
// @Param id path string true "Repertoire ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/repertoires/{id} [delete]
func (ctrl *RepertoireController) DeleteRepertoire(c *fiber.Ctx) error {
	if err := ctrl.Service.DeleteRepertoire(c.UserContext(), c.Params("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Repertoire not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting repertoire"})
	}
	return c.JSON(fiber.Map{"message": "Repertoire deleted successfully"})
}
