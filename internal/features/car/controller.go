package car

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type CarController struct {
	CarService CarService
}

func NewCarController(carService CarService) *CarController {
	return &CarController{CarService: carService}
}

// ListProviders godoc
// @Summary List car providers
// @Tags cars
// @Produce json
// @Success 200 {array} CarProvider
// @Router /api/car-providers [get]
func (ctrl *CarController) ListProviders(c *fiber.Ctx) error {
	providers, err := ctrl.CarService.ListProviders(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving providers"})
	}
	return c.JSON(providers)
}

// GetProvider godoc
// @Summary Get car provider by ID
// @Tags cars
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} CarProvider
// @Router /api/car-providers/{id} [get]
func (ctrl *CarController) GetProvider(c *fiber.Ctx) error {
	provider, err := ctrl.CarService.GetProviderByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving provider"})
	}
	return c.JSON(provider)
}

// CreateProvider godoc
// @Summary Create a car provider
// @Tags cars
// @Accept json
// @Produce json
// @Success 201 {object} CarProvider
// @Router /api/car-providers [post]
func (ctrl *CarController) CreateProvider(c *fiber.Ctx) error {
	var provider CarProvider
	if err := c.BodyParser(&provider); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if provider.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Provider name is required"})
	}

	created, err := ctrl.CarService.CreateProvider(c.UserContext(), &provider)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating provider"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateProvider godoc
// @Summary Update a car provider
// @Tags cars
// @Accept json
// @Param id path string true "Provider ID"
// @Success 200 {object} CarProvider
// @Router /api/car-providers/{id} [put]
func (ctrl *CarController) UpdateProvider(c *fiber.Ctx) error {
	var provider CarProvider
	if err := c.BodyParser(&provider); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := ctrl.CarService.UpdateProvider(c.UserContext(), c.Params("id"), &provider); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating provider"})
	}
	return c.JSON(provider)
}

// DeleteProvider godoc
// @Summary Delete a car provider and its cars
// @Tags cars
// @Param id path string true "Provider ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/car-providers/{id} [delete]
func (ctrl *CarController) DeleteProvider(c *fiber.Ctx) error {
	if err := ctrl.CarService.DeleteProvider(c.UserContext(), c.Params("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting provider"})
	}
	return c.JSON(fiber.Map{"message": "Provider deleted successfully"})
}

// ListProviderCars godoc
// @Summary List cars belonging to a provider
// @Tags cars
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {array} Car
// @Router /api/car-providers/{id}/cars [get]
func (ctrl *CarController) ListProviderCars(c *fiber.Ctx) error {
	cars, err := ctrl.CarService.ListCarsByProvider(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid provider id"})
	}
	return c.JSON(cars)
}

// ListCars godoc
// @Summary List all cars
// @Tags cars
// @Produce json
// @Success 200 {array} Car
// @Router /api/cars [get]
func (ctrl *CarController) ListCars(c *fiber.Ctx) error {
	cars, err := ctrl.CarService.ListCars(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving cars"})
	}
	return c.JSON(cars)
}

// GetCar godoc
// @Summary Get car by ID
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} Car
// @Router /api/cars/{id} [get]
func (ctrl *CarController) GetCar(c *fiber.Ctx) error {
	car, err := ctrl.CarService.GetCarByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Car not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving car"})
	}
	return c.JSON(car)
}

// CreateCar godoc
// @Summary Create a car under a provider
// @Tags cars
// @Accept json
// @Produce json
// @Success 201 {object} Car
// @Router /api/cars [post]
func (ctrl *CarController) CreateCar(c *fiber.Ctx) error {
	var car Car
	if err := c.BodyParser(&car); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	created, err := ctrl.CarService.CreateCar(c.UserContext(), &car)
	if err != nil {
		if errors.Is(err, ErrUnknownProvider) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating car"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateCar godoc
// @Summary Update a car
// @Tags cars
// @Accept json
// @Param id path string true "Car ID"
// @Success 200 {object} Car
// @Router /api/cars/{id} [put]
func (ctrl *CarController) UpdateCar(c *fiber.Ctx) error {
	var car Car
	if err := c.BodyParser(&car); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := ctrl.CarService.UpdateCar(c.UserContext(), c.Params("id"), &car); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Car not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating car"})
	}
	return c.JSON(car)
}

// DeleteCar godoc
// @Summary Delete a car
// @Tags cars
// @Param id path string true "Car ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/cars/{id} [delete]
func (ctrl *CarController) DeleteCar(c *fiber.Ctx) error {
	if err := ctrl.CarService.DeleteCar(c.UserContext(), c.Params("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Car not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting car"})
	}
	return c.JSON(fiber.Map{"message": "Car deleted successfully"})
}
