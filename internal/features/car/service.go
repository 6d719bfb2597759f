package car

import (
	"context"
	"errors"
	"strconv"

	common_models "go-eventcrm/internal/common/models"
	"go-eventcrm/internal/features/audit"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUnknownProvider = errors.New("car references an unknown provider")

type CarService interface {
	CreateProvider(ctx context.Context, provider *CarProvider) (*CarProvider, error)
	GetProviderByID(ctx context.Context, id string) (*CarProvider, error)
	ListProviders(ctx context.Context) ([]CarProvider, error)
	UpdateProvider(ctx context.Context, id string, provider *CarProvider) error
	DeleteProvider(ctx context.Context, id string) error

	CreateCar(ctx context.Context, car *Car) (*Car, error)
	GetCarByID(ctx context.Context, id string) (*Car, error)
	ListCars(ctx context.Context) ([]Car, error)
	ListCarsByProvider(ctx context.Context, providerID string) ([]Car, error)
	UpdateCar(ctx context.Context, id string, car *Car) error
	DeleteCar(ctx context.Context, id string) error
}

type CarServiceImpl struct {
	CarRepo      CarRepository
	AuditService audit.AuditService
}

func NewCarService(carRepo CarRepository, auditService audit.AuditService) CarService {
	return &CarServiceImpl{
		CarRepo:      carRepo,
		AuditService: auditService,
	}
}

func (s *CarServiceImpl) CreateProvider(ctx context.Context, provider *CarProvider) (*CarProvider, error) {
	if provider.Type == "" {
		provider.Type = "individual"
	}

	if err := s.CarRepo.CreateProvider(ctx, provider); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "car_providers", provider.ID.Hex(), map[string]common_models.Change{
		"name": {New: provider.Name},
	})

	return provider, nil
}

func (s *CarServiceImpl) GetProviderByID(ctx context.Context, id string) (*CarProvider, error) {
	return s.CarRepo.FindProviderByID(ctx, id)
}

func (s *CarServiceImpl) ListProviders(ctx context.Context) ([]CarProvider, error) {
	return s.CarRepo.ListProviders(ctx)
}

func (s *CarServiceImpl) UpdateProvider(ctx context.Context, id string, provider *CarProvider) error {
	before, err := s.CarRepo.FindProviderByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.CarRepo.UpdateProvider(ctx, id, provider); err != nil {
		return err
	}

	// Provider name is denormalized onto cars.
	if before.Name != provider.Name {
		if err := s.CarRepo.RenameProviderOnCars(ctx, before.ID, provider.Name); err != nil {
			return err
		}
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "car_providers", id, map[string]common_models.Change{
		"name": {Old: before.Name, New: provider.Name},
	})

	return nil
}

func (s *CarServiceImpl) DeleteProvider(ctx context.Context, id string) error {
	provider, err := s.CarRepo.FindProviderByID(ctx, id)
	if err != nil {
		return err
	}

	removed, err := s.CarRepo.DeleteProviderWithCars(ctx, id)
	if err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, "car_providers", id, map[string]common_models.Change{
		"name":         {Old: provider.Name},
		"cars_removed": {Old: strconv.FormatInt(removed, 10)},
	})

	return nil
}

func (s *CarServiceImpl) CreateCar(ctx context.Context, car *Car) (*Car, error) {
	provider, err := s.CarRepo.FindProviderByID(ctx, car.ProviderID.Hex())
	if err != nil {
		return nil, ErrUnknownProvider
	}
	car.ProviderName = provider.Name

	if err := s.CarRepo.CreateCar(ctx, car); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "cars", car.ID.Hex(), map[string]common_models.Change{
		"brand": {New: car.Brand},
		"model": {New: car.Model},
	})

	return car, nil
}

func (s *CarServiceImpl) GetCarByID(ctx context.Context, id string) (*Car, error) {
	return s.CarRepo.FindCarByID(ctx, id)
}

func (s *CarServiceImpl) ListCars(ctx context.Context) ([]Car, error) {
	return s.CarRepo.ListCars(ctx)
}

func (s *CarServiceImpl) ListCarsByProvider(ctx context.Context, providerID string) ([]Car, error) {
	objectID, err := primitive.ObjectIDFromHex(providerID)
	if err != nil {
		return nil, err
	}
	return s.CarRepo.ListCarsByProvider(ctx, objectID)
}

func (s *CarServiceImpl) UpdateCar(ctx context.Context, id string, car *Car) error {
	if err := s.CarRepo.UpdateCar(ctx, id, car); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "cars", id, map[string]common_models.Change{
		"brand": {New: car.Brand},
		"model": {New: car.Model},
	})

	return nil
}

func (s *CarServiceImpl) DeleteCar(ctx context.Context, id string) error {
	car, err := s.CarRepo.FindCarByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.CarRepo.DeleteCar(ctx, id); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, "cars", id, map[string]common_models.Change{
		"brand": {Old: car.Brand},
		"model": {Old: car.Model},
	})

	return nil
}
