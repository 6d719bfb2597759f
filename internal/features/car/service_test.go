package car

import (
	"context"
	"errors"
	"testing"

	common_models "go-eventcrm/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeCarRepo struct {
	providers map[string]*CarProvider
	cars      map[string]*Car
}

func newFakeCarRepo() *fakeCarRepo {
	return &fakeCarRepo{
		providers: map[string]*CarProvider{},
		cars:      map[string]*Car{},
	}
}

func (f *fakeCarRepo) CreateProvider(ctx context.Context, provider *CarProvider) error {
	provider.ID = primitive.NewObjectID()
	f.providers[provider.ID.Hex()] = provider
	return nil
}

func (f *fakeCarRepo) FindProviderByID(ctx context.Context, id string) (*CarProvider, error) {
	p, ok := f.providers[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (f *fakeCarRepo) ListProviders(ctx context.Context) ([]CarProvider, error) {
	out := make([]CarProvider, 0, len(f.providers))
	for _, p := range f.providers {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeCarRepo) UpdateProvider(ctx context.Context, id string, provider *CarProvider) error {
	stored, ok := f.providers[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	provider.ID = stored.ID
	f.providers[id] = provider
	return nil
}

func (f *fakeCarRepo) DeleteProviderWithCars(ctx context.Context, id string) (int64, error) {
	p, ok := f.providers[id]
	if !ok {
		return 0, mongo.ErrNoDocuments
	}
	var removed int64
	for hex, c := range f.cars {
		if c.ProviderID == p.ID {
			delete(f.cars, hex)
			removed++
		}
	}
	delete(f.providers, id)
	return removed, nil
}

func (f *fakeCarRepo) CreateCar(ctx context.Context, car *Car) error {
	car.ID = primitive.NewObjectID()
	f.cars[car.ID.Hex()] = car
	return nil
}

func (f *fakeCarRepo) FindCarByID(ctx context.Context, id string) (*Car, error) {
	c, ok := f.cars[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return c, nil
}

func (f *fakeCarRepo) ListCars(ctx context.Context) ([]Car, error) {
	out := make([]Car, 0, len(f.cars))
	for _, c := range f.cars {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCarRepo) ListCarsByProvider(ctx context.Context, providerID primitive.ObjectID) ([]Car, error) {
	var out []Car
	for _, c := range f.cars {
		if c.ProviderID == providerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCarRepo) UpdateCar(ctx context.Context, id string, car *Car) error {
	if _, ok := f.cars[id]; !ok {
		return mongo.ErrNoDocuments
	}
	f.cars[id] = car
	return nil
}

func (f *fakeCarRepo) DeleteCar(ctx context.Context, id string) error {
	if _, ok := f.cars[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.cars, id)
	return nil
}

func (f *fakeCarRepo) RenameProviderOnCars(ctx context.Context, providerID primitive.ObjectID, name string) error {
	for _, c := range f.cars {
		if c.ProviderID == providerID {
			c.ProviderName = name
		}
	}
	return nil
}

type noopAudit struct{}

func (noopAudit) LogChange(ctx context.Context, action common_models.AuditAction, module, recordID string, changes map[string]common_models.Change) error {
	return nil
}

func (noopAudit) ListEntries(ctx context.Context, module string, limit int64) ([]common_models.AuditLog, error) {
	return nil, nil
}

func TestCreateCarStampsProviderName(t *testing.T) {
	repo := newFakeCarRepo()
	svc := NewCarService(repo, noopAudit{})

	provider, err := svc.CreateProvider(context.Background(), &CarProvider{Name: "Baku Fleet", Type: "fleet"})
	if err != nil {
		t.Fatalf("CreateProvider() error = %v", err)
	}

	car, err := svc.CreateCar(context.Background(), &Car{Brand: "Mercedes", Model: "S-Class", ProviderID: provider.ID})
	if err != nil {
		t.Fatalf("CreateCar() error = %v", err)
	}
	if car.ProviderName != "Baku Fleet" {
		t.Errorf("provider_name = %q, want stamped from provider", car.ProviderName)
	}
}

func TestCreateCarRejectsUnknownProvider(t *testing.T) {
	svc := NewCarService(newFakeCarRepo(), noopAudit{})

	_, err := svc.CreateCar(context.Background(), &Car{Brand: "Kia", ProviderID: primitive.NewObjectID()})
	if !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("CreateCar() error = %v, want ErrUnknownProvider", err)
	}
}

func TestUpdateProviderSyncsCarNames(t *testing.T) {
	repo := newFakeCarRepo()
	svc := NewCarService(repo, noopAudit{})

	provider, err := svc.CreateProvider(context.Background(), &CarProvider{Name: "Baku Fleet", Type: "fleet"})
	if err != nil {
		t.Fatalf("CreateProvider() error = %v", err)
	}
	car, err := svc.CreateCar(context.Background(), &Car{Brand: "Mercedes", ProviderID: provider.ID})
	if err != nil {
		t.Fatalf("CreateCar() error = %v", err)
	}

	if err := svc.UpdateProvider(context.Background(), provider.ID.Hex(), &CarProvider{Name: "Caspian Cars", Type: "fleet"}); err != nil {
		t.Fatalf("UpdateProvider() error = %v", err)
	}

	stored, _ := repo.FindCarByID(context.Background(), car.ID.Hex())
	if stored.ProviderName != "Caspian Cars" {
		t.Errorf("provider_name = %q, want renamed on the car", stored.ProviderName)
	}
}

func TestDeleteProviderRemovesCars(t *testing.T) {
	repo := newFakeCarRepo()
	svc := NewCarService(repo, noopAudit{})

	provider, err := svc.CreateProvider(context.Background(), &CarProvider{Name: "Baku Fleet"})
	if err != nil {
		t.Fatalf("CreateProvider() error = %v", err)
	}
	other, err := svc.CreateProvider(context.Background(), &CarProvider{Name: "Other"})
	if err != nil {
		t.Fatalf("CreateProvider() error = %v", err)
	}
	if _, err := svc.CreateCar(context.Background(), &Car{Brand: "Mercedes", ProviderID: provider.ID}); err != nil {
		t.Fatalf("CreateCar() error = %v", err)
	}
	kept, err := svc.CreateCar(context.Background(), &Car{Brand: "Kia", ProviderID: other.ID})
	if err != nil {
		t.Fatalf("CreateCar() error = %v", err)
	}

	if err := svc.DeleteProvider(context.Background(), provider.ID.Hex()); err != nil {
		t.Fatalf("DeleteProvider() error = %v", err)
	}

	cars, _ := repo.ListCars(context.Background())
	if len(cars) != 1 || cars[0].ID != kept.ID {
		t.Errorf("remaining cars = %v, want only the other provider's car", cars)
	}
}

func TestCreateProviderDefaultsType(t *testing.T) {
	svc := NewCarService(newFakeCarRepo(), noopAudit{})

	p, err := svc.CreateProvider(context.Background(), &CarProvider{Name: "Solo Driver"})
	if err != nil {
		t.Fatalf("CreateProvider() error = %v", err)
	}
	if p.Type != "individual" {
		t.Errorf("type = %q, want %q", p.Type, "individual")
	}
}
