package car

import (
	"context"
	"time"

	"go-eventcrm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CarRepository interface {
	CreateProvider(ctx context.Context, provider *CarProvider) error
	FindProviderByID(ctx context.Context, id string) (*CarProvider, error)
	ListProviders(ctx context.Context) ([]CarProvider, error)
	UpdateProvider(ctx context.Context, id string, provider *CarProvider) error
	DeleteProviderWithCars(ctx context.Context, id string) (int64, error)

	CreateCar(ctx context.Context, car *Car) error
	FindCarByID(ctx context.Context, id string) (*Car, error)
	ListCars(ctx context.Context) ([]Car, error)
	ListCarsByProvider(ctx context.Context, providerID primitive.ObjectID) ([]Car, error)
	UpdateCar(ctx context.Context, id string, car *Car) error
	DeleteCar(ctx context.Context, id string) error
	RenameProviderOnCars(ctx context.Context, providerID primitive.ObjectID, name string) error
}

type CarRepositoryImpl struct {
	DB        *database.MongodbDB
	Providers *mongo.Collection
	Cars      *mongo.Collection
}

func NewCarRepository(mongodb *database.MongodbDB) CarRepository {
	return &CarRepositoryImpl{
		DB:        mongodb,
		Providers: mongodb.DB.Collection("car_providers"),
		Cars:      mongodb.DB.Collection("cars"),
	}
}

func (r *CarRepositoryImpl) CreateProvider(ctx context.Context, provider *CarProvider) error {
	provider.ID = primitive.NewObjectID()
	provider.CreatedAt = time.Now()
	provider.UpdatedAt = time.Now()
	if provider.Phones == nil {
		provider.Phones = []string{}
	}
	if provider.PickupPoints == nil {
		provider.PickupPoints = []PickupPoint{}
	}

	_, err := r.Providers.InsertOne(ctx, provider)
	return err
}

func (r *CarRepositoryImpl) FindProviderByID(ctx context.Context, id string) (*CarProvider, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var provider CarProvider
	err = r.Providers.FindOne(ctx, bson.M{"_id": objectID}).Decode(&provider)
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *CarRepositoryImpl) ListProviders(ctx context.Context) ([]CarProvider, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Providers.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var providers []CarProvider
	if err = cursor.All(ctx, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *CarRepositoryImpl) UpdateProvider(ctx context.Context, id string, provider *CarProvider) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"name":           provider.Name,
			"type":           provider.Type,
			"contact_person": provider.ContactPerson,
			"phones":         provider.Phones,
			"messengers":     provider.Messengers,
			"address":        provider.Address,
			"city_code":      provider.CityCode,
			"pickup_points":  provider.PickupPoints,
			"updated_at":     time.Now(),
		},
	}

	res, err := r.Providers.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteProviderWithCars removes the provider and every car that
// references it in one transaction. Returns the number of cars removed.
func (r *CarRepositoryImpl) DeleteProviderWithCars(ctx context.Context, id string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}

	session, err := r.DB.DB.Client().StartSession()
	if err != nil {
		return 0, err
	}
	defer session.EndSession(ctx)

	removed, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.Providers.DeleteOne(sc, bson.M{"_id": objectID})
		if err != nil {
			return int64(0), err
		}
		if res.DeletedCount == 0 {
			return int64(0), mongo.ErrNoDocuments
		}

		carsRes, err := r.Cars.DeleteMany(sc, bson.M{"provider_id": objectID})
		if err != nil {
			return int64(0), err
		}
		return carsRes.DeletedCount, nil
	})
	if err != nil {
		return 0, err
	}
	return removed.(int64), nil
}

func (r *CarRepositoryImpl) CreateCar(ctx context.Context, car *Car) error {
	car.ID = primitive.NewObjectID()
	car.CreatedAt = time.Now()
	car.UpdatedAt = time.Now()

	_, err := r.Cars.InsertOne(ctx, car)
	return err
}

func (r *CarRepositoryImpl) FindCarByID(ctx context.Context, id string) (*Car, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var car Car
	err = r.Cars.FindOne(ctx, bson.M{"_id": objectID}).Decode(&car)
	if err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *CarRepositoryImpl) ListCars(ctx context.Context) ([]Car, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.Cars.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cars []Car
	if err = cursor.All(ctx, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *CarRepositoryImpl) ListCarsByProvider(ctx context.Context, providerID primitive.ObjectID) ([]Car, error) {
	cursor, err := r.Cars.Find(ctx, bson.M{"provider_id": providerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cars []Car
	if err = cursor.All(ctx, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *CarRepositoryImpl) UpdateCar(ctx context.Context, id string, car *Car) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"brand":      car.Brand,
			"model":      car.Model,
			"year":       car.Year,
			"class":      car.Class,
			"body_type":  car.BodyType,
			"color":      car.Color,
			"seats":      car.Seats,
			"pricing":    car.Pricing,
			"updated_at": time.Now(),
		},
	}

	res, err := r.Cars.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *CarRepositoryImpl) DeleteCar(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := r.Cars.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// RenameProviderOnCars keeps the denormalized provider_name in sync
// after a provider rename.
func (r *CarRepositoryImpl) RenameProviderOnCars(ctx context.Context, providerID primitive.ObjectID, name string) error {
	_, err := r.Cars.UpdateMany(ctx,
		bson.M{"provider_id": providerID},
		bson.M{"$set": bson.M{"provider_name": name}},
	)
	return err
}
