package lookup

import (
	"context"
	"time"

	"go-eventcrm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LookupRepository interface {
	Create(ctx context.Context, lookup *Lookup) error
	FindByID(ctx context.Context, id string) (*Lookup, error)
	FindByKey(ctx context.Context, key string) (*Lookup, error)
	List(ctx context.Context) ([]Lookup, error)
	Rename(ctx context.Context, id string, name string) error
	ReplaceValues(ctx context.Context, id string, values []string) error
	Delete(ctx context.Context, id string) error
}

type LookupRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewLookupRepository(mongodb *database.MongodbDB) LookupRepository {
	return &LookupRepositoryImpl{
		Collection: mongodb.DB.Collection("lookups"),
	}
}

func (r *LookupRepositoryImpl) Create(ctx context.Context, lookup *Lookup) error {
	lookup.ID = primitive.NewObjectID()
	lookup.CreatedAt = time.Now()
	lookup.UpdatedAt = time.Now()
	if lookup.Values == nil {
		lookup.Values = []string{}
	}

	_, err := r.Collection.InsertOne(ctx, lookup)
	return err
}

func (r *LookupRepositoryImpl) FindByID(ctx context.Context, id string) (*Lookup, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var lookup Lookup
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&lookup)
	if err != nil {
		return nil, err
	}
	return &lookup, nil
}

func (r *LookupRepositoryImpl) FindByKey(ctx context.Context, key string) (*Lookup, error) {
	var lookup Lookup
	err := r.Collection.FindOne(ctx, bson.M{"key": key}).Decode(&lookup)
	if err != nil {
		return nil, err
	}
	return &lookup, nil
}

func (r *LookupRepositoryImpl) List(ctx context.Context) ([]Lookup, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lookups []Lookup
	if err = cursor.All(ctx, &lookups); err != nil {
		return nil, err
	}
	return lookups, nil
}

// Rename changes the display name only. The key is immutable.
func (r *LookupRepositoryImpl) Rename(ctx context.Context, id string, name string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"name": name, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *LookupRepositoryImpl) ReplaceValues(ctx context.Context, id string, values []string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	if values == nil {
		values = []string{}
	}

	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"values": values, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *LookupRepositoryImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
