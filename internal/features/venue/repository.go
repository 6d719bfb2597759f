package venue

import (
	"context"
	"time"

	"go-eventcrm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *Venue) error
	FindByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context) ([]Venue, error)
	Replace(ctx context.Context, id string, venue *Venue) error
	Delete(ctx context.Context, id string) error
	AssignPackages(ctx context.Context, id string, packageIDs []primitive.ObjectID) error
	UnsetCustomField(ctx context.Context, key string) (int64, error)
}

type VenueRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewVenueRepository(mongodb *database.MongodbDB) VenueRepository {
	return &VenueRepositoryImpl{
		Collection: mongodb.DB.Collection("venues"),
	}
}

func (r *VenueRepositoryImpl) Create(ctx context.Context, venue *Venue) error {
	venue.ID = primitive.NewObjectID()
	venue.CreatedAt = time.Now()
	venue.UpdatedAt = time.Now()

	_, err := r.Collection.InsertOne(ctx, venue)
	return err
}

func (r *VenueRepositoryImpl) FindByID(ctx context.Context, id string) (*Venue, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var venue Venue
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&venue)
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *VenueRepositoryImpl) List(ctx context.Context) ([]Venue, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var venues []Venue
	if err = cursor.All(ctx, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

// Replace overwrites the whole document. The stored _id and created_at
// win over whatever the body carried.
func (r *VenueRepositoryImpl) Replace(ctx context.Context, id string, venue *Venue) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	var existing Venue
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&existing); err != nil {
		return err
	}

	venue.ID = existing.ID
	venue.CreatedAt = existing.CreatedAt
	venue.UpdatedAt = time.Now()

	_, err = r.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, venue)
	return err
}

func (r *VenueRepositoryImpl) Delete(ctx context.Context, id string) error {
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

func (r *VenueRepositoryImpl) AssignPackages(ctx context.Context, id string, packageIDs []primitive.ObjectID) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	if packageIDs == nil {
		packageIDs = []primitive.ObjectID{}
	}

	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"assigned_package_ids": packageIDs, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UnsetCustomField removes the lookup key from every venue's
// custom_fields map. Used by the optional lookup-delete cascade.
func (r *VenueRepositoryImpl) UnsetCustomField(ctx context.Context, key string) (int64, error) {
	res, err := r.Collection.UpdateMany(ctx,
		bson.M{"custom_fields." + key: bson.M{"$exists": true}},
		bson.M{"$unset": bson.M{"custom_fields." + key: ""}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
