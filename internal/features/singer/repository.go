package singer

import (
	"context"
	"time"

	"go-eventcrm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SingerRepository interface {
	Create(ctx context.Context, singer *Singer) error
	FindByID(ctx context.Context, id string) (*Singer, error)
	List(ctx context.Context) ([]Singer, error)
	Replace(ctx context.Context, id string, singer *Singer) error
	Delete(ctx context.Context, id string) error
	AssignRepertoires(ctx context.Context, id string, repertoireIDs []primitive.ObjectID) error
	AddPricingPackage(ctx context.Context, id string, pkg *PricingPackage) error
	UpdatePricingPackage(ctx context.Context, id string, pkg *PricingPackage) error
	RemovePricingPackage(ctx context.Context, id string, pkgID primitive.ObjectID) error
}

type SingerRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewSingerRepository(mongodb *database.MongodbDB) SingerRepository {
	return &SingerRepositoryImpl{
		Collection: mongodb.DB.Collection("singers"),
	}
}

func (r *SingerRepositoryImpl) Create(ctx context.Context, singer *Singer) error {
	singer.ID = primitive.NewObjectID()
	singer.CreatedAt = time.Now()
	singer.UpdatedAt = time.Now()

	_, err := r.Collection.InsertOne(ctx, singer)
	return err
}

func (r *SingerRepositoryImpl) FindByID(ctx context.Context, id string) (*Singer, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var singer Singer
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&singer)
	if err != nil {
		return nil, err
	}
	return &singer, nil
}

func (r *SingerRepositoryImpl) List(ctx context.Context) ([]Singer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var singers []Singer
	if err = cursor.All(ctx, &singers); err != nil {
		return nil, err
	}
	return singers, nil
}

// Replace overwrites the document but keeps the stored _id, created_at
// and pricing_packages; packages change only through their own routes.
func (r *SingerRepositoryImpl) Replace(ctx context.Context, id string, singer *Singer) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	var existing Singer
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&existing); err != nil {
		return err
	}

	singer.ID = existing.ID
	singer.CreatedAt = existing.CreatedAt
	singer.PricingPackages = existing.PricingPackages
	singer.UpdatedAt = time.Now()

	_, err = r.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, singer)
	return err
}

func (r *SingerRepositoryImpl) Delete(ctx context.Context, id string) error {
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

func (r *SingerRepositoryImpl) AssignRepertoires(ctx context.Context, id string, repertoireIDs []primitive.ObjectID) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	if repertoireIDs == nil {
		repertoireIDs = []primitive.ObjectID{}
	}

	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"assigned_repertoire_ids": repertoireIDs, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *SingerRepositoryImpl) AddPricingPackage(ctx context.Context, id string, pkg *PricingPackage) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	pkg.ID = primitive.NewObjectID()

	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{
			"$push": bson.M{"pricing_packages": pkg},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *SingerRepositoryImpl) UpdatePricingPackage(ctx context.Context, id string, pkg *PricingPackage) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": objectID, "pricing_packages._id": pkg.ID},
		bson.M{
			"$set": bson.M{
				"pricing_packages.$": pkg,
				"updated_at":         time.Now(),
			},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *SingerRepositoryImpl) RemovePricingPackage(ctx context.Context, id string, pkgID primitive.ObjectID) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{
			"$pull": bson.M{"pricing_packages": bson.M{"_id": pkgID}},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
