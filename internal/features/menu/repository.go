package menu

import (
	"context"
	"time"

	"go-eventcrm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MenuRepository interface {
	CreateItem(ctx context.Context, item *MenuItem) error
	FindItemByID(ctx context.Context, id string) (*MenuItem, error)
	ListItems(ctx context.Context) ([]MenuItem, error)
	CountItemsByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	UpdateItem(ctx context.Context, id string, item *MenuItem) error
	DeleteItemCascade(ctx context.Context, id string) error

	CreatePackage(ctx context.Context, pkg *MenuPackage) error
	FindPackageByID(ctx context.Context, id string) (*MenuPackage, error)
	ListPackages(ctx context.Context) ([]MenuPackage, error)
	UpdatePackage(ctx context.Context, id string, pkg *MenuPackage) error
	DeletePackage(ctx context.Context, id string) error
}

type MenuRepositoryImpl struct {
	DB       *database.MongodbDB
	Items    *mongo.Collection
	Packages *mongo.Collection
}

func NewMenuRepository(mongodb *database.MongodbDB) MenuRepository {
	return &MenuRepositoryImpl{
		DB:       mongodb,
		Items:    mongodb.DB.Collection("menu_items"),
		Packages: mongodb.DB.Collection("menu_packages"),
	}
}

func (r *MenuRepositoryImpl) CreateItem(ctx context.Context, item *MenuItem) error {
	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	_, err := r.Items.InsertOne(ctx, item)
	return err
}

func (r *MenuRepositoryImpl) FindItemByID(ctx context.Context, id string) (*MenuItem, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var item MenuItem
	err = r.Items.FindOne(ctx, bson.M{"_id": objectID}).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepositoryImpl) ListItems(ctx context.Context) ([]MenuItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.Items.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []MenuItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepositoryImpl) CountItemsByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return r.Items.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MenuRepositoryImpl) UpdateItem(ctx context.Context, id string, item *MenuItem) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"name":         item.Name,
			"category":     item.Category,
			"description":  item.Description,
			"portion_size": item.PortionSize,
			"photo_url":    item.PhotoURL,
			"updated_at":   time.Now(),
		},
	}

	res, err := r.Items.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteItemCascade removes the item and pulls its id from every
// package's item_ids inside one transaction. A re-fetch after the call
// never shows a package referencing the deleted item.
func (r *MenuRepositoryImpl) DeleteItemCascade(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	session, err := r.DB.DB.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.Items.DeleteOne(sc, bson.M{"_id": objectID})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}

		_, err = r.Packages.UpdateMany(sc,
			bson.M{"item_ids": objectID},
			bson.M{"$pull": bson.M{"item_ids": objectID}},
		)
		return nil, err
	})
	return err
}

func (r *MenuRepositoryImpl) CreatePackage(ctx context.Context, pkg *MenuPackage) error {
	pkg.ID = primitive.NewObjectID()
	pkg.CreatedAt = time.Now()
	pkg.UpdatedAt = time.Now()
	if pkg.ItemIDs == nil {
		pkg.ItemIDs = []primitive.ObjectID{}
	}

	_, err := r.Packages.InsertOne(ctx, pkg)
	return err
}

func (r *MenuRepositoryImpl) FindPackageByID(ctx context.Context, id string) (*MenuPackage, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var pkg MenuPackage
	err = r.Packages.FindOne(ctx, bson.M{"_id": objectID}).Decode(&pkg)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *MenuRepositoryImpl) ListPackages(ctx context.Context) ([]MenuPackage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Packages.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pkgs []MenuPackage
	if err = cursor.All(ctx, &pkgs); err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (r *MenuRepositoryImpl) UpdatePackage(ctx context.Context, id string, pkg *MenuPackage) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	if pkg.ItemIDs == nil {
		pkg.ItemIDs = []primitive.ObjectID{}
	}

	update := bson.M{
		"$set": bson.M{
			"name":       pkg.Name,
			"price_azn":  pkg.PriceAzn,
			"item_ids":   pkg.ItemIDs,
			"updated_at": time.Now(),
		},
	}

	res, err := r.Packages.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeletePackage removes only the package. Venue assigned_package_ids
// cleanup belongs to the integrity sweep.
func (r *MenuRepositoryImpl) DeletePackage(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := r.Packages.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
