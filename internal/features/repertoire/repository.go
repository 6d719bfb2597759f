package repertoire

import (
	"context"
	"time"

	"go-eventcrm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RepertoireRepository interface {
	CreateSong(ctx context.Context, song *Song) error
	FindSongByID(ctx context.Context, id string) (*Song, error)
	ListSongs(ctx context.Context) ([]Song, error)
	UpdateSong(ctx context.Context, id string, song *Song) error
	DeleteSongCascade(ctx context.Context, id string) error

	CreateRepertoire(ctx context.Context, rep *Repertoire) error
	FindRepertoireByID(ctx context.Context, id string) (*Repertoire, error)
	ListRepertoires(ctx context.Context) ([]Repertoire, error)
	UpdateRepertoire(ctx context.Context, id string, rep *Repertoire) error
	DeleteRepertoire(ctx context.Context, id string) error
}

type RepertoireRepositoryImpl struct {
	DB          *database.MongodbDB
	Songs       *mongo.Collection
	Repertoires *mongo.Collection
}

func NewRepertoireRepository(mongodb *database.MongodbDB) RepertoireRepository {
	return &RepertoireRepositoryImpl{
		DB:          mongodb,
		Songs:       mongodb.DB.Collection("songs"),
		Repertoires: mongodb.DB.Collection("repertoires"),
	}
}

func (r *RepertoireRepositoryImpl) CreateSong(ctx context.Context, song *Song) error {
	song.ID = primitive.NewObjectID()
	song.CreatedAt = time.Now()
	song.UpdatedAt = time.Now()

	_, err := r.Songs.InsertOne(ctx, song)
	return err
}

func (r *RepertoireRepositoryImpl) FindSongByID(ctx context.Context, id string) (*Song, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var song Song
	err = r.Songs.FindOne(ctx, bson.M{"_id": objectID}).Decode(&song)
	if err != nil {
		return nil, err
	}
	return &song, nil
}

func (r *RepertoireRepositoryImpl) ListSongs(ctx context.Context) ([]Song, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cursor, err := r.Songs.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var songs []Song
	if err = cursor.All(ctx, &songs); err != nil {
		return nil, err
	}
	return songs, nil
}

func (r *RepertoireRepositoryImpl) UpdateSong(ctx context.Context, id string, song *Song) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"title":           song.Title,
			"original_artist": song.OriginalArtist,
			"language":        song.Language,
			"updated_at":      time.Now(),
		},
	}

	res, err := r.Songs.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteSongCascade removes the song and pulls its id from every
// repertoire inside one transaction, so a reader never sees a
// repertoire referencing a song that is already gone.
func (r *RepertoireRepositoryImpl) DeleteSongCascade(ctx context.Context, id string) error {
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
		res, err := r.Songs.DeleteOne(sc, bson.M{"_id": objectID})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}

		_, err = r.Repertoires.UpdateMany(sc,
			bson.M{"song_ids": objectID},
			bson.M{"$pull": bson.M{"song_ids": objectID}},
		)
		return nil, err
	})
	return err
}

func (r *RepertoireRepositoryImpl) CreateRepertoire(ctx context.Context, rep *Repertoire) error {
	rep.ID = primitive.NewObjectID()
	rep.CreatedAt = time.Now()
	rep.UpdatedAt = time.Now()
	if rep.SongIDs == nil {
		rep.SongIDs = []primitive.ObjectID{}
	}

	_, err := r.Repertoires.InsertOne(ctx, rep)
	return err
}

func (r *RepertoireRepositoryImpl) FindRepertoireByID(ctx context.Context, id string) (*Repertoire, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var rep Repertoire
	err = r.Repertoires.FindOne(ctx, bson.M{"_id": objectID}).Decode(&rep)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *RepertoireRepositoryImpl) ListRepertoires(ctx context.Context) ([]Repertoire, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Repertoires.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reps []Repertoire
	if err = cursor.All(ctx, &reps); err != nil {
		return nil, err
	}
	return reps, nil
}

func (r *RepertoireRepositoryImpl) UpdateRepertoire(ctx context.Context, id string, rep *Repertoire) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	if rep.SongIDs == nil {
		rep.SongIDs = []primitive.ObjectID{}
	}

	update := bson.M{
		"$set": bson.M{
			"name":       rep.Name,
			"song_ids":   rep.SongIDs,
			"updated_at": time.Now(),
		},
	}

	res, err := r.Repertoires.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteRepertoire removes only the definition. Songs stay in the
// catalog; singer assignments are cleaned by the integrity sweep.
func (r *RepertoireRepositoryImpl) DeleteRepertoire(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := r.Repertoires.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
