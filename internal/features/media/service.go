package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	common_models "go-eventcrm/internal/common/models"
	"go-eventcrm/internal/config"
	"go-eventcrm/internal/database"
	"go-eventcrm/internal/features/audit"

	"github.com/disintegration/imaging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	ErrUnknownEntity = errors.New("unknown media entity")
	ErrBadIndex      = errors.New("media index out of range")
)

const thumbWidth = 300

// entityCollections maps the URL entity segment to the owning
// collection. All three embed media{photos,videos}.
var entityCollections = map[string]string{
	"venues":  "venues",
	"singers": "singers",
	"cars":    "cars",
}

type MediaService interface {
	Upload(ctx context.Context, entity, id, kind string, file *multipart.FileHeader) (string, error)
	Remove(ctx context.Context, entity, id, kind string, index int) error
}

type MediaServiceImpl struct {
	DB           *database.MongodbDB
	Config       *config.Config
	Logger       *zap.Logger
	AuditService audit.AuditService
}

func NewMediaService(db *database.MongodbDB, cfg *config.Config, logger *zap.Logger, auditService audit.AuditService) MediaService {
	return &MediaServiceImpl{
		DB:           db,
		Config:       cfg,
		Logger:       logger,
		AuditService: auditService,
	}
}

// relPath builds the storage path for an upload. Venue files share one
// directory; singer and car files are grouped per document.
func relPath(entity, id, filename string) string {
	ts := time.Now().UnixMilli()
	name := fmt.Sprintf("%d_%s", ts, filepath.Base(filename))
	if entity == "venues" {
		return filepath.Join("venues", name)
	}
	return filepath.Join(entity, id, name)
}

func (s *MediaServiceImpl) Upload(ctx context.Context, entity, id, kind string, file *multipart.FileHeader) (string, error) {
	collection, ok := entityCollections[entity]
	if !ok {
		return "", ErrUnknownEntity
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", err
	}

	rel := relPath(entity, id, file.Filename)
	abs := filepath.Join(s.Config.FSPath, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(abs)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", err
	}
	dst.Close()

	if kind == "photo" {
		s.writeThumbnail(abs)
	}

	url := s.Config.FSURL + "/" + filepath.ToSlash(rel)

	field := "media.photos"
	if kind == "video" {
		field = "media.videos"
	}

	res, err := s.DB.DB.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{
			"$push": bson.M{field: url},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return "", err
	}
	if res.MatchedCount == 0 {
		// Do not leave an orphaned file behind.
		os.Remove(abs)
		return "", mongo.ErrNoDocuments
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpload, collection, id, map[string]common_models.Change{
		kind: {New: url},
	})

	return url, nil
}

// writeThumbnail renders a 300px-wide preview next to the original.
// Thumbnail failure never fails the upload.
func (s *MediaServiceImpl) writeThumbnail(abs string) {
	img, err := imaging.Open(abs)
	if err != nil {
		s.Logger.Warn("thumbnail decode failed", zap.String("file", abs), zap.Error(err))
		return
	}

	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)

	ext := filepath.Ext(abs)
	thumbPath := strings.TrimSuffix(abs, ext) + "_thumb" + ext
	if err := imaging.Save(thumb, thumbPath); err != nil {
		s.Logger.Warn("thumbnail save failed", zap.String("file", thumbPath), zap.Error(err))
	}
}

func (s *MediaServiceImpl) Remove(ctx context.Context, entity, id, kind string, index int) error {
	collection, ok := entityCollections[entity]
	if !ok {
		return ErrUnknownEntity
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	var doc struct {
		Media struct {
			Photos []string `bson:"photos"`
			Videos []string `bson:"videos"`
		} `bson:"media"`
	}
	err = s.DB.DB.Collection(collection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		return err
	}

	list := doc.Media.Photos
	field := "media.photos"
	if kind == "video" {
		list = doc.Media.Videos
		field = "media.videos"
	}

	if index < 0 || index >= len(list) {
		return ErrBadIndex
	}

	removed := list[index]
	updated := append(append([]string{}, list[:index]...), list[index+1:]...)

	_, err = s.DB.DB.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{field: updated, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}

	s.removeFile(removed)

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, collection, id, map[string]common_models.Change{
		kind: {Old: removed},
	})

	return nil
}

// removeFile deletes the stored file and its thumbnail for URLs this
// service owns. External URLs (video links) are left alone.
func (s *MediaServiceImpl) removeFile(url string) {
	if !strings.HasPrefix(url, s.Config.FSURL+"/") {
		return
	}

	rel := strings.TrimPrefix(url, s.Config.FSURL+"/")
	abs := filepath.Join(s.Config.FSPath, filepath.FromSlash(rel))
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		s.Logger.Warn("media file remove failed", zap.String("file", abs), zap.Error(err))
	}

	ext := filepath.Ext(abs)
	thumb := strings.TrimSuffix(abs, ext) + "_thumb" + ext
	if err := os.Remove(thumb); err != nil && !os.IsNotExist(err) {
		s.Logger.Warn("media thumbnail remove failed", zap.String("file", thumb), zap.Error(err))
	}
}
