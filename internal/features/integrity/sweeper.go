package integrity

import (
	"context"
	"fmt"

	common_models "go-eventcrm/internal/common/models"
	"go-eventcrm/internal/database"
	"go-eventcrm/internal/features/audit"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Sweeper prunes dangling cross-document references. Deletes that skip
// a cascade (package deletes, repertoire deletes, ids assigned against
// documents removed concurrently) leave ids behind; the sweep brings
// the collections back to a consistent state.
type Sweeper struct {
	DB           *database.MongodbDB
	Logger       *zap.Logger
	AuditService audit.AuditService
}

func NewSweeper(db *database.MongodbDB, logger *zap.Logger, auditService audit.AuditService) *Sweeper {
	return &Sweeper{
		DB:           db,
		Logger:       logger,
		AuditService: auditService,
	}
}

// refCheck describes one referrer/target pair to prune.
type refCheck struct {
	targetCollection string
	refCollection    string
	refField         string
}

var checks = []refCheck{
	{"menu_items", "menu_packages", "item_ids"},
	{"songs", "repertoires", "song_ids"},
	{"menu_packages", "venues", "assigned_package_ids"},
	{"repertoires", "singers", "assigned_repertoire_ids"},
	{"roles", "users", "role_ids"},
}

// Sweep runs every check and returns the total number of ids pruned.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	total := 0
	for _, check := range checks {
		pruned, err := s.pruneRefs(ctx, check)
		if err != nil {
			s.Logger.Error("integrity check failed",
				zap.String("collection", check.refCollection),
				zap.String("field", check.refField),
				zap.Error(err))
			return total, err
		}
		total += pruned
	}

	if total > 0 {
		s.Logger.Info("integrity sweep pruned dangling references", zap.Int("pruned", total))
		_ = s.AuditService.LogChange(ctx, common_models.AuditActionSweep, "integrity", "", map[string]common_models.Change{
			"pruned": {New: fmt.Sprintf("%d", total)},
		})
	}

	return total, nil
}

// existingIDs loads every _id of the target collection into a set.
func (s *Sweeper) existingIDs(ctx context.Context, collection string) (map[primitive.ObjectID]struct{}, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := s.DB.DB.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ids := make(map[primitive.ObjectID]struct{})
	for cursor.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ids[doc.ID] = struct{}{}
	}
	return ids, cursor.Err()
}

func (s *Sweeper) pruneRefs(ctx context.Context, check refCheck) (int, error) {
	valid, err := s.existingIDs(ctx, check.targetCollection)
	if err != nil {
		return 0, err
	}

	refs := s.DB.DB.Collection(check.refCollection)
	cursor, err := refs.Find(ctx, bson.M{check.refField: bson.M{"$exists": true, "$ne": []primitive.ObjectID{}}})
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	pruned := 0
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return pruned, err
		}

		rawIDs, ok := doc[check.refField].(primitive.A)
		if !ok {
			continue
		}

		kept := make([]primitive.ObjectID, 0, len(rawIDs))
		dropped := 0
		for _, raw := range rawIDs {
			id, ok := raw.(primitive.ObjectID)
			if !ok {
				dropped++
				continue
			}
			if _, exists := valid[id]; exists {
				kept = append(kept, id)
			} else {
				dropped++
			}
		}

		if dropped == 0 {
			continue
		}

		_, err := refs.UpdateOne(ctx,
			bson.M{"_id": doc["_id"]},
			bson.M{"$set": bson.M{check.refField: kept}},
		)
		if err != nil {
			return pruned, err
		}
		pruned += dropped

		s.Logger.Debug("pruned dangling references",
			zap.String("collection", check.refCollection),
			zap.String("field", check.refField),
			zap.Int("dropped", dropped))
	}

	return pruned, cursor.Err()
}
