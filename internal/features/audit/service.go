package audit

import (
	"context"
	"time"

	"go-eventcrm/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type AuditService interface {
	LogChange(ctx context.Context, action models.AuditAction, module, recordID string, changes map[string]models.Change) error
	ListEntries(ctx context.Context, module string, limit int64) ([]models.AuditLog, error)
}

type AuditServiceImpl struct {
	AuditRepo AuditRepository
	Logger    *zap.Logger
}

func NewAuditService(auditRepo AuditRepository, logger *zap.Logger) AuditService {
	return &AuditServiceImpl{
		AuditRepo: auditRepo,
		Logger:    logger,
	}
}

// LogChange records a write against an entity. The actor id is taken
// from the request context when present. Failures are logged and
// swallowed: auditing must not fail the write it describes.
func (s *AuditServiceImpl) LogChange(ctx context.Context, action models.AuditAction, module, recordID string, changes map[string]models.Change) error {
	actorID, _ := ctx.Value(models.UserIDKey).(string)

	entry := &models.AuditLog{
		ID:        primitive.NewObjectID(),
		Action:    action,
		Module:    module,
		RecordID:  recordID,
		ActorID:   actorID,
		Changes:   changes,
		Timestamp: time.Now(),
	}

	if err := s.AuditRepo.Insert(ctx, entry); err != nil {
		s.Logger.Warn("failed to write audit entry",
			zap.String("module", module),
			zap.String("record_id", recordID),
			zap.Error(err))
		return err
	}
	return nil
}

func (s *AuditServiceImpl) ListEntries(ctx context.Context, module string, limit int64) ([]models.AuditLog, error) {
	return s.AuditRepo.List(ctx, module, limit)
}
