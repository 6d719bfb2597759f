package lookup

import (
	"context"
	"errors"
	"strings"

	common_models "go-eventcrm/internal/common/models"
	"go-eventcrm/internal/features/audit"
	"go-eventcrm/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	ErrDuplicateKey    = errors.New("a lookup with this key already exists")
	ErrDuplicateValues = errors.New("lookup values must be unique")
	ErrEmptyName       = errors.New("lookup name is required")
)

// CustomFieldCleaner removes a lookup key from documents that embed it.
// Satisfied by the venue repository.
type CustomFieldCleaner interface {
	UnsetCustomField(ctx context.Context, key string) (int64, error)
}

type LookupService interface {
	CreateLookup(ctx context.Context, name string) (*Lookup, error)
	GetLookupByID(ctx context.Context, id string) (*Lookup, error)
	ListLookups(ctx context.Context) ([]Lookup, error)
	RenameLookup(ctx context.Context, id string, name string) error
	ReplaceValues(ctx context.Context, id string, values []string) (*Lookup, error)
	DeleteLookup(ctx context.Context, id string) error
}

type LookupServiceImpl struct {
	LookupRepo    LookupRepository
	Cleaner       CustomFieldCleaner
	AuditService  audit.AuditService
	Logger        *zap.Logger
	DeleteCascade bool
}

func NewLookupService(lookupRepo LookupRepository, cleaner CustomFieldCleaner, auditService audit.AuditService, logger *zap.Logger, deleteCascade bool) LookupService {
	return &LookupServiceImpl{
		LookupRepo:    lookupRepo,
		Cleaner:       cleaner,
		AuditService:  auditService,
		Logger:        logger,
		DeleteCascade: deleteCascade,
	}
}

// CreateLookup derives the machine key from the name and rejects the
// write when any existing lookup already owns that key. Since keys are
// lowercased by derivation, the check is case-insensitive by
// construction.
func (s *LookupServiceImpl) CreateLookup(ctx context.Context, name string) (*Lookup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	key := utils.LookupKey(name)
	if key == "" {
		return nil, ErrEmptyName
	}

	if _, err := s.LookupRepo.FindByKey(ctx, key); err == nil {
		return nil, ErrDuplicateKey
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	lookup := &Lookup{Name: name, Key: key}
	if err := s.LookupRepo.Create(ctx, lookup); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "lookups", lookup.ID.Hex(), map[string]common_models.Change{
		"name": {New: name},
		"key":  {New: key},
	})

	return lookup, nil
}

func (s *LookupServiceImpl) GetLookupByID(ctx context.Context, id string) (*Lookup, error) {
	return s.LookupRepo.FindByID(ctx, id)
}

func (s *LookupServiceImpl) ListLookups(ctx context.Context) ([]Lookup, error) {
	return s.LookupRepo.List(ctx)
}

// RenameLookup changes the display name. The key stays as derived at
// creation so existing custom_fields keep resolving.
func (s *LookupServiceImpl) RenameLookup(ctx context.Context, id string, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	if err := s.LookupRepo.Rename(ctx, id, name); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "lookups", id, map[string]common_models.Change{
		"name": {New: name},
	})

	return nil
}

// ReplaceValues overwrites the value list, rejecting case-insensitive
// duplicates before anything is written.
func (s *LookupServiceImpl) ReplaceValues(ctx context.Context, id string, values []string) (*Lookup, error) {
	trimmed := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		lower := strings.ToLower(v)
		if _, dup := seen[lower]; dup {
			return nil, ErrDuplicateValues
		}
		seen[lower] = struct{}{}
		trimmed = append(trimmed, v)
	}

	if err := s.LookupRepo.ReplaceValues(ctx, id, trimmed); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "lookups", id, map[string]common_models.Change{
		"values": {New: trimmed},
	})

	return s.LookupRepo.FindByID(ctx, id)
}

// DeleteLookup removes the definition. Venue custom_fields keep the
// orphaned key unless the delete cascade is enabled.
func (s *LookupServiceImpl) DeleteLookup(ctx context.Context, id string) error {
	lookup, err := s.LookupRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.LookupRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.DeleteCascade {
		cleaned, err := s.Cleaner.UnsetCustomField(ctx, lookup.Key)
		if err != nil {
			s.Logger.Warn("lookup cascade failed",
				zap.String("key", lookup.Key),
				zap.Error(err))
		} else if cleaned > 0 {
			s.Logger.Info("lookup cascade cleaned venues",
				zap.String("key", lookup.Key),
				zap.Int64("venues", cleaned))
		}
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, "lookups", id, map[string]common_models.Change{
		"name": {Old: lookup.Name},
		"key":  {Old: lookup.Key},
	})

	return nil
}
