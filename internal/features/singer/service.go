package singer

import (
	"context"
	"fmt"

	common_models "go-eventcrm/internal/common/models"
	"go-eventcrm/internal/features/audit"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SingerService interface {
	CreateSinger(ctx context.Context) (*Singer, error)
	GetSingerByID(ctx context.Context, id string) (*Singer, error)
	ListSingers(ctx context.Context) ([]Singer, error)
	UpdateSinger(ctx context.Context, id string, singer *Singer) (*Singer, error)
	DeleteSinger(ctx context.Context, id string) error
	AssignRepertoires(ctx context.Context, id string, repertoireIDs []string) (*Singer, error)
	AddPricingPackage(ctx context.Context, id string, pkg *PricingPackage) (*Singer, error)
	UpdatePricingPackage(ctx context.Context, id, pkgID string, pkg *PricingPackage) (*Singer, error)
	RemovePricingPackage(ctx context.Context, id, pkgID string) (*Singer, error)
}

type SingerServiceImpl struct {
	SingerRepo   SingerRepository
	AuditService audit.AuditService
}

func NewSingerService(singerRepo SingerRepository, auditService audit.AuditService) SingerService {
	return &SingerServiceImpl{
		SingerRepo:   singerRepo,
		AuditService: auditService,
	}
}

func (s *SingerServiceImpl) CreateSinger(ctx context.Context) (*Singer, error) {
	singer := NewPlaceholderSinger()
	if err := s.SingerRepo.Create(ctx, singer); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "singers", singer.ID.Hex(), map[string]common_models.Change{
		"name": {New: singer.Name},
	})

	return singer, nil
}

func (s *SingerServiceImpl) GetSingerByID(ctx context.Context, id string) (*Singer, error) {
	return s.SingerRepo.FindByID(ctx, id)
}

func (s *SingerServiceImpl) ListSingers(ctx context.Context) ([]Singer, error) {
	return s.SingerRepo.List(ctx)
}

func (s *SingerServiceImpl) UpdateSinger(ctx context.Context, id string, singer *Singer) (*Singer, error) {
	if singer.Status != "" && !ValidStatus(singer.Status) {
		return nil, fmt.Errorf("invalid status %q", singer.Status)
	}
	if singer.Status == "" {
		singer.Status = StatusDraft
	}

	before, err := s.SingerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.SingerRepo.Replace(ctx, id, singer); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "singers", id, map[string]common_models.Change{
		"name":   {Old: before.Name, New: singer.Name},
		"status": {Old: before.Status, New: singer.Status},
	})

	return s.SingerRepo.FindByID(ctx, id)
}

func (s *SingerServiceImpl) DeleteSinger(ctx context.Context, id string) error {
	singer, err := s.SingerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.SingerRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, "singers", id, map[string]common_models.Change{
		"name": {Old: singer.Name},
	})

	return nil
}

func (s *SingerServiceImpl) AssignRepertoires(ctx context.Context, id string, repertoireIDs []string) (*Singer, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(repertoireIDs))
	for _, rid := range repertoireIDs {
		if oid, err := primitive.ObjectIDFromHex(rid); err == nil {
			objectIDs = append(objectIDs, oid)
		}
	}

	if err := s.SingerRepo.AssignRepertoires(ctx, id, objectIDs); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionAssign, "singers", id, map[string]common_models.Change{
		"assigned_repertoire_ids": {New: repertoireIDs},
	})

	return s.SingerRepo.FindByID(ctx, id)
}

func (s *SingerServiceImpl) AddPricingPackage(ctx context.Context, id string, pkg *PricingPackage) (*Singer, error) {
	if pkg.Currency == "" {
		pkg.Currency = "AZN"
	}

	if err := s.SingerRepo.AddPricingPackage(ctx, id, pkg); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "singers", id, map[string]common_models.Change{
		"pricing_packages": {New: pkg.Title},
	})

	return s.SingerRepo.FindByID(ctx, id)
}

func (s *SingerServiceImpl) UpdatePricingPackage(ctx context.Context, id, pkgID string, pkg *PricingPackage) (*Singer, error) {
	objectID, err := primitive.ObjectIDFromHex(pkgID)
	if err != nil {
		return nil, err
	}
	pkg.ID = objectID

	if err := s.SingerRepo.UpdatePricingPackage(ctx, id, pkg); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "singers", id, map[string]common_models.Change{
		"pricing_packages": {New: pkg.Title},
	})

	return s.SingerRepo.FindByID(ctx, id)
}

func (s *SingerServiceImpl) RemovePricingPackage(ctx context.Context, id, pkgID string) (*Singer, error) {
	objectID, err := primitive.ObjectIDFromHex(pkgID)
	if err != nil {
		return nil, err
	}

	if err := s.SingerRepo.RemovePricingPackage(ctx, id, objectID); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "singers", id, map[string]common_models.Change{
		"pricing_packages": {Old: pkgID},
	})

	return s.SingerRepo.FindByID(ctx, id)
}
