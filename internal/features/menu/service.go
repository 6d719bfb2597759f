package menu

import (
	"context"
	"errors"

	common_models "go-eventcrm/internal/common/models"
	"go-eventcrm/internal/features/audit"
)

var ErrUnknownItems = errors.New("package references unknown menu items")

type MenuService interface {
	CreateItem(ctx context.Context, item *MenuItem) (*MenuItem, error)
	GetItemByID(ctx context.Context, id string) (*MenuItem, error)
	ListItems(ctx context.Context) ([]MenuItem, error)
	UpdateItem(ctx context.Context, id string, item *MenuItem) error
	DeleteItem(ctx context.Context, id string) error

	CreatePackage(ctx context.Context, pkg *MenuPackage) (*MenuPackage, error)
	GetPackageByID(ctx context.Context, id string) (*MenuPackage, error)
	ListPackages(ctx context.Context) ([]MenuPackage, error)
	UpdatePackage(ctx context.Context, id string, pkg *MenuPackage) error
	DeletePackage(ctx context.Context, id string) error
}

type MenuServiceImpl struct {
	MenuRepo     MenuRepository
	AuditService audit.AuditService
}

func NewMenuService(menuRepo MenuRepository, auditService audit.AuditService) MenuService {
	return &MenuServiceImpl{
		MenuRepo:     menuRepo,
		AuditService: auditService,
	}
}

func (s *MenuServiceImpl) CreateItem(ctx context.Context, item *MenuItem) (*MenuItem, error) {
	if err := s.MenuRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "menu_items", item.ID.Hex(), map[string]common_models.Change{
		"name": {New: item.Name},
	})

	return item, nil
}

func (s *MenuServiceImpl) GetItemByID(ctx context.Context, id string) (*MenuItem, error) {
	return s.MenuRepo.FindItemByID(ctx, id)
}

func (s *MenuServiceImpl) ListItems(ctx context.Context) ([]MenuItem, error) {
	return s.MenuRepo.ListItems(ctx)
}

func (s *MenuServiceImpl) UpdateItem(ctx context.Context, id string, item *MenuItem) error {
	if err := s.MenuRepo.UpdateItem(ctx, id, item); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "menu_items", id, map[string]common_models.Change{
		"name": {New: item.Name},
	})

	return nil
}

func (s *MenuServiceImpl) DeleteItem(ctx context.Context, id string) error {
	item, err := s.MenuRepo.FindItemByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.MenuRepo.DeleteItemCascade(ctx, id); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, "menu_items", id, map[string]common_models.Change{
		"name": {Old: item.Name},
	})

	return nil
}

// validateItemIDs rejects packages referencing items that do not exist,
// so a freshly saved package never starts out with dangling ids.
func (s *MenuServiceImpl) validateItemIDs(ctx context.Context, pkg *MenuPackage) error {
	if len(pkg.ItemIDs) == 0 {
		return nil
	}

	count, err := s.MenuRepo.CountItemsByIDs(ctx, pkg.ItemIDs)
	if err != nil {
		return err
	}
	if count != int64(len(pkg.ItemIDs)) {
		return ErrUnknownItems
	}
	return nil
}

func (s *MenuServiceImpl) CreatePackage(ctx context.Context, pkg *MenuPackage) (*MenuPackage, error) {
	if err := s.validateItemIDs(ctx, pkg); err != nil {
		return nil, err
	}

	if err := s.MenuRepo.CreatePackage(ctx, pkg); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "menu_packages", pkg.ID.Hex(), map[string]common_models.Change{
		"name": {New: pkg.Name},
	})

	return pkg, nil
}

func (s *MenuServiceImpl) GetPackageByID(ctx context.Context, id string) (*MenuPackage, error) {
	return s.MenuRepo.FindPackageByID(ctx, id)
}

func (s *MenuServiceImpl) ListPackages(ctx context.Context) ([]MenuPackage, error) {
	return s.MenuRepo.ListPackages(ctx)
}

func (s *MenuServiceImpl) UpdatePackage(ctx context.Context, id string, pkg *MenuPackage) error {
	if err := s.validateItemIDs(ctx, pkg); err != nil {
		return err
	}

	if err := s.MenuRepo.UpdatePackage(ctx, id, pkg); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "menu_packages", id, map[string]common_models.Change{
		"name": {New: pkg.Name},
	})

	return nil
}

func (s *MenuServiceImpl) DeletePackage(ctx context.Context, id string) error {
	pkg, err := s.MenuRepo.FindPackageByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.MenuRepo.DeletePackage(ctx, id); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, "menu_packages", id, map[string]common_models.Change{
		"name": {Old: pkg.Name},
	})

	return nil
}
