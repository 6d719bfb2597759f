package role

import (
	"context"
	"fmt"
	"time"

	common_models "go-eventcrm/internal/common/models"
	"go-eventcrm/internal/features/audit"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoleService interface {
	CreateRole(ctx context.Context, role *Role) (*Role, error)
	GetRoleByID(ctx context.Context, id string) (*Role, error)
	ListRoles(ctx context.Context) ([]Role, error)
	UpdateRole(ctx context.Context, id string, role *Role) error
	DeleteRole(ctx context.Context, id string) error
	PermissionSetForRoles(ctx context.Context, roleIDs []string) (Set, error)
	HasPermission(ctx context.Context, roleIDs []string, permission string) (bool, error)
}

type RoleServiceImpl struct {
	RoleRepo     RoleRepository
	Cache        *PermissionCache
	AuditService audit.AuditService
}

func NewRoleService(roleRepo RoleRepository, cache *PermissionCache, auditService audit.AuditService) RoleService {
	return &RoleServiceImpl{
		RoleRepo:     roleRepo,
		Cache:        cache,
		AuditService: auditService,
	}
}

func (s *RoleServiceImpl) CreateRole(ctx context.Context, role *Role) (*Role, error) {
	role.ID = primitive.NewObjectID()
	role.CreatedAt = time.Now()
	role.UpdatedAt = time.Now()

	if role.Permissions == nil {
		role.Permissions = []string{}
	}

	if err := s.RoleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "roles", role.ID.Hex(), map[string]common_models.Change{
		"name": {New: role.Name},
	})

	return role, nil
}

func (s *RoleServiceImpl) GetRoleByID(ctx context.Context, id string) (*Role, error) {
	return s.RoleRepo.FindByID(ctx, id)
}

func (s *RoleServiceImpl) ListRoles(ctx context.Context) ([]Role, error) {
	return s.RoleRepo.List(ctx)
}

func (s *RoleServiceImpl) UpdateRole(ctx context.Context, id string, role *Role) error {
	role.UpdatedAt = time.Now()

	if err := s.RoleRepo.Update(ctx, id, role); err != nil {
		return err
	}

	s.Cache.Invalidate(ctx)

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "roles", id, map[string]common_models.Change{
		"permissions": {New: role.Permissions},
	})

	return nil
}

func (s *RoleServiceImpl) DeleteRole(ctx context.Context, id string) error {
	role, err := s.RoleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if role.IsSystem {
		return fmt.Errorf("cannot delete system role")
	}

	if err := s.RoleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Cache.Invalidate(ctx)

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, "roles", id, map[string]common_models.Change{
		"name": {Old: role.Name},
	})

	return nil
}

// PermissionSetForRoles resolves the flattened permission set for a
// role-id combination, consulting the cache first.
func (s *RoleServiceImpl) PermissionSetForRoles(ctx context.Context, roleIDs []string) (Set, error) {
	if len(roleIDs) == 0 {
		return Set{}, nil
	}

	if cached := s.Cache.Get(ctx, roleIDs); cached != nil {
		return cached, nil
	}

	roles, err := s.RoleRepo.FindByIDs(ctx, roleIDs)
	if err != nil {
		return nil, err
	}

	set := UnionForRoles(roles, roleIDs)
	s.Cache.Put(ctx, roleIDs, set)
	return set, nil
}

func (s *RoleServiceImpl) HasPermission(ctx context.Context, roleIDs []string, permission string) (bool, error) {
	set, err := s.PermissionSetForRoles(ctx, roleIDs)
	if err != nil {
		return false, err
	}
	return set.Has(permission), nil
}
