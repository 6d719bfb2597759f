package user

import (
	"context"

	common_models "go-eventcrm/internal/common/models"
	"go-eventcrm/internal/features/audit"
	"go-eventcrm/internal/features/role"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserWithRoles(ctx context.Context, id string) (*UserWithRoles, error)
	ListUsersWithRoles(ctx context.Context) ([]UserWithRoles, error)
	UpdateProfile(ctx context.Context, id string, displayName, phone string) error
	UpdateStatus(ctx context.Context, id string, status string) error
	AssignRoles(ctx context.Context, id string, roleIDs []string) (*UserWithRoles, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserServiceImpl struct {
	UserRepo     UserRepository
	RoleService  role.RoleService
	Cache        *role.PermissionCache
	AuditService audit.AuditService
}

func NewUserService(userRepo UserRepository, roleService role.RoleService, cache *role.PermissionCache, auditService audit.AuditService) UserService {
	return &UserServiceImpl{
		UserRepo:     userRepo,
		RoleService:  roleService,
		Cache:        cache,
		AuditService: auditService,
	}
}

func (s *UserServiceImpl) GetUserByID(ctx context.Context, id string) (*User, error) {
	return s.UserRepo.FindByID(ctx, id)
}

func (s *UserServiceImpl) GetUserWithRoles(ctx context.Context, id string) (*UserWithRoles, error) {
	user, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	roles, err := s.RoleService.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	joined := JoinRoles([]User{*user}, roles)
	return &joined[0], nil
}

// ListUsersWithRoles returns every profile with its role documents
// resolved in memory. Two reads instead of an aggregation keeps the
// role lookup shared with the single-user path.
func (s *UserServiceImpl) ListUsersWithRoles(ctx context.Context) ([]UserWithRoles, error) {
	users, err := s.UserRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	roles, err := s.RoleService.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	return JoinRoles(users, roles), nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id string, displayName, phone string) error {
	update := bson.M{}
	if displayName != "" {
		update["display_name"] = displayName
	}
	if phone != "" {
		update["phone"] = phone
	}
	if len(update) == 0 {
		return nil
	}

	if err := s.UserRepo.Update(ctx, id, update); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "users", id, map[string]common_models.Change{
		"display_name": {New: displayName},
	})

	return nil
}

func (s *UserServiceImpl) UpdateStatus(ctx context.Context, id string, status string) error {
	if err := s.UserRepo.Update(ctx, id, bson.M{"status": status}); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "users", id, map[string]common_models.Change{
		"status": {New: status},
	})

	return nil
}

// AssignRoles replaces the user's role membership wholesale. Ids that do
// not parse are dropped; ids that parse but reference no role are kept,
// the integrity sweep reports them later.
func (s *UserServiceImpl) AssignRoles(ctx context.Context, id string, roleIDs []string) (*UserWithRoles, error) {
	before, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	objectIDs := make([]primitive.ObjectID, 0, len(roleIDs))
	for _, rid := range roleIDs {
		if oid, err := primitive.ObjectIDFromHex(rid); err == nil {
			objectIDs = append(objectIDs, oid)
		}
	}

	if err := s.UserRepo.Update(ctx, id, bson.M{"role_ids": objectIDs}); err != nil {
		return nil, err
	}

	// The user's cached permission set is keyed by the old combination;
	// drop everything so the next check recomputes.
	s.Cache.Invalidate(ctx)

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionAssign, "users", id, map[string]common_models.Change{
		"role_ids": {Old: before.RoleIDHexes(), New: roleIDs},
	})

	return s.GetUserWithRoles(ctx, id)
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	user, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.UserRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, "users", id, map[string]common_models.Change{
		"email": {Old: user.Email},
	})

	return nil
}
