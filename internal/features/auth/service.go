package auth

import (
	"context"
	"errors"
	"strings"

	common_models "go-eventcrm/internal/common/models"
	"go-eventcrm/internal/features/audit"
	"go-eventcrm/internal/features/role"
	"go-eventcrm/internal/features/user"
	"go-eventcrm/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrUserSuspended      = errors.New("account is suspended")
)

// MePayload is the sign-in bootstrap: the profile, its resolved roles
// and the flattened permission set the client gates everything on.
type MePayload struct {
	User        user.User   `json:"user"`
	Roles       []role.Role `json:"roles"`
	Permissions []string    `json:"permissions"`
}

type AuthService interface {
	Register(ctx context.Context, email, password string) (*user.User, error)
	Login(ctx context.Context, email, password string) (string, *user.User, error)
	Me(ctx context.Context, userID string) (*MePayload, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
}

type AuthServiceImpl struct {
	UserRepo     user.UserRepository
	RoleService  role.RoleService
	AuditService audit.AuditService
}

func NewAuthService(userRepo user.UserRepository, roleService role.RoleService, auditService audit.AuditService) AuthService {
	return &AuthServiceImpl{
		UserRepo:     userRepo,
		RoleService:  roleService,
		AuditService: auditService,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, email, password string) (*user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.UserRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	// New accounts carry no roles, so their permission set is empty
	// until an administrator assigns some.
	u := &user.User{
		Email:       email,
		Password:    hash,
		DisplayName: displayNameFromEmail(email),
	}
	if err := s.UserRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "users", u.ID.Hex(), map[string]common_models.Change{
		"email": {New: u.Email},
	})

	return u, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !utils.CheckPassword(u.Password, password) {
		return "", nil, ErrInvalidCredentials
	}

	if u.Status == "suspended" {
		return "", nil, ErrUserSuspended
	}

	token, err := utils.GenerateToken(u.ID, u.Email, u.RoleIDHexes())
	if err != nil {
		return "", nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionLogin, "users", u.ID.Hex(), nil)

	return token, u, nil
}

func (s *AuthServiceImpl) Me(ctx context.Context, userID string) (*MePayload, error) {
	u, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	hexes := u.RoleIDHexes()
	set, err := s.RoleService.PermissionSetForRoles(ctx, hexes)
	if err != nil {
		// Deny rather than fail the bootstrap: profile renders, nothing
		// permission-gated does.
		set = role.Set{}
	}

	roles, err := s.RoleService.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	resolved := user.JoinRoles([]user.User{*u}, roles)[0].Roles

	return &MePayload{
		User:        *u,
		Roles:       resolved,
		Permissions: set.Values(),
	}, nil
}

func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID, current, next string) error {
	if len(next) < 6 {
		return ErrPasswordTooShort
	}

	u, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	// Re-auth with the current password before accepting the new one.
	if !utils.CheckPassword(u.Password, current) {
		return ErrInvalidCredentials
	}

	hash, err := utils.HashPassword(next)
	if err != nil {
		return err
	}

	if err := s.UserRepo.Update(ctx, userID, bson.M{"password": hash}); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "users", userID, map[string]common_models.Change{
		"password": {New: "********"},
	})

	return nil
}

func displayNameFromEmail(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
