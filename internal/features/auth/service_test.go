package auth

import (
	"context"
	"errors"
	"testing"

	common_models "go-eventcrm/internal/common/models"
	"go-eventcrm/internal/features/role"
	"go-eventcrm/internal/features/user"
	"go-eventcrm/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserRepo struct {
	users map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*user.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	u.ID = primitive.NewObjectID()
	if u.RoleIDs == nil {
		u.RoleIDs = []primitive.ObjectID{}
	}
	if u.Status == "" {
		u.Status = "active"
	}
	f.users[u.ID.Hex()] = u
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id string, update bson.M) error {
	u, ok := f.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if pw, ok := update["password"].(string); ok {
		u.Password = pw
	}
	if status, ok := update["status"].(string); ok {
		u.Status = status
	}
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.users, id)
	return nil
}

type fakeRoleService struct {
	roles []role.Role
}

func (f *fakeRoleService) CreateRole(ctx context.Context, r *role.Role) (*role.Role, error) {
	return r, nil
}

func (f *fakeRoleService) GetRoleByID(ctx context.Context, id string) (*role.Role, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRoleService) ListRoles(ctx context.Context) ([]role.Role, error) {
	return f.roles, nil
}

func (f *fakeRoleService) UpdateRole(ctx context.Context, id string, r *role.Role) error {
	return nil
}

func (f *fakeRoleService) DeleteRole(ctx context.Context, id string) error {
	return nil
}

func (f *fakeRoleService) PermissionSetForRoles(ctx context.Context, roleIDs []string) (role.Set, error) {
	return role.UnionForRoles(f.roles, roleIDs), nil
}

func (f *fakeRoleService) HasPermission(ctx context.Context, roleIDs []string, permission string) (bool, error) {
	set, _ := f.PermissionSetForRoles(ctx, roleIDs)
	return set.Has(permission), nil
}

type noopAudit struct{}

func (noopAudit) LogChange(ctx context.Context, action common_models.AuditAction, module, recordID string, changes map[string]common_models.Change) error {
	return nil
}

func (noopAudit) ListEntries(ctx context.Context, module string, limit int64) ([]common_models.AuditLog, error) {
	return nil, nil
}

func newTestAuth(repo user.UserRepository, roles *fakeRoleService) AuthService {
	return NewAuthService(repo, roles, noopAudit{})
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuth(repo, &fakeRoleService{})

	u, err := svc.Register(context.Background(), "  Leyla@Example.COM ", "secret1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if u.Email != "leyla@example.com" {
		t.Errorf("email = %q, want lowercased trimmed email", u.Email)
	}
	if u.DisplayName != "leyla" {
		t.Errorf("display_name = %q, want local part of email", u.DisplayName)
	}
	if u.Password == "secret1" {
		t.Error("password stored in plaintext")
	}
	if len(u.RoleIDs) != 0 {
		t.Errorf("role_ids = %v, want no roles on a fresh account", u.RoleIDs)
	}

	if _, err := svc.Register(context.Background(), "leyla@example.com", "another1"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate Register() error = %v, want ErrEmailTaken", err)
	}
	if _, err := svc.Register(context.Background(), "short@example.com", "12345"); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("short-password Register() error = %v, want ErrPasswordTooShort", err)
	}
}

func TestLogin(t *testing.T) {
	utils.SetSecret("test-secret")
	repo := newFakeUserRepo()
	svc := newTestAuth(repo, &fakeRoleService{})

	if _, err := svc.Register(context.Background(), "leyla@example.com", "secret1"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	token, u, err := svc.Login(context.Background(), "Leyla@example.com", "secret1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Error("expected a signed token")
	}
	claims, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != u.ID.Hex() {
		t.Errorf("token user id = %q, want %q", claims.UserID, u.ID.Hex())
	}

	// Unknown email and wrong password fail identically.
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown-email Login() error = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(context.Background(), "leyla@example.com", "wrong99"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong-password Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginSuspended(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuth(repo, &fakeRoleService{})

	u, err := svc.Register(context.Background(), "leyla@example.com", "secret1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := repo.Update(context.Background(), u.ID.Hex(), bson.M{"status": "suspended"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "leyla@example.com", "secret1"); !errors.Is(err, ErrUserSuspended) {
		t.Errorf("Login() error = %v, want ErrUserSuspended", err)
	}
}

func TestMeFlattensPermissions(t *testing.T) {
	repo := newFakeUserRepo()
	adminRole := role.Role{ID: primitive.NewObjectID(), Name: "admin", Permissions: []string{"roles:read", "users:read"}}
	editorRole := role.Role{ID: primitive.NewObjectID(), Name: "editor", Permissions: []string{"restaurants:read", "roles:read"}}
	roles := &fakeRoleService{roles: []role.Role{adminRole, editorRole}}
	svc := newTestAuth(repo, roles)

	u, err := svc.Register(context.Background(), "leyla@example.com", "secret1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	u.RoleIDs = []primitive.ObjectID{adminRole.ID, editorRole.ID, primitive.NewObjectID()}

	me, err := svc.Me(context.Background(), u.ID.Hex())
	if err != nil {
		t.Fatalf("Me() error = %v", err)
	}

	if len(me.Roles) != 2 {
		t.Errorf("resolved roles = %d, want 2 (dangling id dropped)", len(me.Roles))
	}
	want := []string{"restaurants:read", "roles:read", "users:read"}
	if len(me.Permissions) != len(want) {
		t.Fatalf("permissions = %v, want %v", me.Permissions, want)
	}
	for i, p := range want {
		if me.Permissions[i] != p {
			t.Errorf("permissions[%d] = %q, want %q", i, me.Permissions[i], p)
		}
	}
}

func TestChangePassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuth(repo, &fakeRoleService{})

	u, err := svc.Register(context.Background(), "leyla@example.com", "secret1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := svc.ChangePassword(context.Background(), u.ID.Hex(), "wrong99", "newpass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("ChangePassword() with wrong current error = %v, want ErrInvalidCredentials", err)
	}
	if err := svc.ChangePassword(context.Background(), u.ID.Hex(), "secret1", "short"); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("ChangePassword() with short next error = %v, want ErrPasswordTooShort", err)
	}

	if err := svc.ChangePassword(context.Background(), u.ID.Hex(), "secret1", "newpass1"); err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "leyla@example.com", "newpass1"); err != nil {
		t.Errorf("Login() with new password error = %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "leyla@example.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() with old password error = %v, want ErrInvalidCredentials", err)
	}
}
