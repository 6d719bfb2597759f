package user

import (
	"testing"

	"go-eventcrm/internal/features/role"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestJoinRoles(t *testing.T) {
	adminID := primitive.NewObjectID()
	editorID := primitive.NewObjectID()
	danglingID := primitive.NewObjectID()

	roles := []role.Role{
		{ID: adminID, Name: "Администратор"},
		{ID: editorID, Name: "Менеджер контента"},
	}

	users := []User{
		{Email: "a@example.com", RoleIDs: []primitive.ObjectID{adminID, editorID}},
		{Email: "b@example.com", RoleIDs: []primitive.ObjectID{editorID, danglingID}},
		{Email: "c@example.com", RoleIDs: nil},
	}

	got := JoinRoles(users, roles)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	if len(got[0].Roles) != 2 {
		t.Errorf("a@example.com roles = %d, want 2", len(got[0].Roles))
	}
	if len(got[1].Roles) != 1 || got[1].Roles[0].ID != editorID {
		t.Errorf("b@example.com should resolve only the editor role, got %v", got[1].Roles)
	}
	if len(got[2].Roles) != 0 {
		t.Errorf("c@example.com roles = %d, want 0", len(got[2].Roles))
	}
}

func TestRoleIDHexes(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	u := &User{RoleIDs: []primitive.ObjectID{a, b}}
	got := u.RoleIDHexes()
	if len(got) != 2 || got[0] != a.Hex() || got[1] != b.Hex() {
		t.Errorf("RoleIDHexes() = %v, want [%s %s]", got, a.Hex(), b.Hex())
	}

	empty := &User{}
	if got := empty.RoleIDHexes(); len(got) != 0 {
		t.Errorf("RoleIDHexes() on empty user = %v, want empty", got)
	}
}
