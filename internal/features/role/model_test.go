package role

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUnionForRoles(t *testing.T) {
	adminID := primitive.NewObjectID()
	editorID := primitive.NewObjectID()
	viewerID := primitive.NewObjectID()

	roles := []Role{
		{ID: adminID, Name: "admin", Permissions: []string{"roles:read", "roles:create"}},
		{ID: editorID, Name: "editor", Permissions: []string{"restaurants:read", "restaurants:update", "roles:read"}},
		{ID: viewerID, Name: "viewer", Permissions: []string{"restaurants:read"}},
	}

	tests := []struct {
		name    string
		roleIDs []string
		want    []string
	}{
		{
			name:    "No roles yields empty set",
			roleIDs: nil,
			want:    []string{},
		},
		{
			name:    "Single role",
			roleIDs: []string{adminID.Hex()},
			want:    []string{"roles:create", "roles:read"},
		},
		{
			name:    "Union deduplicates",
			roleIDs: []string{adminID.Hex(), editorID.Hex()},
			want:    []string{"restaurants:read", "restaurants:update", "roles:create", "roles:read"},
		},
		{
			name:    "Unknown role id contributes nothing",
			roleIDs: []string{primitive.NewObjectID().Hex()},
			want:    []string{},
		},
		{
			name:    "Subset union",
			roleIDs: []string{viewerID.Hex(), editorID.Hex()},
			want:    []string{"restaurants:read", "restaurants:update", "roles:read"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnionForRoles(roles, tt.roleIDs).Values()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UnionForRoles() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetHas(t *testing.T) {
	set := Set{"restaurants:read": {}}

	if !set.Has("restaurants:read") {
		t.Error("expected membership for restaurants:read")
	}
	if set.Has("restaurants:update") {
		t.Error("unexpected membership for restaurants:update")
	}
	// No wildcard semantics
	if set.Has("restaurants:*") {
		t.Error("wildcards must not match")
	}
}
