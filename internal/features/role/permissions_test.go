package role

import (
	"strings"
	"testing"
)

func TestPermissionCatalogIDs(t *testing.T) {
	for resource, perms := range AllPermissions {
		for _, p := range perms {
			if !strings.HasPrefix(p.ID, resource+":") {
				t.Errorf("permission %q not prefixed with its resource %q", p.ID, resource)
			}
			if p.Label == "" {
				t.Errorf("permission %q has no label", p.ID)
			}
		}
	}

	// No duplicates across the whole catalog.
	seen := map[string]struct{}{}
	for _, id := range AllPermissionIDs() {
		if _, dup := seen[id]; dup {
			t.Errorf("duplicate permission id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestResourcePermissionIDs(t *testing.T) {
	tests := []struct {
		resource string
		want     string
	}{
		{"restaurants", "restaurants:assign-packages"},
		{"artists", "artists:assign-repertoires"},
		{"users", "users:assign-roles"},
	}

	for _, tt := range tests {
		ids := ResourcePermissionIDs(tt.resource)
		found := false
		for _, id := range ids {
			if id == tt.want {
				found = true
			}
		}
		if !found {
			t.Errorf("ResourcePermissionIDs(%q) = %v, missing %q", tt.resource, ids, tt.want)
		}
	}

	if ids := ResourcePermissionIDs("unknown"); len(ids) != 0 {
		t.Errorf("ResourcePermissionIDs(unknown) = %v, want empty", ids)
	}
}
