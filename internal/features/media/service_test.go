package media

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRelPath(t *testing.T) {
	tests := []struct {
		name       string
		entity     string
		id         string
		filename   string
		wantDir    string
		wantSuffix string
	}{
		{"Venue files share one directory", "venues", "abc123", "hall.jpg", "venues", "_hall.jpg"},
		{"Singer files grouped per document", "singers", "abc123", "promo.mp4", filepath.Join("singers", "abc123"), "_promo.mp4"},
		{"Car files grouped per document", "cars", "def456", "sedan.png", filepath.Join("cars", "def456"), "_sedan.png"},
		{"Path traversal stripped from filename", "singers", "abc123", "../../etc/passwd", filepath.Join("singers", "abc123"), "_passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := relPath(tt.entity, tt.id, tt.filename)
			if filepath.Dir(got) != tt.wantDir {
				t.Errorf("dir = %q, want %q", filepath.Dir(got), tt.wantDir)
			}
			if !strings.HasSuffix(got, tt.wantSuffix) {
				t.Errorf("path = %q, want suffix %q", got, tt.wantSuffix)
			}
		})
	}
}

func TestEntityCollections(t *testing.T) {
	for entity, collection := range entityCollections {
		if collection == "" {
			t.Errorf("entity %q maps to empty collection", entity)
		}
	}
	for _, entity := range []string{"venues", "singers", "cars"} {
		if _, ok := entityCollections[entity]; !ok {
			t.Errorf("entity %q missing from upload targets", entity)
		}
	}
	if _, ok := entityCollections["users"]; ok {
		t.Error("users must not accept media uploads")
	}
}
