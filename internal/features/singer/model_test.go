package singer

import "testing"

func TestValidStatus(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{StatusDraft, true},
		{StatusPublished, true},
		{StatusPaused, true},
		{"archived", false},
		{"", false},
		{"Draft", false},
	}

	for _, tt := range tests {
		if got := ValidStatus(tt.in); got != tt.want {
			t.Errorf("ValidStatus(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewPlaceholderSinger(t *testing.T) {
	s := NewPlaceholderSinger()

	if s.Name != "Новый артист" {
		t.Errorf("name = %q, want placeholder title", s.Name)
	}
	if s.Status != StatusDraft {
		t.Errorf("status = %q, want %q", s.Status, StatusDraft)
	}
	if s.PricingPackages == nil || s.AssignedRepertoireIDs == nil {
		t.Error("embedded collections must be initialized")
	}
	if s.Media.Photos == nil || s.Media.Videos == nil {
		t.Error("media lists must be initialized")
	}
}
