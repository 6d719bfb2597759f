package utils

import "testing"

func TestLookupKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Lowercases", "Cuisine", "cuisine"},
		{"Spaces to underscore", "Event Type", "event_type"},
		{"Strips non word chars", "Kids' Menu!", "kids_menu"},
		{"Collapses repeats", "a   b", "a_b"},
		{"Trims edges", " facilities ", "facilities"},
		{"Keeps digits", "Top 10 Venues", "top_10_venues"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LookupKey(tt.in); got != tt.want {
				t.Errorf("LookupKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
