package venue

import "testing"

func TestNewPlaceholderVenue(t *testing.T) {
	v := NewPlaceholderVenue()

	if v.Name != "Новый ресторан" {
		t.Errorf("name = %q, want placeholder title", v.Name)
	}

	// Collections must serialize as [] / {}, not null, so the admin UI
	// can render a fresh card without nil checks.
	if v.Media.Photos == nil || v.Media.Videos == nil {
		t.Error("media lists must be initialized")
	}
	if v.Cuisine == nil || v.Facilities == nil || v.Services == nil || v.SuitableFor == nil || v.Tags == nil {
		t.Error("attribute lists must be initialized")
	}
	if v.MenuCategories == nil {
		t.Error("menu_categories must be initialized")
	}
	if v.CustomFields == nil {
		t.Error("custom_fields must be initialized")
	}
	if v.AssignedPackageIDs == nil {
		t.Error("assigned_package_ids must be initialized")
	}
}
