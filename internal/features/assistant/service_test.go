package assistant

import (
	"strings"
	"testing"

	"go-eventcrm/internal/features/venue"
)

func sampleVenue() *venue.Venue {
	return &venue.Venue{
		Name:          "Qala Hall",
		Address:       "12 Nizami St",
		District:      "Sabail",
		CapacityMin:   50,
		CapacityMax:   300,
		BaseRentalFee: 1500,
		Policies: venue.Policies{
			AlcoholAllowed:        true,
			CorkageFeeAzn:         25,
			OutsideCateringOK:     false,
			PricePerPersonAznFrom: 40,
			PricePerPersonAznTo:   90,
		},
		Cuisine:     []string{"Azerbaijani", "European"},
		Facilities:  []string{"Parking", "Stage"},
		Services:    []string{"Decoration"},
		SuitableFor: []string{"Weddings"},
		Contact: venue.Contact{
			Person: "Leyla",
			Phone:  "+994501234567",
			Email:  "leyla@example.com",
		},
	}
}

func TestBuildVenueContext(t *testing.T) {
	got := buildVenueContext(sampleVenue())

	wantLines := []string{
		"Restaurant Name: Qala Hall",
		"Address: 12 Nizami St, Sabail",
		"Capacity: from 50 to 300 people.",
		"Base Rental Fee: 1500 AZN.",
		"- Price per person: from 40 to 90 AZN.",
		"- Alcohol allowed: Yes.",
		"- Corkage fee: 25 AZN.",
		"- Outside catering allowed: No.",
		"Cuisine: Azerbaijani, European.",
		"Facilities: Parking, Stage.",
		"Services: Decoration.",
		"Suitable for: Weddings.",
		"Contact Person: Leyla",
		"Contact Phone: +994501234567",
		"Contact Email: leyla@example.com",
	}

	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("context missing line %q\ngot:\n%s", line, got)
		}
	}
}

func TestBuildPrompt(t *testing.T) {
	got := buildPrompt(sampleVenue(), "Is parking available?")

	if !strings.HasPrefix(got, "Based on the following information about a restaurant, answer the user's question.") {
		t.Errorf("prompt has wrong preamble:\n%s", got)
	}
	if !strings.Contains(got, "Restaurant Information:\nRestaurant Name: Qala Hall") {
		t.Errorf("prompt missing venue context:\n%s", got)
	}
	if !strings.Contains(got, `User's Question: "Is parking available?"`) {
		t.Errorf("prompt missing quoted question:\n%s", got)
	}
}
