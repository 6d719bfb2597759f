package singer

import (
	"time"

	common_models "go-eventcrm/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusPaused    = "paused"
)

// PricingPackage is an offer embedded in the singer document. Packages
// never exist apart from their singer.
type PricingPackage struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Description     string             `json:"description" bson:"description"`
	Price           float64            `json:"price" bson:"price"`
	Currency        string             `json:"currency" bson:"currency"`
	DurationMinutes int                `json:"duration_minutes" bson:"duration_minutes"`
	Active          bool               `json:"active" bson:"active"`
}

type Singer struct {
	ID                    primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name                  string               `json:"name" bson:"name"`
	Aliases               []string             `json:"aliases" bson:"aliases"`
	Gender                string               `json:"gender" bson:"gender"` // male, female, duo, group
	City                  string               `json:"city" bson:"city"`
	RegionsCovered        []string             `json:"regions_covered" bson:"regions_covered"`
	Phones                []string             `json:"phones" bson:"phones"`
	Genres                []string             `json:"genres" bson:"genres"`
	Tags                  []string             `json:"tags" bson:"tags"`
	Languages             []string             `json:"languages" bson:"languages"`
	Status                string               `json:"status" bson:"status"`
	Media                 common_models.Media  `json:"media" bson:"media"`
	PricingPackages       []PricingPackage     `json:"pricing_packages" bson:"pricing_packages"`
	AssignedRepertoireIDs []primitive.ObjectID `json:"assigned_repertoire_ids" bson:"assigned_repertoire_ids"`
	CreatedAt             time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt             time.Time            `json:"updated_at" bson:"updated_at"`
}

func NewPlaceholderSinger() *Singer {
	return &Singer{
		Name:                  "Новый артист",
		Status:                StatusDraft,
		Aliases:               []string{},
		RegionsCovered:        []string{},
		Phones:                []string{},
		Genres:                []string{},
		Tags:                  []string{},
		Languages:             []string{},
		Media:                 common_models.Media{Photos: []string{}, Videos: []string{}},
		PricingPackages:       []PricingPackage{},
		AssignedRepertoireIDs: []primitive.ObjectID{},
	}
}

func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished || s == StatusPaused
}
