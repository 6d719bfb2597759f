package venue

import (
	"time"

	common_models "go-eventcrm/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Contact struct {
	Person string `json:"person" bson:"person"`
	Phone  string `json:"phone" bson:"phone"`
	Email  string `json:"email" bson:"email"`
}

type Policies struct {
	AlcoholAllowed        bool    `json:"alcohol_allowed" bson:"alcohol_allowed"`
	CorkageFeeAzn         float64 `json:"corkage_fee_azn" bson:"corkage_fee_azn"`
	OutsideCateringOK     bool    `json:"outside_catering_allowed" bson:"outside_catering_allowed"`
	PricePerPersonAznFrom float64 `json:"price_per_person_azn_from" bson:"price_per_person_azn_from"`
	PricePerPersonAznTo   float64 `json:"price_per_person_azn_to" bson:"price_per_person_azn_to"`
}

type Location struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// MenuCategory is the legacy embedded menu kept for venues created
// before the shared menu catalog existed.
type MenuCategory struct {
	Name  string   `json:"name" bson:"name"`
	Items []string `json:"items" bson:"items"`
}

// Venue is a restaurant or event hall. Updates are full-document
// overwrites; custom_fields is keyed by lookup keys and holds the
// selected value lists.
type Venue struct {
	ID                 primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name               string               `json:"name" bson:"name"`
	Address            string               `json:"address" bson:"address"`
	District           string               `json:"district" bson:"district"`
	CapacityMin        int                  `json:"capacity_min" bson:"capacity_min"`
	CapacityMax        int                  `json:"capacity_max" bson:"capacity_max"`
	BaseRentalFee      float64              `json:"base_rental_fee" bson:"base_rental_fee"`
	Contact            Contact              `json:"contact" bson:"contact"`
	Policies           Policies             `json:"policies" bson:"policies"`
	Location           Location             `json:"location" bson:"location"`
	Media              common_models.Media  `json:"media" bson:"media"`
	MenuCategories     []MenuCategory       `json:"menu_categories" bson:"menu_categories"`
	Cuisine            []string             `json:"cuisine" bson:"cuisine"`
	Facilities         []string             `json:"facilities" bson:"facilities"`
	Services           []string             `json:"services" bson:"services"`
	SuitableFor        []string             `json:"suitable_for" bson:"suitable_for"`
	Tags               []string             `json:"tags" bson:"tags"`
	CustomFields       map[string][]string  `json:"custom_fields" bson:"custom_fields"`
	AssignedPackageIDs []primitive.ObjectID `json:"assigned_package_ids" bson:"assigned_package_ids"`
	CreatedAt          time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at" bson:"updated_at"`
}

// NewPlaceholderVenue returns the default document a create call
// materializes before the operator fills it in.
func NewPlaceholderVenue() *Venue {
	return &Venue{
		Name:               "Новый ресторан",
		Media:              common_models.Media{Photos: []string{}, Videos: []string{}},
		MenuCategories:     []MenuCategory{},
		Cuisine:            []string{},
		Facilities:         []string{},
		Services:           []string{},
		SuitableFor:        []string{},
		Tags:               []string{},
		CustomFields:       map[string][]string{},
		AssignedPackageIDs: []primitive.ObjectID{},
	}
}
