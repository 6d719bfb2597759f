package car

import (
	"time"

	common_models "go-eventcrm/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Messengers struct {
	Whatsapp string `json:"whatsapp" bson:"whatsapp"`
	Telegram string `json:"telegram" bson:"telegram"`
}

type PickupPoint struct {
	Label   string  `json:"label" bson:"label"`
	Address string  `json:"address" bson:"address"`
	Lat     float64 `json:"lat" bson:"lat"`
	Lng     float64 `json:"lng" bson:"lng"`
}

type CarProvider struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Type          string             `json:"type" bson:"type"` // individual, fleet
	ContactPerson string             `json:"contact_person" bson:"contact_person"`
	Phones        []string           `json:"phones" bson:"phones"`
	Messengers    Messengers         `json:"messengers" bson:"messengers"`
	Address       string             `json:"address" bson:"address"`
	CityCode      string             `json:"city_code" bson:"city_code"`
	PickupPoints  []PickupPoint      `json:"pickup_points" bson:"pickup_points"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

type Pricing struct {
	Mode         string  `json:"mode" bson:"mode"` // hourly, daily, transfer
	BasePriceAzn float64 `json:"base_price_azn" bson:"base_price_azn"`
}

// Car carries a denormalized provider name next to the id so lists
// render without a join. Deleting a provider removes its cars.
type Car struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	ProviderID   primitive.ObjectID  `json:"provider_id" bson:"provider_id"`
	ProviderName string              `json:"provider_name" bson:"provider_name"`
	Brand        string              `json:"brand" bson:"brand"`
	Model        string              `json:"model" bson:"model"`
	Year         int                 `json:"year" bson:"year"`
	Class        string              `json:"class" bson:"class"`
	BodyType     string              `json:"body_type" bson:"body_type"`
	Color        string              `json:"color" bson:"color"`
	Seats        int                 `json:"seats" bson:"seats"`
	Pricing      Pricing             `json:"pricing" bson:"pricing"`
	Media        common_models.Media `json:"media" bson:"media"`
	CreatedAt    time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at" bson:"updated_at"`
}
