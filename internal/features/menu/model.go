package menu

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is one dish in the shared catalog.
type MenuItem struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Category    string             `json:"category" bson:"category"`
	Description string             `json:"description" bson:"description"`
	PortionSize string             `json:"portion_size" bson:"portion_size"`
	PhotoURL    string             `json:"photo_url" bson:"photo_url"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// MenuPackage bundles catalog items under a price. item_ids keep the
// operator's ordering.
type MenuPackage struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name      string               `json:"name" bson:"name"`
	PriceAzn  float64              `json:"price_azn" bson:"price_azn"`
	ItemIDs   []primitive.ObjectID `json:"item_ids" bson:"item_ids"`
	CreatedAt time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time            `json:"updated_at" bson:"updated_at"`
}
