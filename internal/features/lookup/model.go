package lookup

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lookup is a named list of reference values. The key is derived from
// the name at creation and never changes afterwards; venue
// custom_fields index by it.
type Lookup struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Key       string             `json:"key" bson:"key"`
	Values    []string           `json:"values" bson:"values"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
