package repertoire

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Song lives in the shared top-level catalog; repertoires reference it
// by id. Deleting a song pulls it out of every repertoire in the same
// transaction.
type Song struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	OriginalArtist string             `json:"original_artist" bson:"original_artist"`
	Language       string             `json:"language" bson:"language"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}

// Repertoire is a named ordered set of songs.
type Repertoire struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name      string               `json:"name" bson:"name"`
	SongIDs   []primitive.ObjectID `json:"song_ids" bson:"song_ids"`
	CreatedAt time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time            `json:"updated_at" bson:"updated_at"`
}
