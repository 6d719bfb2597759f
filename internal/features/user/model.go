package user

import (
	"time"

	"go-eventcrm/internal/features/role"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the staff profile document. Role membership is an array of
// role document ids; nothing enforces that the referenced roles exist.
type User struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Email       string               `json:"email" bson:"email"`
	Password    string               `json:"-" bson:"password"`
	DisplayName string               `json:"display_name" bson:"display_name"`
	Phone       string               `json:"phone" bson:"phone"`
	RoleIDs     []primitive.ObjectID `json:"role_ids" bson:"role_ids"`
	Status      string               `json:"status" bson:"status"` // active, suspended
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at" bson:"updated_at"`
}

// UserWithRoles joins a profile to its resolved role documents.
// Dangling role ids are silently dropped from the join.
type UserWithRoles struct {
	User
	Roles []role.Role `json:"roles"`
}

func (u *User) RoleIDHexes() []string {
	hexes := make([]string, 0, len(u.RoleIDs))
	for _, id := range u.RoleIDs {
		hexes = append(hexes, id.Hex())
	}
	return hexes
}

// JoinRoles builds the read model for a set of users against the full
// role list.
func JoinRoles(users []User, roles []role.Role) []UserWithRoles {
	byID := make(map[string]role.Role, len(roles))
	for _, r := range roles {
		byID[r.ID.Hex()] = r
	}

	out := make([]UserWithRoles, 0, len(users))
	for _, u := range users {
		resolved := make([]role.Role, 0, len(u.RoleIDs))
		for _, id := range u.RoleIDs {
			if r, ok := byID[id.Hex()]; ok {
				resolved = append(resolved, r)
			}
		}
		out = append(out, UserWithRoles{User: u, Roles: resolved})
	}
	return out
}
