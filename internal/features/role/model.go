package role

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a named bundle of permission ids assignable to users.
// Permission ids are opaque "<resource>:<action>" strings; membership
// in a user's computed set grants exactly one capability.
type Role struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Permissions []string           `json:"permissions" bson:"permissions"`
	IsSystem    bool               `json:"is_system" bson:"is_system"` // Prevent deletion of system roles
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// Set is a flattened permission set. Membership is exact string
// equality; there is no inheritance, deny rule or wildcard matching.
type Set map[string]struct{}

func (s Set) Has(permission string) bool {
	_, ok := s[permission]
	return ok
}

// Values returns the set as a sorted slice, for JSON responses.
func (s Set) Values() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// UnionForRoles computes the permission set as the union of the
// permissions of every role whose id appears in roleIDs. Unknown ids
// contribute nothing; an empty roleIDs yields an empty set.
func UnionForRoles(roles []Role, roleIDs []string) Set {
	assigned := make(map[string]struct{}, len(roleIDs))
	for _, id := range roleIDs {
		assigned[id] = struct{}{}
	}

	set := make(Set)
	for _, r := range roles {
		if _, ok := assigned[r.ID.Hex()]; !ok {
			continue
		}
		for _, p := range r.Permissions {
			set[p] = struct{}{}
		}
	}
	return set
}
