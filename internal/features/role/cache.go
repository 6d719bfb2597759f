package role

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	permCachePrefix = "perms:"
	permCacheTTL    = 5 * time.Minute
)

// PermissionCache keeps computed permission sets in Redis, keyed by the
// sorted role-id combination. Sets are recomputed on miss and thrown
// away whenever any role document changes, which matches the
// "recomputed per sign-in / refetch" cadence without live reactivity.
type PermissionCache struct {
	client *redis.Client
}

func NewPermissionCache(client *redis.Client) *PermissionCache {
	return &PermissionCache{client: client}
}

func cacheKey(roleIDs []string) string {
	ids := make([]string, len(roleIDs))
	copy(ids, roleIDs)
	sort.Strings(ids)
	return permCachePrefix + strings.Join(ids, ",")
}

// Get returns the cached set for the role combination, or nil on miss.
// Redis errors are treated as misses.
func (c *PermissionCache) Get(ctx context.Context, roleIDs []string) Set {
	raw, err := c.client.Get(ctx, cacheKey(roleIDs)).Result()
	if err != nil {
		return nil
	}

	var perms []string
	if err := json.Unmarshal([]byte(raw), &perms); err != nil {
		return nil
	}

	set := make(Set, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

func (c *PermissionCache) Put(ctx context.Context, roleIDs []string, set Set) {
	raw, err := json.Marshal(set.Values())
	if err != nil {
		return
	}
	c.client.Set(ctx, cacheKey(roleIDs), raw, permCacheTTL)
}

// Invalidate drops every cached set. Role edits are rare enough that a
// full flush is simpler than tracking which combinations contain a role.
func (c *PermissionCache) Invalidate(ctx context.Context) {
	keys, err := c.client.Keys(ctx, permCachePrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}
