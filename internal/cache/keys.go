package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix  = "user:%d"
	plantKeyPrefix = "plant:%d"
	// approvedPostsKey caches one shape of the approved forum listing: the
	// anonymous, unfiltered first page sorted newest-first at the default page
	// size. Detail views are never cached: votes and comments mutate
	// independently of the post row and a stale aggregate is worse than a read.
	approvedPostsKey = "posts:approved:first"
)

// TTLs per entity class.
const (
	UserTTL  = 5 * time.Minute
	PlantTTL = 10 * time.Minute
	ListTTL  = 1 * time.Minute
)

// UserKey returns the cache key for a user profile.
func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

// PlantKey returns the cache key for a plant.
func PlantKey(plantID uint) string {
	return fmt.Sprintf(plantKeyPrefix, plantID)
}

// ApprovedPostsKey returns the cache key for the anonymous approved-post listing.
func ApprovedPostsKey() string {
	return approvedPostsKey
}

// Invalidate removes a key. Best-effort: a cache miss is always safe.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUser removes a cached user profile.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidatePlant removes a cached plant.
func InvalidatePlant(ctx context.Context, plantID uint) {
	Invalidate(ctx, PlantKey(plantID))
}

// InvalidateApprovedPosts removes the cached approved-post listing. Every
// mutation that can change the listing or its aggregates calls this.
func InvalidateApprovedPosts(ctx context.Context) {
	Invalidate(ctx, approvedPostsKey)
}
