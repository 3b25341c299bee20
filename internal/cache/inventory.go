package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix = "user:%s"
)

const (
	// UserTTL bounds how stale a cached user record may be.
	UserTTL = 5 * time.Minute
)

// UserKey returns the cache key for a user record.
func UserKey(userID string) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

// Invalidate deletes a single cache key.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUser drops the cached record for a user.
func InvalidateUser(ctx context.Context, userID string) {
	Invalidate(ctx, UserKey(userID))
}
