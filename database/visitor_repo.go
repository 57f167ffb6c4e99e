package database

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const visitorCountKey = "visitor_count"

// VisitorRepo keeps the site-wide visitor counter in the key-value store.
type VisitorRepo struct {
	rdb *redis.Client
}

func NewVisitorRepo(rdb *redis.Client) *VisitorRepo {
	return &VisitorRepo{rdb}
}

// Hit increments the visitor counter and returns the new value. INCR is
// atomic, so concurrent visitors never lose a count.
func (r *VisitorRepo) Hit(ctx context.Context) (int64, error) {
	return r.rdb.Incr(ctx, visitorCountKey).Result()
}

// Count returns the current counter without incrementing it. A missing key
// reads as zero.
func (r *VisitorRepo) Count(ctx context.Context) (int64, error) {
	count, err := r.rdb.Get(ctx, visitorCountKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return count, err
}
