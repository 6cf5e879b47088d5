package usecase

import (
	"context"
	"time"
)

// RecommendationCache is satisfied by the redis adapter; a nil cache means
// every request recomputes.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
