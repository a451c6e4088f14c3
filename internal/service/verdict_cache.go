package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ai-assess/internal/cache"
	"ai-assess/internal/domain"
	"ai-assess/internal/logger"

	"go.uber.org/zap"
)

const DefaultVerdictCacheTTL = 24 * time.Hour

// verdictCacheImpl stores semantic verdicts as JSON in a domain.Cache.
type verdictCacheImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewVerdictCache creates a verdict cache over c. A non-positive ttl uses DefaultVerdictCacheTTL.
func NewVerdictCache(c domain.Cache, ttl time.Duration) domain.VerdictCache {
	if ttl <= 0 {
		ttl = DefaultVerdictCacheTTL
	}
	return &verdictCacheImpl{cache: c, ttl: ttl}
}

// Get returns nil, nil on a miss.
func (v *verdictCacheImpl) Get(ctx context.Context, digest string) (*domain.Verdict, error) {
	key := cache.VerdictKey(digest)
	raw, err := v.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("verdict cache get: %w", err)
	}

	var verdict domain.Verdict
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		logger.Named("cache").Warn("Dropping undecodable cached verdict", zap.String("key", key), zap.Error(err))
		if delErr := v.cache.Delete(ctx, key); delErr != nil {
			logger.Named("cache").Warn("Failed to delete cached verdict", zap.String("key", key), zap.Error(delErr))
		}
		return nil, nil
	}
	return &verdict, nil
}

func (v *verdictCacheImpl) Put(ctx context.Context, digest string, verdict domain.Verdict) error {
	data, err := json.Marshal(verdict)
	if err != nil {
		return fmt.Errorf("verdict cache marshal: %w", err)
	}
	if err := v.cache.Set(ctx, cache.VerdictKey(digest), string(data), v.ttl); err != nil {
		return fmt.Errorf("verdict cache set: %w", err)
	}
	return nil
}
