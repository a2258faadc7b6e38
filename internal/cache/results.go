package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/logging"
	"github.com/jonathan/resume-ats/internal/observability"
	"github.com/jonathan/resume-ats/internal/types"
)

// keyPrefix is bumped whenever scoring rules change so stale results are not served.
const keyPrefix = "ats:result:v1:"

// Breaker settings for the Redis path.
const (
	breakerMinRequests      = 5
	breakerFailureThreshold = 0.6
	breakerTimeout          = 30 * time.Second
	breakerInterval         = time.Minute
)

// Key derives the cache key for a raw résumé document. encoding/json sorts
// map keys, so equal documents hash equally regardless of field order.
func Key(raw map[string]any) (string, error) {
	b, err := json.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("failed to encode resume for cache key: %w", err)
	}
	sum := sha256.Sum256(b)
	return keyPrefix + hex.EncodeToString(sum[:]), nil
}

// Results caches ATS results. A nil *Results is valid and always computes.
type Results struct {
	store   Store
	ttl     time.Duration
	breaker *gobreaker.CircuitBreaker[[]byte]
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewResults wraps store with a circuit breaker so a failing Redis is skipped
// until it recovers.
func NewResults(store Store, ttl time.Duration, logger *zap.Logger, metrics *observability.Metrics) *Results {
	logger = logging.OrNop(logger)
	settings := gobreaker.Settings{
		Name:        "redis-results",
		MaxRequests: 1,
		Interval:    breakerInterval,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= breakerMinRequests && failureRatio >= breakerFailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrMiss)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("cache circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}
	return &Results{
		store:   store,
		ttl:     ttl,
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
		logger:  logger,
		metrics: metrics,
	}
}

// Get returns the cached result for key.
func (c *Results) Get(ctx context.Context, key string) (types.ATSResult, bool) {
	var res types.ATSResult
	if c == nil {
		return res, false
	}

	b, err := c.breaker.Execute(func() ([]byte, error) {
		return c.store.Get(ctx, key)
	})
	switch {
	case errors.Is(err, ErrMiss):
		c.metrics.ObserveCache(observability.CacheMiss)
		return res, false
	case err != nil:
		c.metrics.ObserveCache(observability.CacheError)
		c.logger.Debug("cache read bypassed", zap.Error(err))
		return res, false
	}

	if err := json.Unmarshal(b, &res); err != nil {
		c.metrics.ObserveCache(observability.CacheError)
		c.logger.Warn("discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		return types.ATSResult{}, false
	}
	c.metrics.ObserveCache(observability.CacheHit)
	return res, true
}

// Set stores res under key. Failures are logged only.
func (c *Results) Set(ctx context.Context, key string, res types.ATSResult) {
	if c == nil {
		return
	}
	b, err := json.Marshal(res)
	if err != nil {
		c.logger.Warn("failed to encode result for cache", zap.Error(err))
		return
	}
	_, err = c.breaker.Execute(func() ([]byte, error) {
		return nil, c.store.Set(ctx, key, b, c.ttl)
	})
	if err != nil {
		c.logger.Debug("cache write bypassed", zap.Error(err))
	}
}

// GetOrCompute returns the cached result for raw, or computes, stores and
// returns it. The boolean reports a cache hit.
func (c *Results) GetOrCompute(ctx context.Context, raw map[string]any, compute func() types.ATSResult) (types.ATSResult, bool) {
	if c == nil {
		return compute(), false
	}
	key, err := Key(raw)
	if err != nil {
		c.logger.Debug("uncacheable resume", zap.Error(err))
		return compute(), false
	}
	if res, ok := c.Get(ctx, key); ok {
		return res, true
	}
	res := compute()
	c.Set(ctx, key, res)
	return res, false
}

// State reports the circuit breaker state ("closed", "half-open", "open").
func (c *Results) State() string {
	if c == nil {
		return "disabled"
	}
	return c.breaker.State().String()
}
