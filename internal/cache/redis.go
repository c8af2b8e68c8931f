// Package cache stores computed statistics reports in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maheshrc27/kolink/internal/analytics"
	"github.com/maheshrc27/kolink/internal/metrics"
	"github.com/redis/go-redis/v9"
)

const statsKey = "kolink:stats:reports"

// NewRedisClient accepts either a host:port address or a redis:// URL and
// verifies the connection.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	opts := &redis.Options{Addr: addr}
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		opts = parsed
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

type StatsCache interface {
	// Get misses when the stored report is no longer valid at now.
	Get(ctx context.Context, field string, now time.Time) (*analytics.Report, bool, error)
	// Set stores report until validUntil, or until the cache TTL if that is
	// earlier. A zero validUntil means only the TTL applies.
	Set(ctx context.Context, field string, report *analytics.Report, validUntil time.Time) error
	// Invalidate drops every cached report.
	Invalidate(ctx context.Context) error
}

type redisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache keeps all reports in one hash so a post change can drop them in
// a single DEL.
func NewStatsCache(client *redis.Client, ttl time.Duration) StatsCache {
	return &redisStatsCache{client: client, ttl: ttl}
}

// ReportField identifies a report by everything that changes its output.
func ReportField(rangeToken, lang, timezone string) string {
	return rangeToken + "|" + lang + "|" + timezone
}

type cachedReport struct {
	Report     *analytics.Report `json:"report"`
	ValidUntil time.Time         `json:"validUntil"`
}

func (c *redisStatsCache) Get(ctx context.Context, field string, now time.Time) (*analytics.Report, bool, error) {
	data, err := c.client.HGet(ctx, statsKey, field).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.StatsCacheLookups.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, err
	}

	var entry cachedReport
	if err := json.Unmarshal(data, &entry); err != nil || entry.Report == nil {
		metrics.StatsCacheLookups.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if !entry.ValidUntil.IsZero() && !now.Before(entry.ValidUntil) {
		metrics.StatsCacheLookups.WithLabelValues("stale").Inc()
		return nil, false, nil
	}
	metrics.StatsCacheLookups.WithLabelValues("hit").Inc()
	return entry.Report, true, nil
}

func (c *redisStatsCache) Set(ctx context.Context, field string, report *analytics.Report, validUntil time.Time) error {
	data, err := json.Marshal(cachedReport{Report: report, ValidUntil: validUntil})
	if err != nil {
		return err
	}

	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, statsKey, field, data)
	pipe.Expire(ctx, statsKey, c.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (c *redisStatsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, statsKey).Err()
}
