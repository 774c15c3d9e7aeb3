package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketcrown/backend-go/internal/metrics"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

type cacheEntry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// EntryCache stores whole results together with the time they were fetched.
// An entry is fresh while now-timestamp < ttl; afterwards it is ignored until a
// later Put supersedes it. Entries are never removed.
type EntryCache struct {
	backend Cache
	ttl     time.Duration
	clock   Clock
}

func NewEntryCache(backend Cache, ttl time.Duration, clock Clock) *EntryCache {
	if clock == nil {
		clock = SystemClock
	}
	return &EntryCache{backend: backend, ttl: ttl, clock: clock}
}

func (c *EntryCache) TTL() time.Duration { return c.ttl }

// Get decodes the fresh entry under key into dst. It reports false on a miss,
// a stale entry or an undecodable one.
func (c *EntryCache) Get(ctx context.Context, key string, dst any) bool {
	hit := c.get(ctx, key, dst)
	metrics.RecordCacheLookup(key, hit)
	return hit
}

func (c *EntryCache) get(ctx context.Context, key string, dst any) bool {
	b, ok := c.backend.Get(ctx, key)
	if !ok {
		return false
	}
	var e cacheEntry
	if err := UnmarshalCache(b, &e); err != nil {
		return false
	}
	if c.clock.Now().Sub(e.Timestamp) >= c.ttl {
		return false
	}
	return json.Unmarshal(e.Data, dst) == nil
}

// Put overwrites the entry under key, stamping it with the current time.
func (c *EntryCache) Put(ctx context.Context, key string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	b, err := MarshalCache(cacheEntry{Data: raw, Timestamp: c.clock.Now()})
	if err != nil {
		return fmt.Errorf("encode %s entry: %w", key, err)
	}
	return c.backend.Set(ctx, key, b, 0)
}
