package rulecache

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
)

// Key identifies one memoized candidate snapshot.
type Key struct {
	OrgID       uuid.UUID
	AreaID      uuid.UUID
	SubjectType domain.SubjectType
}

func (k Key) String() string {
	return k.OrgID.String() + "|" + k.AreaID.String() + "|" + string(k.SubjectType)
}

// Loader fetches the ACTIVE rule snapshot for a key on a cache miss.
type Loader func(ctx context.Context) ([]db.AccessRule, error)

// Cache memoizes ACTIVE rules per (org, area, subjectType). It is local to
// the process; cluster-wide consistency comes from every node consuming the
// same policy-change stream and invalidating on it. Concurrent misses for
// one key share a single load via singleflight.
type Cache struct {
	mu      sync.RWMutex
	epoch   uint64
	entries map[Key][]db.AccessRule
	group   singleflight.Group

	hits   metric.Int64Counter
	misses metric.Int64Counter
}

// New builds an empty cache.
func New() *Cache {
	meter := otel.Meter("acp/rulecache")
	hits, _ := meter.Int64Counter("acp.rulecache.hits.total",
		metric.WithDescription("Candidate snapshots served from memory"),
	)
	misses, _ := meter.Int64Counter("acp.rulecache.misses.total",
		metric.WithDescription("Candidate snapshots loaded from the rule store"),
	)

	return &Cache{
		entries: make(map[Key][]db.AccessRule),
		hits:    hits,
		misses:  misses,
	}
}

// Get returns the cached snapshot for key, loading and caching it on a miss.
// A snapshot loaded concurrently with an invalidation is returned to the
// caller but not cached, so an invalidation can never be undone by an
// in-flight load finishing late.
func (c *Cache) Get(ctx context.Context, key Key, load Loader) ([]db.AccessRule, error) {
	c.mu.RLock()
	rules, ok := c.entries[key]
	startEpoch := c.epoch
	c.mu.RUnlock()
	if ok {
		c.hits.Add(ctx, 1)
		return rules, nil
	}
	c.misses.Add(ctx, 1)

	v, err, _ := c.group.Do(key.String(), func() (interface{}, error) {
		// A queued caller may find the entry already filled.
		c.mu.RLock()
		cached, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.epoch == startEpoch {
			c.entries[key] = loaded
		}
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]db.AccessRule), nil
}

// Invalidate drops a single key.
func (c *Cache) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	delete(c.entries, key)
}

// InvalidateArea drops every subject type's snapshot under (org, area).
// Policy-change events carry no subject type, so a rule change clears the
// whole area slice.
func (c *Cache) InvalidateArea(orgID, areaID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	for key := range c.entries {
		if key.OrgID == orgID && key.AreaID == areaID {
			delete(c.entries, key)
		}
	}
}

// InvalidateOrg drops every snapshot for one tenant.
func (c *Cache) InvalidateOrg(orgID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	for key := range c.entries {
		if key.OrgID == orgID {
			delete(c.entries, key)
		}
	}
}

// InvalidateAll resets the cache. Triggered by the admin invalidate-all
// change type.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.entries = make(map[Key][]db.AccessRule)
}

// Len reports the number of cached snapshots.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
