package idcache

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

// DefaultTTLSeconds is the entry lifetime when none is configured
const DefaultTTLSeconds = 300

// entry is one cached name-to-id mapping
type entry struct {
	id        string
	createdAt time.Time
}

// Stats is a point-in-time snapshot of cache effectiveness
type Stats struct {
	Entries   int     `json:"entries"`
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	HitRate   float64 `json:"hit_rate"`
	TTLSecond int     `json:"ttl_seconds"`
}

// Cache maps (category, name) pairs to backend ids with a read-time TTL.
// Entries are never evicted in the background; expiration is checked on each
// Get and stale entries are dropped then.
type Cache struct {
	mutex   sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	hits    int64
	misses  int64
	log     *logger.Logger

	// now is swappable for TTL boundary tests
	now func() time.Time
}

// New creates a cache. ttlSeconds <= 0 selects the default.
func New(ttlSeconds int, log *logger.Logger) *Cache {
	if ttlSeconds <= 0 {
		ttlSeconds = DefaultTTLSeconds
	}
	return &Cache{
		entries: make(map[string]entry),
		ttl:     time.Duration(ttlSeconds) * time.Second,
		log:     log,
		now:     time.Now,
	}
}

// key builds the lookup key; names are case-folded so "Global" and "global"
// share an entry
func key(category, name string) string {
	return fmt.Sprintf("%s:%s", category, strings.ToLower(name))
}

// Get returns the cached id for a category/name pair. Expired entries are
// removed and reported as misses.
func (c *Cache) Get(category, name string) (string, bool) {
	k := key(category, name)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	e, ok := c.entries[k]
	if !ok {
		c.misses++
		return "", false
	}
	if c.now().Sub(e.createdAt) >= c.ttl {
		delete(c.entries, k)
		c.misses++
		if c.log != nil {
			c.log.Debug("Cache entry expired for %s", k)
		}
		return "", false
	}

	c.hits++
	return e.id, true
}

// Set stores a resolved id
func (c *Cache) Set(category, name, id string) {
	k := key(category, name)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[k] = entry{id: id, createdAt: c.now()}
}

// Stats reports cache size and hit-rate counters
func (c *Cache) Stats() Stats {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	total := c.hits + c.misses
	rate := 0.0
	if total > 0 {
		rate = float64(c.hits) / float64(total)
	}
	return Stats{
		Entries:   len(c.entries),
		Hits:      c.hits,
		Misses:    c.misses,
		HitRate:   rate,
		TTLSecond: int(c.ttl / time.Second),
	}
}

// Clear drops every entry, keeping the hit counters
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]entry)
}
