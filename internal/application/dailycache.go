// Package application contains use-case orchestration services.
package application

import (
	"sync"
	"time"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
)

// cacheTTL is how long a fetched timetable stays live.
const cacheTTL = 24 * time.Hour

// cacheEntry holds a cached payload and its absolute expiry.
type cacheEntry struct {
	times   *model.PrayerTimes
	expires time.Time
}

// dailyCache is a date-keyed cache for prayer timetables. An expired entry is
// treated as a miss and overwritten on the next successful fetch; nothing is
// proactively evicted. Guarded by a mutex because the HTTP server calls into
// it from concurrent goroutines.
type dailyCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	now     func() time.Time
}

// newDailyCache creates an empty cache using the given clock.
func newDailyCache(now func() time.Time) *dailyCache {
	return &dailyCache{
		entries: make(map[string]cacheEntry),
		now:     now,
	}
}

// get returns the live entry for key, or ok=false on a miss or expiry.
func (c *dailyCache) get(key string) (*model.PrayerTimes, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || !c.now().Before(entry.expires) {
		return nil, false
	}
	return entry.times, true
}

// put stores the payload for key with expiry now + 24h.
func (c *dailyCache) put(key string, times *model.PrayerTimes) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		times:   times,
		expires: c.now().Add(cacheTTL),
	}
}

// clear drops every entry. Called when the configured location changes, since
// all cached timetables were computed for the old location.
func (c *dailyCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
}
