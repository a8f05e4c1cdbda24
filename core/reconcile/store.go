package reconcile

import (
	"context"
	"sync"

	"unbound-webhook/core/opnsense"
)

// RecordStore is the shared, lock guarded owner of a RecordCache.
// Each method holds the lock for its own duration only; a reconciliation is a
// sequence of such calls, so concurrent change-sets may interleave.
type RecordStore struct {
	mu    sync.RWMutex
	cache RecordCache
}

// NewRecordStore wraps cache for shared use.
func NewRecordStore(cache RecordCache) *RecordStore {
	return &RecordStore{cache: cache}
}

// Lookup returns a copy of the cached entry for key.
func (s *RecordStore) Lookup(key RecordKey) (RecordEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache.Get(key)
}

// Replace clears the cache and folds in rows, which must already be filtered
// to the in-scope zones. An invalid row aborts the rebuild.
func (s *RecordStore) Replace(rows []opnsense.HostOverride) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Clear()
	for _, row := range rows {
		if _, _, err := s.cache.Insert(row); err != nil {
			return err
		}
	}
	return nil
}

// Insert adds or replaces the entry of a backend row.
func (s *RecordStore) Insert(host opnsense.HostOverride) (RecordEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Insert(host)
}

// Remove drops the entry of a backend row.
func (s *RecordStore) Remove(host opnsense.HostOverride) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Remove(host)
}

// Len returns the number of cached entries.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache.Len()
}

// ZoneStore is the shared, lock guarded owner of a ZoneCache.
type ZoneStore struct {
	mu    sync.Mutex
	cache ZoneCache
}

// NewZoneStore wraps cache for shared use.
func NewZoneStore(cache ZoneCache) *ZoneStore {
	return &ZoneStore{cache: cache}
}

// GetOrLoad returns the cached zones, calling load only while the cache is
// empty. The lock is held exclusively for the whole call, hits included, so
// concurrent first callers wait for a single load.
func (s *ZoneStore) GetOrLoad(ctx context.Context, load func(context.Context) ([]string, error)) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cached := s.cache.Values(); len(cached) > 0 {
		return cached, nil
	}

	zones, err := load(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Extend(zones)
	return s.cache.Values(), nil
}
