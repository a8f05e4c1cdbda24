package reconcile

import (
	"sort"

	"unbound-webhook/core/opnsense"
)

// RecordCache indexes backend rows by record key.
// Implementations are not safe for concurrent use; RecordStore guards them.
type RecordCache interface {
	// Get returns a copy of the entry cached for key.
	Get(key RecordKey) (RecordEntry, bool)
	// Insert derives key and entry from a backend row, replacing any existing
	// entry. It returns the previous entry when there was one.
	Insert(host opnsense.HostOverride) (RecordEntry, bool, error)
	// Remove drops the entry of a backend row. Unknown keys are ignored.
	Remove(host opnsense.HostOverride) error
	// Clear drops every entry.
	Clear()
	// Len returns the number of cached entries.
	Len() int
}

// MemoryRecordCache is the default map backed RecordCache.
type MemoryRecordCache struct {
	entries map[RecordKey]RecordEntry
}

// NewMemoryRecordCache creates an empty record cache.
func NewMemoryRecordCache() *MemoryRecordCache {
	return &MemoryRecordCache{entries: make(map[RecordKey]RecordEntry)}
}

func (c *MemoryRecordCache) Get(key RecordKey) (RecordEntry, bool) {
	entry, ok := c.entries[key]
	return entry, ok
}

func (c *MemoryRecordCache) Insert(host opnsense.HostOverride) (RecordEntry, bool, error) {
	key, err := KeyFromHost(host)
	if err != nil {
		return RecordEntry{}, false, err
	}
	entry, err := EntryFromHost(host)
	if err != nil {
		return RecordEntry{}, false, err
	}
	prev, existed := c.entries[key]
	c.entries[key] = entry
	return prev, existed, nil
}

func (c *MemoryRecordCache) Remove(host opnsense.HostOverride) error {
	key, err := KeyFromHost(host)
	if err != nil {
		return err
	}
	delete(c.entries, key)
	return nil
}

func (c *MemoryRecordCache) Clear() {
	clear(c.entries)
}

func (c *MemoryRecordCache) Len() int {
	return len(c.entries)
}

// ZoneCache holds the set of in-scope zone names.
type ZoneCache interface {
	// Extend adds zones to the set.
	Extend(zones []string)
	// Values returns the zones in a stable order.
	Values() []string
}

// MemoryZoneCache is the default set backed ZoneCache.
type MemoryZoneCache struct {
	zones map[string]struct{}
}

// NewMemoryZoneCache creates an empty zone cache.
func NewMemoryZoneCache() *MemoryZoneCache {
	return &MemoryZoneCache{zones: make(map[string]struct{})}
}

func (c *MemoryZoneCache) Extend(zones []string) {
	for _, z := range zones {
		c.zones[z] = struct{}{}
	}
}

func (c *MemoryZoneCache) Values() []string {
	values := make([]string, 0, len(c.zones))
	for z := range c.zones {
		values = append(values, z)
	}
	sort.Strings(values)
	return values
}
