package reconcile

import "errors"

var (
	// ErrInvalidRecordData reports a record type or enabled flag that is not understood.
	ErrInvalidRecordData = errors.New("invalid record data")
	// ErrMissingCacheEntry reports an update or delete for a record never observed.
	ErrMissingCacheEntry = errors.New("missing cache entry")
)
