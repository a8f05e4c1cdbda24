// Package reconcile keeps a local view of the Unbound host overrides and
// drives them towards the desired state sent by external-dns.
//
// # Caches
//
// Two caches back every request. The record cache maps a RecordKey (fqdn and
// record type) to the backend id and enabled flag of the row last listed for
// it. It is cleared and refilled on every listing, so it never holds more
// than the most recent listing of the in-scope zones. The zone cache holds the
// in-scope zone names and is filled once per process.
//
// Both caches are reached through lock guarded stores (RecordStore,
// ZoneStore). Record operations lock per call, not per change-set.
//
// # Change-sets
//
// Classify resolves names against the zone set and rewrites creates:
//
//	no cache entry        -> create
//	enabled cache entry   -> dropped
//	disabled cache entry  -> update with the cached backend id
//
// The Synchronizer then runs create, update and delete passes. The first
// failure aborts the change-set without rollback. The Unbound service is
// restarted once when any pass processed a record.
package reconcile
