package reconcile

import (
	"strings"

	"github.com/miekg/dns"
	"go.uber.org/zap"
	"sigs.k8s.io/external-dns/endpoint"
	"sigs.k8s.io/external-dns/plan"
)

// ResolveDesired splits an endpoint name on its first dot and keeps it only
// when the remainder is one of zones. ok is false for out-of-scope names.
func ResolveDesired(ep *endpoint.Endpoint, zones []string) (DesiredRecord, bool) {
	if ep == nil {
		return DesiredRecord{}, false
	}
	name := strings.TrimSuffix(ep.DNSName, ".")
	if _, ok := dns.IsDomainName(name); !ok {
		return DesiredRecord{}, false
	}
	hostname, domain, found := strings.Cut(name, ".")
	if !found || hostname == "" {
		return DesiredRecord{}, false
	}
	if !containsZone(zones, domain) {
		return DesiredRecord{}, false
	}

	var target string
	if len(ep.Targets) > 0 {
		target = ep.Targets[0]
	}
	return DesiredRecord{
		Hostname:   hostname,
		Domain:     domain,
		RecordType: ep.RecordType,
		Target:     target,
	}, true
}

// containsZone matches exactly so the scope check agrees with RecordKey,
// which keeps the original casing.
func containsZone(zones []string, domain string) bool {
	for _, z := range zones {
		if z == domain {
			return true
		}
	}
	return false
}

// Classifier partitions orchestrator changes into backend actions.
type Classifier struct {
	records *RecordStore
	logger  *zap.Logger
}

// NewClassifier creates a classifier reading from records.
func NewClassifier(records *RecordStore, logger *zap.Logger) *Classifier {
	return &Classifier{records: records, logger: logger}
}

// Classify resolves changes against zones. Creates already satisfied by an
// enabled cache entry are dropped; creates matching a disabled entry become
// updates carrying the cached backend id. UpdateOld is ignored.
func (c *Classifier) Classify(changes *plan.Changes, zones []string) (*ChangeSet, error) {
	cs := &ChangeSet{}
	if changes == nil {
		return cs, nil
	}

	for _, ep := range changes.Create {
		rec, ok := ResolveDesired(ep, zones)
		if !ok {
			continue
		}
		key, err := rec.Key()
		if err != nil {
			return nil, err
		}
		entry, found := c.records.Lookup(key)
		switch {
		case !found:
			cs.Creates = append(cs.Creates, rec)
		case entry.Enabled:
			c.logger.Debug("Create already satisfied", zap.Stringer("key", key))
		default:
			c.logger.Debug("Re-enabling disabled record", zap.Stringer("key", key), zap.String("backend_id", entry.BackendID))
			rec.BackendID = entry.BackendID
			cs.Updates = append(cs.Updates, rec)
		}
	}

	for _, ep := range changes.UpdateNew {
		if rec, ok := ResolveDesired(ep, zones); ok {
			cs.Updates = append(cs.Updates, rec)
		}
	}

	for _, ep := range changes.Delete {
		if rec, ok := ResolveDesired(ep, zones); ok {
			cs.Deletes = append(cs.Deletes, rec)
		}
	}

	return cs, nil
}
