package reconcile

import (
	"context"
	"fmt"
	"strings"

	"unbound-webhook/core/opnsense"

	"github.com/miekg/dns"
	"go.uber.org/zap"
)

// ZoneResolver turns the backend zone list into the in-scope zone set.
type ZoneResolver struct {
	client  opnsense.Client
	store   *ZoneStore
	filters []string
	logger  *zap.Logger
}

// NewZoneResolver creates a resolver backed by store.
func NewZoneResolver(client opnsense.Client, store *ZoneStore, filters []string, logger *zap.Logger) *ZoneResolver {
	return &ZoneResolver{
		client:  client,
		store:   store,
		filters: filters,
		logger:  logger,
	}
}

// Filters returns the configured domain filters.
func (r *ZoneResolver) Filters() []string {
	out := make([]string, len(r.filters))
	copy(out, r.filters)
	return out
}

// Resolve returns the cached zone set, fetching it from the backend on the
// first call only.
func (r *ZoneResolver) Resolve(ctx context.Context) ([]string, error) {
	return r.store.GetOrLoad(ctx, r.load)
}

func (r *ZoneResolver) load(ctx context.Context) ([]string, error) {
	zones, err := r.client.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	resolved := FilterZones(zones, r.filters)
	r.logger.Info("Resolved zones",
		zap.Int("backend", len(zones)),
		zap.Strings("zones", resolved),
	)
	return resolved, nil
}

// FilterZones keeps transparent zones matching filters, without trailing dot.
// An empty filter list matches every zone.
func FilterZones(zones []opnsense.Zone, filters []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, z := range zones {
		if !strings.EqualFold(strings.TrimSpace(z.Kind), opnsense.ZoneKindTransparent) {
			continue
		}
		name := strings.TrimSuffix(strings.TrimSpace(z.Name), ".")
		if name == "" || !MatchesFilters(name, filters) {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// MatchesFilters reports whether zone equals or lies below one of filters.
// Filters may carry a leading dot.
func MatchesFilters(zone string, filters []string) bool {
	active := 0
	for _, f := range filters {
		f = strings.TrimPrefix(strings.TrimSpace(f), ".")
		if f == "" {
			continue
		}
		active++
		if dns.IsSubDomain(dns.Fqdn(f), dns.Fqdn(zone)) {
			return true
		}
	}
	return active == 0
}
