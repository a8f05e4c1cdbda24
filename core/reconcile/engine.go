package reconcile

import (
	"context"
	"fmt"

	"unbound-webhook/core/opnsense"

	"go.uber.org/zap"
	"sigs.k8s.io/external-dns/endpoint"
	"sigs.k8s.io/external-dns/plan"
)

// Engine wires zone resolution, classification and synchronization around
// one shared pair of stores.
type Engine struct {
	client     opnsense.Client
	zones      *ZoneResolver
	records    *RecordStore
	classifier *Classifier
	syncer     *Synchronizer
	logger     *zap.Logger
}

// NewEngine creates an engine over the given stores.
func NewEngine(client opnsense.Client, cfg Config, records *RecordStore, zones *ZoneStore, logger *zap.Logger) *Engine {
	return &Engine{
		client:     client,
		zones:      NewZoneResolver(client, zones, cfg.DomainFilters, logger),
		records:    records,
		classifier: NewClassifier(records, logger),
		syncer:     NewSynchronizer(client, records, logger),
		logger:     logger,
	}
}

// NewMemoryEngine creates an engine with fresh in-memory caches.
func NewMemoryEngine(client opnsense.Client, cfg Config, logger *zap.Logger) *Engine {
	return NewEngine(client, cfg,
		NewRecordStore(NewMemoryRecordCache()),
		NewZoneStore(NewMemoryZoneCache()),
		logger,
	)
}

// DomainFilters returns the configured domain filters.
func (e *Engine) DomainFilters() []string {
	return e.zones.Filters()
}

// Zones returns the in-scope zone set.
func (e *Engine) Zones(ctx context.Context) ([]string, error) {
	return e.zones.Resolve(ctx)
}

// ListRecords lists the backend, rebuilds the record cache from the in-scope
// rows and returns the enabled ones as endpoints.
func (e *Engine) ListRecords(ctx context.Context) ([]*endpoint.Endpoint, error) {
	zones, err := e.zones.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := e.client.SearchHostOverrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("search host overrides: %w", err)
	}

	inScope := make([]opnsense.HostOverride, 0, len(rows))
	for _, row := range rows {
		if containsZone(zones, row.Domain) {
			inScope = append(inScope, row)
		}
	}

	if err := e.records.Replace(inScope); err != nil {
		return nil, err
	}

	endpoints := make([]*endpoint.Endpoint, 0, len(inScope))
	for _, row := range inScope {
		if row.Enabled != opnsense.FlagEnabled {
			continue
		}
		endpoints = append(endpoints, EndpointFromHost(row))
	}

	e.logger.Debug("Listed records",
		zap.Int("backend", len(rows)),
		zap.Int("in_scope", len(inScope)),
		zap.Int("enabled", len(endpoints)),
	)
	return endpoints, nil
}

// Plan classifies changes without touching the backend records.
func (e *Engine) Plan(ctx context.Context, changes *plan.Changes) (*ChangeSet, error) {
	zones, err := e.zones.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return e.classifier.Classify(changes, zones)
}

// Apply runs a classified change-set.
func (e *Engine) Apply(ctx context.Context, cs *ChangeSet) ([]OperationReport, error) {
	return e.syncer.Apply(ctx, cs)
}

// ApplyChanges classifies and applies changes.
func (e *Engine) ApplyChanges(ctx context.Context, changes *plan.Changes) ([]OperationReport, error) {
	cs, err := e.Plan(ctx, changes)
	if err != nil {
		return nil, err
	}
	return e.Apply(ctx, cs)
}
