package webhook

import (
	"context"

	"unbound-webhook/core/reconcile"

	"go.uber.org/zap"
	"sigs.k8s.io/external-dns/endpoint"
	"sigs.k8s.io/external-dns/plan"
)

// Service exposes the reconciliation engine to the webhook handler.
type Service struct {
	engine *reconcile.Engine
	logger *zap.Logger
}

// NewService creates a new webhook service.
func NewService(engine *reconcile.Engine, logger *zap.Logger) *Service {
	return &Service{engine: engine, logger: logger}
}

// Negotiate returns the configured domain filters.
// The resolved zone set may be narrower than what is reported here.
func (s *Service) Negotiate() NegotiateResponse {
	filters := s.engine.DomainFilters()
	if filters == nil {
		filters = []string{}
	}
	return NegotiateResponse{Filters: filters}
}

// Records returns the enabled, in-scope records.
func (s *Service) Records(ctx context.Context) ([]*endpoint.Endpoint, error) {
	return s.engine.ListRecords(ctx)
}

// ApplyChanges reconciles the backend towards changes.
func (s *Service) ApplyChanges(ctx context.Context, changes *plan.Changes) error {
	_, err := s.engine.ApplyChanges(ctx, changes)
	return err
}

// AdjustEndpoints normalizes a desired-state list.
func (s *Service) AdjustEndpoints(endpoints []*endpoint.Endpoint) []*endpoint.Endpoint {
	return AdjustEndpoints(endpoints)
}
