package reconcile

import (
	"context"
	"fmt"

	"unbound-webhook/core/opnsense"

	"go.uber.org/zap"
)

// Synchronizer applies a ChangeSet to the backend and keeps the record store
// in step with every successful call.
type Synchronizer struct {
	client  opnsense.Client
	records *RecordStore
	logger  *zap.Logger
}

// NewSynchronizer creates a synchronizer.
func NewSynchronizer(client opnsense.Client, records *RecordStore, logger *zap.Logger) *Synchronizer {
	return &Synchronizer{client: client, records: records, logger: logger}
}

// Apply runs the create, update and delete passes in order. The first error
// aborts the remaining work; calls already made are not rolled back. When all
// passes succeed and at least one record was processed, the resolver service
// is restarted once. A failed restart is logged only.
func (s *Synchronizer) Apply(ctx context.Context, cs *ChangeSet) ([]OperationReport, error) {
	passes := []struct {
		op    Operation
		items []DesiredRecord
		apply func(context.Context, DesiredRecord) error
	}{
		{OperationCreate, cs.Creates, s.create},
		{OperationUpdate, cs.Updates, s.update},
		{OperationDelete, cs.Deletes, s.delete},
	}

	reports := make([]OperationReport, 0, len(passes))
	changed := false
	for _, p := range passes {
		report := OperationReport{Operation: p.op, Requested: uint(len(p.items))}
		for _, rec := range p.items {
			if err := p.apply(ctx, rec); err != nil {
				s.logger.Error("Synchronization aborted",
					zap.String("operation", string(p.op)),
					zap.String("fqdn", rec.FQDN()),
					zap.Uint("processed", report.Processed),
					zap.Error(err),
				)
				return append(reports, report), err
			}
			report.Processed++
		}
		s.logger.Info("Synchronization pass finished",
			zap.String("operation", string(report.Operation)),
			zap.Uint("requested", report.Requested),
			zap.Uint("processed", report.Processed),
		)
		changed = changed || report.Changed()
		reports = append(reports, report)
	}

	if changed {
		if err := s.client.RestartService(ctx); err != nil {
			s.logger.Warn("Failed to restart resolver service", zap.Error(err))
		}
	}
	return reports, nil
}

func (s *Synchronizer) create(ctx context.Context, rec DesiredRecord) error {
	host := rec.HostOverride()
	id, err := s.client.AddHostOverride(ctx, host)
	if err != nil {
		return fmt.Errorf("create %s: %w", rec.FQDN(), err)
	}
	host.UUID = id
	if _, _, err := s.records.Insert(host); err != nil {
		return err
	}
	return nil
}

func (s *Synchronizer) update(ctx context.Context, rec DesiredRecord) error {
	key, err := rec.Key()
	if err != nil {
		return err
	}
	entry, ok := s.records.Lookup(key)
	if !ok {
		return fmt.Errorf("%w: update %s", ErrMissingCacheEntry, key)
	}
	host := rec.HostOverride()
	if err := s.client.SetHostOverride(ctx, entry.BackendID, host); err != nil {
		return fmt.Errorf("update %s: %w", rec.FQDN(), err)
	}
	host.UUID = entry.BackendID
	if _, _, err := s.records.Insert(host); err != nil {
		return err
	}
	return nil
}

func (s *Synchronizer) delete(ctx context.Context, rec DesiredRecord) error {
	key, err := rec.Key()
	if err != nil {
		return err
	}
	entry, ok := s.records.Lookup(key)
	if !ok {
		return fmt.Errorf("%w: delete %s", ErrMissingCacheEntry, key)
	}
	if err := s.client.DelHostOverride(ctx, entry.BackendID); err != nil {
		return fmt.Errorf("delete %s: %w", rec.FQDN(), err)
	}
	return s.records.Remove(rec.HostOverride())
}
