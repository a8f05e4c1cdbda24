package mocks

import (
	"unbound-webhook/core/opnsense"
	"unbound-webhook/core/reconcile"

	"github.com/stretchr/testify/mock"
)

// RecordCache is a mock implementation of reconcile.RecordCache
type RecordCache struct {
	mock.Mock
}

func (m *RecordCache) Get(key reconcile.RecordKey) (reconcile.RecordEntry, bool) {
	args := m.Called(key)
	return args.Get(0).(reconcile.RecordEntry), args.Bool(1)
}

func (m *RecordCache) Insert(host opnsense.HostOverride) (reconcile.RecordEntry, bool, error) {
	args := m.Called(host)
	return args.Get(0).(reconcile.RecordEntry), args.Bool(1), args.Error(2)
}

func (m *RecordCache) Remove(host opnsense.HostOverride) error {
	args := m.Called(host)
	return args.Error(0)
}

func (m *RecordCache) Clear() {
	m.Called()
}

func (m *RecordCache) Len() int {
	args := m.Called()
	return args.Int(0)
}

// ZoneCache is a mock implementation of reconcile.ZoneCache
type ZoneCache struct {
	mock.Mock
}

func (m *ZoneCache) Extend(zones []string) {
	m.Called(zones)
}

func (m *ZoneCache) Values() []string {
	args := m.Called()
	if zones, ok := args.Get(0).([]string); ok {
		return zones
	}
	return nil
}
