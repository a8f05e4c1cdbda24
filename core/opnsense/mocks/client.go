package mocks

import (
	"context"

	"unbound-webhook/core/opnsense"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of opnsense.Client
type Client struct {
	mock.Mock
}

func (m *Client) ListZones(ctx context.Context) ([]opnsense.Zone, error) {
	args := m.Called(ctx)
	if zones, ok := args.Get(0).([]opnsense.Zone); ok {
		return zones, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) SearchHostOverrides(ctx context.Context) ([]opnsense.HostOverride, error) {
	args := m.Called(ctx)
	if rows, ok := args.Get(0).([]opnsense.HostOverride); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) AddHostOverride(ctx context.Context, host opnsense.HostOverride) (string, error) {
	args := m.Called(ctx, host)
	return args.String(0), args.Error(1)
}

func (m *Client) SetHostOverride(ctx context.Context, uuid string, host opnsense.HostOverride) error {
	args := m.Called(ctx, uuid, host)
	return args.Error(0)
}

func (m *Client) DelHostOverride(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

func (m *Client) RestartService(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
