package webhook_test

import (
	"testing"

	"unbound-webhook/feature/webhook"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/external-dns/endpoint"
)

func TestAdjustEndpoints(t *testing.T) {
	input := []*endpoint.Endpoint{
		endpoint.NewEndpointWithTTL("a.example.com", "A", 300, "10.0.0.1", "10.0.0.2"),
		endpoint.NewEndpointWithTTL("t.example.com", "TXT", 300, "hello", "world"),
		endpoint.NewEndpointWithTTL("aaaa.example.com", "AAAA", 60, "fd00::1", "fd00::2"),
		endpoint.NewEndpoint("cname.example.com", "CNAME", "target.example.com"),
	}

	out := webhook.AdjustEndpoints(input)

	require.Len(t, out, 2)
	assert.Equal(t, "a.example.com", out[0].DNSName)
	assert.Equal(t, "aaaa.example.com", out[1].DNSName)
	for _, ep := range out {
		assert.Equal(t, endpoint.TTL(0), ep.RecordTTL)
		assert.Len(t, ep.Targets, 1)
	}
	assert.Equal(t, endpoint.Targets{"10.0.0.1"}, out[0].Targets)
	assert.Equal(t, endpoint.Targets{"fd00::1"}, out[1].Targets)

	// The input is left untouched.
	assert.Equal(t, endpoint.TTL(300), input[0].RecordTTL)
	assert.Len(t, input[0].Targets, 2)
}

func TestAdjustEndpoints_ExactTypesOnly(t *testing.T) {
	input := []*endpoint.Endpoint{
		endpoint.NewEndpoint("lower.example.com", "a", "10.0.0.1"),
		endpoint.NewEndpoint("tokens.example.com", "A foo", "10.0.0.2"),
		endpoint.NewEndpoint("v6.example.com", "aaaa", "fd00::1"),
		endpoint.NewEndpoint("ok.example.com", "AAAA", "fd00::2"),
	}

	out := webhook.AdjustEndpoints(input)

	require.Len(t, out, 1)
	assert.Equal(t, "ok.example.com", out[0].DNSName)
}

func TestAdjustEndpoints_Empty(t *testing.T) {
	assert.Empty(t, webhook.AdjustEndpoints(nil))
	assert.Empty(t, webhook.AdjustEndpoints([]*endpoint.Endpoint{nil}))
}
