package reconcile_test

import (
	"testing"

	"unbound-webhook/core/opnsense"
	"unbound-webhook/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/external-dns/endpoint"
)

func TestParseRecordType(t *testing.T) {
	tests := []struct {
		input   string
		want    reconcile.RecordType
		wantErr bool
	}{
		{"A", reconcile.RecordTypeA, false},
		{"AAAA", reconcile.RecordTypeAAAA, false},
		{"a", reconcile.RecordTypeA, false},
		{" AAAA ", reconcile.RecordTypeAAAA, false},
		{"A extra tokens", reconcile.RecordTypeA, false},
		{"MX 10 mail.example.com", "", true},
		{"TXT", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := reconcile.ParseRecordType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, reconcile.ErrInvalidRecordData)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyFromEndpoint_TrimsRootDot(t *testing.T) {
	key, err := reconcile.KeyFromEndpoint(endpoint.NewEndpoint("host.example.com.", "A", "10.0.0.1"))
	require.NoError(t, err)
	assert.Equal(t, reconcile.RecordKey{FQDN: "host.example.com", Type: reconcile.RecordTypeA}, key)
	assert.Equal(t, "[A] host.example.com", key.String())
}

func TestEndpointFromHost(t *testing.T) {
	ep := reconcile.EndpointFromHost(opnsense.HostOverride{
		Hostname: "host",
		Domain:   "example.com",
		RR:       "AAAA",
		Server:   "fd00::1",
	})

	assert.Equal(t, "host.example.com", ep.DNSName)
	assert.Equal(t, "AAAA", ep.RecordType)
	assert.Equal(t, endpoint.Targets{"fd00::1"}, ep.Targets)
}

func TestDesiredRecord_HostOverride(t *testing.T) {
	rec := reconcile.DesiredRecord{
		Hostname:   "host",
		Domain:     "example.com",
		RecordType: "A",
		Target:     "10.0.0.1",
		BackendID:  "id-1",
	}

	assert.Equal(t, opnsense.HostOverride{
		UUID:     "id-1",
		Enabled:  "1",
		Hostname: "host",
		Domain:   "example.com",
		RR:       "A",
		Server:   "10.0.0.1",
	}, rec.HostOverride())
}

func TestOperationReport_Changed(t *testing.T) {
	assert.False(t, reconcile.OperationReport{Requested: 3}.Changed())
	assert.True(t, reconcile.OperationReport{Requested: 3, Processed: 1}.Changed())
}
