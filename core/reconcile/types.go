package reconcile

import (
	"fmt"
	"strings"

	"unbound-webhook/core/opnsense"

	"sigs.k8s.io/external-dns/endpoint"
)

// RecordType is a record type the host override backend is managed for.
type RecordType string

const (
	RecordTypeA    RecordType = endpoint.RecordTypeA
	RecordTypeAAAA RecordType = endpoint.RecordTypeAAAA
)

// ParseRecordType reads the first token of a record type string, so backend
// values like "MX 10 mail" are classified by their leading type.
func ParseRecordType(s string) (RecordType, error) {
	token := strings.TrimSpace(s)
	if fields := strings.Fields(token); len(fields) > 0 {
		token = fields[0]
	}
	switch RecordType(strings.ToUpper(token)) {
	case RecordTypeA:
		return RecordTypeA, nil
	case RecordTypeAAAA:
		return RecordTypeAAAA, nil
	default:
		return "", fmt.Errorf("%w: unknown record type %q", ErrInvalidRecordData, s)
	}
}

// RecordKey identifies one backend record.
type RecordKey struct {
	FQDN string
	Type RecordType
}

func (k RecordKey) String() string {
	return fmt.Sprintf("[%s] %s", k.Type, k.FQDN)
}

// KeyFromHost derives the key of a backend row.
func KeyFromHost(h opnsense.HostOverride) (RecordKey, error) {
	rt, err := ParseRecordType(h.RR)
	if err != nil {
		return RecordKey{}, err
	}
	return RecordKey{FQDN: h.Hostname + "." + h.Domain, Type: rt}, nil
}

// KeyFromEndpoint derives the key of a desired-state entry.
func KeyFromEndpoint(ep *endpoint.Endpoint) (RecordKey, error) {
	rt, err := ParseRecordType(ep.RecordType)
	if err != nil {
		return RecordKey{}, err
	}
	return RecordKey{FQDN: strings.TrimSuffix(ep.DNSName, "."), Type: rt}, nil
}

// RecordEntry is the cached summary of a backend row.
type RecordEntry struct {
	BackendID string
	Enabled   bool
}

// EntryFromHost derives the cache entry of a backend row.
func EntryFromHost(h opnsense.HostOverride) (RecordEntry, error) {
	var enabled bool
	switch strings.TrimSpace(h.Enabled) {
	case opnsense.FlagDisabled:
		enabled = false
	case opnsense.FlagEnabled:
		enabled = true
	default:
		return RecordEntry{}, fmt.Errorf("%w: unknown enabled state %q", ErrInvalidRecordData, h.Enabled)
	}
	return RecordEntry{BackendID: h.UUID, Enabled: enabled}, nil
}

// DesiredRecord is a single create, update or delete target resolved against
// the in-scope zones.
type DesiredRecord struct {
	Hostname   string
	Domain     string
	RecordType string
	Target     string
	// BackendID is set once the backend identifier is known.
	BackendID string
}

// FQDN returns the fully qualified name without trailing dot.
func (d DesiredRecord) FQDN() string {
	return d.Hostname + "." + d.Domain
}

// Key derives the record key of the desired record.
func (d DesiredRecord) Key() (RecordKey, error) {
	rt, err := ParseRecordType(d.RecordType)
	if err != nil {
		return RecordKey{}, err
	}
	return RecordKey{FQDN: d.FQDN(), Type: rt}, nil
}

// HostOverride renders the desired record as an enabled backend row.
func (d DesiredRecord) HostOverride() opnsense.HostOverride {
	return opnsense.HostOverride{
		UUID:     d.BackendID,
		Enabled:  opnsense.FlagEnabled,
		Hostname: d.Hostname,
		Domain:   d.Domain,
		RR:       d.RecordType,
		Server:   d.Target,
	}
}

// ChangeSet holds classified actions. Order inside each list follows the request.
type ChangeSet struct {
	Creates []DesiredRecord
	Updates []DesiredRecord
	Deletes []DesiredRecord
}

// IsEmpty returns true if there is nothing to apply.
func (cs *ChangeSet) IsEmpty() bool {
	return len(cs.Creates) == 0 && len(cs.Updates) == 0 && len(cs.Deletes) == 0
}

// Operation names one synchronizer pass.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// OperationReport counts the work done by one synchronizer pass.
type OperationReport struct {
	Operation Operation `json:"operation"`
	Requested uint      `json:"requested"`
	Processed uint      `json:"processed"`
}

// Changed returns true if the pass touched the backend.
func (r OperationReport) Changed() bool {
	return r.Processed > 0
}

// EndpointFromHost converts a backend row into a desired-state entry.
func EndpointFromHost(h opnsense.HostOverride) *endpoint.Endpoint {
	recordType := endpoint.RecordTypeA
	if fields := strings.Fields(h.RR); len(fields) > 0 {
		recordType = fields[0]
	}
	return endpoint.NewEndpoint(h.Hostname+"."+h.Domain, recordType, h.Server)
}
