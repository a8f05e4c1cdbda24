package webhook

import "sigs.k8s.io/external-dns/endpoint"

// AdjustEndpoints keeps A and AAAA entries only, clears their TTL and keeps
// their first target. Order is preserved and the input is not modified.
func AdjustEndpoints(endpoints []*endpoint.Endpoint) []*endpoint.Endpoint {
	out := make([]*endpoint.Endpoint, 0, len(endpoints))
	for _, ep := range endpoints {
		if ep == nil {
			continue
		}
		if ep.RecordType != endpoint.RecordTypeA && ep.RecordType != endpoint.RecordTypeAAAA {
			continue
		}

		adjusted := ep.DeepCopy()
		adjusted.RecordTTL = 0
		if len(adjusted.Targets) > 1 {
			adjusted.Targets = adjusted.Targets[:1]
		}
		out = append(out, adjusted)
	}
	return out
}
