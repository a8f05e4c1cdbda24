package webhook

// MediaType is the content type of every webhook payload.
const MediaType = "application/external.dns.webhook+json;version=1"

// NegotiateResponse is returned by the negotiation endpoint.
type NegotiateResponse struct {
	Filters []string `json:"filters"`
}
