// Package webhook implements the external-dns webhook provider protocol on
// top of the reconcile engine.
//
// Every JSON payload uses the media type
// application/external.dns.webhook+json;version=1.
//
// # HTTP Endpoints
//
//   - GET  /                : Negotiate, returns the configured domain filters.
//   - GET  /healthz         : Liveness probe.
//   - GET  /records         : Enabled host overrides of the in-scope zones.
//   - POST /records         : Apply a plan.Changes change-set (204 on success).
//   - POST /adjustendpoints : Normalize endpoints before planning.
//
// Failures are reported as 500 with an {"error": "..."} body; malformed
// request bodies as 400. There is no partial-success response.
package webhook
