// Package opnsense provides a client for the OPNsense Unbound host override API.
//
// It wraps the REST endpoints under api/unbound/ that the webhook needs and hides
// the transport details (basic auth, TLS trust, timeouts) behind the Client
// interface, so the reconcile engine can be unit tested with the testify double
// in core/opnsense/mocks.
//
// # Operations
//
//   - ListZones: Lists the Unbound local zones and their kinds.
//   - SearchHostOverrides: Lists every host override row.
//   - AddHostOverride: Creates a host override and returns its UUID.
//   - SetHostOverride: Replaces an existing host override by UUID.
//   - DelHostOverride: Deletes a host override by UUID.
//   - RestartService: Restarts Unbound so changes take effect.
//
// # Responses
//
// Every endpoint answers with a JSON object whose shape depends on the call.
// Responses are decoded structurally into a closed set of variants; a body that
// matches none of them is reported as ErrUnexpectedResponse.
//
// # Usage
//
//	client, err := opnsense.NewClient(cfg.OPNsense)
//	rows, err := client.SearchHostOverrides(ctx)
package opnsense
