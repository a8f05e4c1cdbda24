package opnsense

// Zone kinds reported by the local zone listing.
const (
	// ZoneKindTransparent is the only kind host overrides are managed for.
	ZoneKindTransparent = "transparent"
)

// Enabled flag literals used by the API.
const (
	FlagDisabled = "0"
	FlagEnabled  = "1"
)

// Zone is a row of the Unbound local zone listing.
type Zone struct {
	UUID    string `json:"uuid"`
	Enabled string `json:"enabled"`
	// Name is the zone as configured, possibly with a trailing root dot.
	Name string `json:"zone"`
	// Kind is the Unbound local-zone type (transparent, static, redirect, ...).
	Kind string `json:"type"`
}

// HostOverride is a row of the Unbound host override listing.
// UUID is assigned by the firewall and never sent back in request bodies.
type HostOverride struct {
	UUID        string `json:"uuid"`
	Enabled     string `json:"enabled"`
	Hostname    string `json:"hostname"`
	Domain      string `json:"domain"`
	RR          string `json:"rr"`
	Server      string `json:"server"`
	MX          string `json:"mx"`
	MXPrio      string `json:"mxprio"`
	Description string `json:"description"`
}

// hostPayload is the request body shape of add/set calls.
type hostPayload struct {
	Host hostFields `json:"host"`
}

type hostFields struct {
	Enabled     string `json:"enabled"`
	Hostname    string `json:"hostname"`
	Domain      string `json:"domain"`
	RR          string `json:"rr"`
	Server      string `json:"server"`
	MX          string `json:"mx"`
	MXPrio      string `json:"mxprio"`
	Description string `json:"description"`
}

func newHostPayload(h HostOverride) hostPayload {
	return hostPayload{Host: hostFields{
		Enabled:     h.Enabled,
		Hostname:    h.Hostname,
		Domain:      h.Domain,
		RR:          h.RR,
		Server:      h.Server,
		MX:          h.MX,
		MXPrio:      h.MXPrio,
		Description: h.Description,
	}}
}

// searchRequest is the bootgrid search envelope; rowCount -1 returns every row.
type searchRequest struct {
	Current      int               `json:"current"`
	RowCount     int               `json:"rowCount"`
	SearchPhrase string            `json:"searchPhrase"`
	Sort         map[string]string `json:"sort"`
}

func searchAll() searchRequest {
	return searchRequest{Current: 1, RowCount: -1, Sort: map[string]string{}}
}
