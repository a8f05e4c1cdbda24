package opnsense

import (
	"encoding/json"
	"fmt"
)

// response is the closed set of bodies the Unbound API answers with.
type response interface {
	variant() string
}

// addResponse answers addHostOverride.
type addResponse struct {
	Result string `json:"result"`
	UUID   string `json:"uuid"`
}

// listResponse answers any search call; rows are decoded by the caller.
type listResponse struct {
	Rows json.RawMessage `json:"rows"`
}

// resultResponse answers setHostOverride and delHostOverride, and failed adds.
type resultResponse struct {
	Result      string          `json:"result"`
	Validations json.RawMessage `json:"validations,omitempty"`
}

// serviceResponse answers service actions.
type serviceResponse struct {
	Response json.RawMessage `json:"response"`
	Status   string          `json:"status"`
}

func (addResponse) variant() string     { return "add" }
func (listResponse) variant() string    { return "list" }
func (resultResponse) variant() string  { return "result" }
func (serviceResponse) variant() string { return "service" }

// decodeResponse picks the first variant whose discriminating key is present.
// The order matters: a successful add carries both "result" and "uuid".
func decodeResponse(body []byte) (response, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}

	var (
		target response
		err    error
	)
	switch {
	case has(fields, "uuid"):
		var r addResponse
		err = json.Unmarshal(body, &r)
		target = r
	case has(fields, "rows"):
		var r listResponse
		err = json.Unmarshal(body, &r)
		target = r
	case has(fields, "result"):
		var r resultResponse
		err = json.Unmarshal(body, &r)
		target = r
	case has(fields, "response"), has(fields, "status"):
		var r serviceResponse
		err = json.Unmarshal(body, &r)
		target = r
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedResponse, truncate(body))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return target, nil
}

func has(fields map[string]json.RawMessage, key string) bool {
	v, ok := fields[key]
	return ok && string(v) != "null"
}

func truncate(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
