package opnsense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		variant string
	}{
		{"Add", `{"result":"saved","uuid":"abc"}`, "add"},
		{"List", `{"rows":[],"total":0}`, "list"},
		{"Result", `{"result":"deleted"}`, "result"},
		{"FailedAdd", `{"result":"failed","validations":{"host.domain":"required"}}`, "result"},
		{"ServiceResponse", `{"response":"OK"}`, "service"},
		{"ServiceStatus", `{"status":"ok"}`, "service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := decodeResponse([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.variant, res.variant())
		})
	}
}

func TestDecodeResponse_Unexpected(t *testing.T) {
	for _, body := range []string{`{}`, `{"uuid":null}`, `[]`, `not json`} {
		_, err := decodeResponse([]byte(body))
		assert.ErrorIs(t, err, ErrUnexpectedResponse, body)
	}
}
