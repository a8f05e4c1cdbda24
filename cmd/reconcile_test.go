package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "changes.json")
	body := `{"Create":[{"dnsName":"host.example.com","recordType":"A","targets":["10.0.0.1"]}],"Delete":null}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	changes, err := readChanges(path)
	require.NoError(t, err)
	require.Len(t, changes.Create, 1)
	assert.Equal(t, "host.example.com", changes.Create[0].DNSName)
	assert.Empty(t, changes.Delete)
}

func TestReadChanges_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))

	_, err := readChanges(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
	_, err = readChanges(bad)
	assert.Error(t, err)
}

func TestConfirmChanges(t *testing.T) {
	tests := []struct {
		name  string
		yes   bool
		input string
		want  bool
	}{
		{"Flag", true, "", true},
		{"Typed yes", false, "yes\n", true},
		{"Typed no", false, "no\n", false},
		{"No input", false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prevYes, prevIn, prevOut := yesConfirm, confirmInput, confirmMessage
			t.Cleanup(func() { yesConfirm, confirmInput, confirmMessage = prevYes, prevIn, prevOut })

			yesConfirm = tt.yes
			confirmInput = strings.NewReader(tt.input)
			confirmMessage = &bytes.Buffer{}

			assert.Equal(t, tt.want, confirmChanges())
		})
	}
}
