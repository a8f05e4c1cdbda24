package opnsense

import (
	"errors"
	"fmt"
	"net/url"
)

// Config holds configuration for the OPNsense API client.
type Config struct {
	// BaseURL is the root URL of the firewall (e.g., https://192.168.1.1/).
	BaseURL string `mapstructure:"base_url" default:""`
	// Key is the API key used as basic auth user.
	Key string `mapstructure:"key" default:""`
	// Secret is the API secret used as basic auth password.
	Secret string `mapstructure:"secret" default:""`
	// AllowInvalidCerts disables TLS certificate verification.
	AllowInvalidCerts bool `mapstructure:"allow_invalid_certs" default:"false"`
	// CertificateBundle is a PEM bundle of extra trusted root certificates.
	CertificateBundle string `mapstructure:"certificate_bundle" default:""`
	// TimeoutSeconds bounds connection setup, TLS handshake and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Validate checks that the configuration can be used to build a client.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("opnsense base_url is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid opnsense base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid opnsense base_url scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid opnsense base_url %q: missing host", c.BaseURL)
	}
	return nil
}
