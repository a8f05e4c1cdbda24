package opnsense

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client defines the interface for Unbound host override operations.
type Client interface {
	// ListZones returns every Unbound local zone.
	ListZones(ctx context.Context) ([]Zone, error)
	// SearchHostOverrides returns every host override row.
	SearchHostOverrides(ctx context.Context) ([]HostOverride, error)
	// AddHostOverride creates a host override and returns the assigned UUID.
	AddHostOverride(ctx context.Context, host HostOverride) (string, error)
	// SetHostOverride replaces the host override identified by uuid.
	SetHostOverride(ctx context.Context, uuid string, host HostOverride) error
	// DelHostOverride deletes the host override identified by uuid.
	DelHostOverride(ctx context.Context, uuid string) error
	// RestartService restarts Unbound.
	RestartService(ctx context.Context) error
}

const (
	pathSearchLocalZone    = "settings/searchLocalZone/"
	pathSearchHostOverride = "settings/searchHostOverride/"
	pathAddHostOverride    = "settings/addHostOverride/"
	pathSetHostOverride    = "settings/setHostOverride/"
	pathDelHostOverride    = "settings/delHostOverride/"
	pathServiceRestart     = "service/restart/"

	resultFailed = "failed"

	// maxResponseSize caps a buffered API response body.
	maxResponseSize = 8 << 20
)

type httpClient struct {
	http    *http.Client
	baseURL *url.URL
	key     string
	secret  string
}

// NewClient creates a new Unbound API client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid opnsense base_url: %w", err)
	}
	base = base.JoinPath("api", "unbound", "/")

	tlsConfig, err := buildTLSConfig(cfg)
	if err != nil {
		return nil, err
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig:       tlsConfig,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		http:    &http.Client{Transport: transport},
		baseURL: base,
		key:     cfg.Key,
		secret:  cfg.Secret,
	}, nil
}

func buildTLSConfig(cfg Config) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: cfg.AllowInvalidCerts, //nolint:gosec // opt-in for self-signed firewalls
	}
	if strings.TrimSpace(cfg.CertificateBundle) == "" {
		return tlsConfig, nil
	}

	pool, err := x509.SystemCertPool()
	if err != nil || pool == nil {
		pool = x509.NewCertPool()
	}
	if !pool.AppendCertsFromPEM([]byte(cfg.CertificateBundle)) {
		return nil, errors.New("opnsense certificate_bundle contains no valid PEM certificates")
	}
	tlsConfig.RootCAs = pool
	return tlsConfig, nil
}

// ListZones implements Client.
func (c *httpClient) ListZones(ctx context.Context) ([]Zone, error) {
	rows, err := c.search(ctx, pathSearchLocalZone)
	if err != nil {
		return nil, err
	}
	var zones []Zone
	if err := json.Unmarshal(rows, &zones); err != nil {
		return nil, &RequestError{Op: pathSearchLocalZone, Err: fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)}
	}
	return zones, nil
}

// SearchHostOverrides implements Client.
func (c *httpClient) SearchHostOverrides(ctx context.Context) ([]HostOverride, error) {
	rows, err := c.search(ctx, pathSearchHostOverride)
	if err != nil {
		return nil, err
	}
	var hosts []HostOverride
	if err := json.Unmarshal(rows, &hosts); err != nil {
		return nil, &RequestError{Op: pathSearchHostOverride, Err: fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)}
	}
	return hosts, nil
}

// AddHostOverride implements Client.
func (c *httpClient) AddHostOverride(ctx context.Context, host HostOverride) (string, error) {
	res, err := c.post(ctx, pathAddHostOverride, newHostPayload(host))
	if err != nil {
		return "", err
	}
	switch r := res.(type) {
	case addResponse:
		if r.UUID == "" {
			return "", &RequestError{Op: pathAddHostOverride, Err: errors.New("empty uuid in response")}
		}
		return r.UUID, nil
	case resultResponse:
		return "", &RequestError{Op: pathAddHostOverride, Err: rejected(r)}
	default:
		return "", unexpected(pathAddHostOverride, res)
	}
}

// SetHostOverride implements Client.
func (c *httpClient) SetHostOverride(ctx context.Context, uuid string, host HostOverride) error {
	op := pathSetHostOverride + url.PathEscape(uuid)
	res, err := c.post(ctx, op, newHostPayload(host))
	if err != nil {
		return err
	}
	return expectResult(op, res)
}

// DelHostOverride implements Client.
func (c *httpClient) DelHostOverride(ctx context.Context, uuid string) error {
	op := pathDelHostOverride + url.PathEscape(uuid)
	res, err := c.post(ctx, op, nil)
	if err != nil {
		return err
	}
	return expectResult(op, res)
}

// RestartService implements Client.
func (c *httpClient) RestartService(ctx context.Context) error {
	res, err := c.post(ctx, pathServiceRestart, nil)
	if err != nil {
		return err
	}
	if _, ok := res.(serviceResponse); !ok {
		return unexpected(pathServiceRestart, res)
	}
	return nil
}

func (c *httpClient) search(ctx context.Context, op string) (json.RawMessage, error) {
	res, err := c.post(ctx, op, searchAll())
	if err != nil {
		return nil, err
	}
	list, ok := res.(listResponse)
	if !ok {
		return nil, unexpected(op, res)
	}
	return list.Rows, nil
}

// post sends a JSON body (or none when payload is nil) and decodes the response.
func (c *httpClient) post(ctx context.Context, op string, payload any) (response, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, &RequestError{Op: op, Err: err}
		}
		body = bytes.NewReader(b)
	}

	target := c.baseURL.String() + op
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, body)
	if err != nil {
		return nil, &RequestError{Op: op, Err: err}
	}
	req.SetBasicAuth(c.key, c.secret)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, &RequestError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	if len(raw) > maxResponseSize {
		return nil, &RequestError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("response exceeds %d bytes", maxResponseSize)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(truncate(raw))}
	}

	res, err := decodeResponse(raw)
	if err != nil {
		return nil, &RequestError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	return res, nil
}

func expectResult(op string, res response) error {
	r, ok := res.(resultResponse)
	if !ok {
		return unexpected(op, res)
	}
	if strings.EqualFold(r.Result, resultFailed) {
		return &RequestError{Op: op, Err: rejected(r)}
	}
	return nil
}

func rejected(r resultResponse) error {
	if len(r.Validations) > 0 {
		return fmt.Errorf("result %q: validations %s", r.Result, r.Validations)
	}
	return fmt.Errorf("result %q", r.Result)
}

func unexpected(op string, res response) error {
	return &RequestError{Op: op, Err: fmt.Errorf("%w: got %s response", ErrUnexpectedResponse, res.variant())}
}
