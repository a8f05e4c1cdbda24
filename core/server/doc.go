// Package server holds the HTTP server configuration.
//
// The webhook is meant to run as a sidecar next to external-dns, so it binds
// to 127.0.0.1:8800 unless told otherwise. When ApiKey is set every request
// must carry it in the X-API-Key header.
package server
