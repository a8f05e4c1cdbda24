// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth: Optional API key validation (X-API-Key). Disabled when no key is configured.
//   - RayID: Tags every request with a unique Request ID (RayID), stored in the
//     context locals and echoed in the X-Ray-ID response header for tracing.
//
// Both are registered globally in the start command.
package middleware
