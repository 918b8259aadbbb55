// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: validates the X-API-Key header against the configured key.
//   - RayID: tags every request with a Request ID (RayID), stored in the context
//     locals and echoed in the X-Ray-ID response header for tracing.
//
// Both are registered globally by the start command.
package middleware
