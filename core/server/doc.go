// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure for the listen port, the API key protecting every
// route and the maximum plan upload size.
//
// # Usage
//
// This package is embedded by core/config and read by cmd/start.go.
package server
