// Package plans exposes floor plan parsing to the command line and the HTTP API.
//
// Plans come from three places: local files, request bodies and objects in the
// configured bucket. Every source is normalised into a floorplan.Grid and handed
// to a fresh floorplan.Scanner, so concurrent requests never share scan state.
//
// # Components
//
//   - Service: loads plans, runs the scanner and builds models.Report values.
//     It also lists and uploads plans in object storage.
//   - Handler: exposes the HTTP endpoints below.
//   - Feature: registers the handler with the core/loader Manager.
//
// # HTTP Endpoints
//
//   - GET  /floorplans             : list plan keys under ?prefix=
//   - POST /floorplans/parse       : parse the plain-text request body
//   - GET  /floorplans/{key}       : parse a plan stored in the bucket
//
// The parse endpoints accept chair_types and separators query parameters that
// replace the configured legend for one request.
package plans
