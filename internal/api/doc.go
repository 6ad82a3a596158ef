// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between external clients and
// the internal application services, translating HTTP concerns to business
// operations and service errors back to HTTP status codes.
//
// Sub-packages:
//   - shared: JSON response and request helpers plus trace ID context helpers
//   - middleware: the trace middleware that scopes a logger to each request
package api
