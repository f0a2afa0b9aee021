// Package obs is an HTTP client for the build service API.
//
// Client.APIRequest is the single capability the metadata core depends on:
// given a route, method, optional XML payload and optional query params it
// performs an authenticated request and returns the response, or fails with
// an error.
//
// # Error Handling
//
// Non-2xx responses become *APIError. When the service returns its usual
// <status code="..."><summary>...</summary></status> body, the code and
// summary are carried on the error. Use IsNotFound, IsUnauthorized and
// IsConflict to classify failures.
//
// Network errors and 5xx responses are retried with exponential backoff up
// to Config.MaxRetries times. Client errors (4xx) are never retried. The
// request context bounds both the attempts and the waits between them.
//
// # Security
//
//   - HTTP basic authentication
//   - Password is not logged or serialized to JSON
//   - Configurable TLS verification for dev/test environments
package obs
