// Package client talks to the travel plans resource API.
//
// # Overview
//
// APIClient issues plain JSON-over-HTTP requests against two resource kinds,
// accounts (/users) and travel plans (/travel-plans). Each kind is reached
// through a Resource handle offering List, Get, Create, Update and Delete.
// Response bodies are handed back raw: callers run them through the
// validate package before trusting them.
//
// # Error Handling
//
// Failures are typed so callers can match with errors.Is:
//
//   - ErrRequestFailed: the server answered with a non-2xx status. The
//     concrete error is a *RequestError carrying the status code.
//   - ErrTransportUnavailable: no usable response (connection refused,
//     timeout, cancelled context, truncated body).
//
// Nothing is retried. Every call issues exactly one request.
package client
