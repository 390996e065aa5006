// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting the verification endpoints.
//   - rayid: a unique request id injected into the context and response
//     headers so log lines can be correlated per request.
package middleware
