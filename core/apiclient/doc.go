// Package apiclient provides the presentation-layer fetcher: a JSON HTTP
// client for the commerce API under verification.
//
// The client carries its own transport with strict timeouts and collapses
// identical concurrent GET fetches through singleflight, so parallel
// scenarios reading the same snapshot share one round trip.
//
// Errors from this collaborator (non-2xx, timeout) are setup errors; the
// reconciliation core never sees them. Status expectations are enforced at
// the call site via Expect.
package apiclient
