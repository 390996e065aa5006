// Package loader provides the plugin-like feature loading system.
//
// Verification modules (product, order) implement the Feature interface and
// register their HTTP routes through it. The Manager holds the registry and
// loads every enabled feature at startup, so new entity verifiers can be
// added without touching the server wiring.
package loader
