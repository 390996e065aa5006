// Package reconcile decides whether an API-shaped record and a storage-shaped
// record denote the same business entity, despite differing field names,
// numeric scales, timestamp encodings, and collection ordering.
//
// The package consists of three layers:
//
// 1. Normalizers: pure functions that map source-specific encodings (the API's
// zone-less timestamp pattern, the database's offset-aware one, decimals of
// arbitrary scale) to canonical values that are safe to compare directly.
//
// 2. Field comparators: per-field equality rules that run the correct
// normalizer before comparing and append a structured Mismatch to a Report
// on failure instead of returning a boolean.
//
// 3. Collection comparator: matches unordered line-item collections by their
// natural key (product id), verifies cardinality, and reconciles matched
// pairs positionally without short-circuiting.
//
// # Error Model
//
// A disagreement between two well-formed values is never an error; it is
// accumulated into the Report so that every mismatch in an entity is visible
// in a single run. Input that cannot be normalized (a null or malformed
// timestamp, an unparseable decimal) is a fatal setup bug and is returned as
// a *MalformedTimestampError or *MalformedDecimalError immediately.
//
// # Usage Example
//
//	var r reconcile.Report
//	reconcile.CompareString(&r, "name", stored.Name, presented.Name)
//	if err := reconcile.CompareDecimal(&r, "price", stored.Price, presented.Price); err != nil {
//	    return err // malformed input, not a mismatch
//	}
//	if !r.Empty() {
//	    return fmt.Errorf("entities diverge:\n%s", r)
//	}
//
// All functions are pure, hold no state across calls, and perform no I/O.
// Callers are responsible for fetching consistent snapshots before invoking
// any comparator.
package reconcile
