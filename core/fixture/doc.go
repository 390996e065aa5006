// Package fixture generates the random test data the verification scenarios
// create entities with: product names and categories, unique articles,
// two-digit prices, stock quantities, delivery addresses, and customer
// identities.
//
// Generated values obey the commerce invariants (price > 0, qty >= 1, order
// line qty bounded by stock) so a scenario never fails for reasons other
// than a genuine disagreement between API and storage.
package fixture
