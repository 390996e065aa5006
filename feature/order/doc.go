// Package order verifies that the commerce API and the database agree on
// the shape of orders.
//
// Orders cut across three tables: the quoted order head row, the
// ordered_product positions with the product name joined in, and the
// product stock the order subtracts from. Scenarios provision their own
// customer row directly in storage (the commerce API exposes no customer
// endpoint) and their own products through the product endpoints, place
// the order with the customer id header, and reconcile the stored rows
// against the request or the presented shape.
//
// Position collections are reconciled order-independently, keyed by
// product id, and the presented total is checked against the exact sum of
// the stored line prices.
package order
