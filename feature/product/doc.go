// Package product verifies that the commerce API and the database agree on
// the shape of products.
//
// Every scenario creates its own fixture product through the API, fetches
// the presented shape from the API and the stored shape straight from the
// product table, and reconciles the two with core/reconcile. Raw values keep
// their source formatting until comparison time, so scale and timestamp
// differences between the two representations are handled by the
// normalizers rather than by the fetchers.
//
// The dictionary column is persisted but never presented by the API. It is
// therefore checked against the original request instead of the response.
package product
