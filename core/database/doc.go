// Package database manages the connection to the commerce PostgreSQL
// database that the storage fetchers read snapshots from.
//
// It provides connection establishment with pooling and ping verification,
// plus a schema preflight (VerifySchema) that confirms the tables the
// verification scenarios depend on exist before any scenario runs.
//
// All queries issued through this connection are parameterized; field names
// and table names are never interpolated from input.
package database
