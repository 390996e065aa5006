// Package server holds the configuration for the verification HTTP server
// and the shared wire constants of the commerce API it drives.
package server
