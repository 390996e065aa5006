// Package reports exposes the archived run reports over HTTP: listing,
// fetching and removing the JSON documents the scenarios put in the bucket.
// The feature only loads when archiving is enabled.
package reports
