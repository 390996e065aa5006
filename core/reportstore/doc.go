// Package reportstore archives verification run reports in an S3-compatible
// object store.
//
// Every scenario run produces a RunReport; when archiving is enabled the
// report is serialized to JSON and uploaded under runs/<scenario>/. Archive
// failures are best-effort from the caller's point of view: a run's verdict
// never depends on whether its report could be uploaded.
package reportstore
