// Package history keeps a durable log of reconciliation batches.
//
// Each processed frame produces one ScanRecord: outcome counts, the applied
// changes and the full audit trail, serialized as JSON columns. The log is
// optional. When the service runs without a database the recorder is
// disabled and every call becomes a no-op, so the scan path never depends
// on the database being up.
package history
