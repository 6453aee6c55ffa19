// Package scan is the ingestion feature: one shelf photo in, one
// reconciled inventory batch out.
//
// # Pipeline
//
// ProcessImage decodes the upload, runs object detection and barcode
// decoding in parallel, normalizes both result sets into observations,
// hands them to the reconcile engine and applies the resulting plan to the
// pantry. The response carries the plan, the full audit trail and a fresh
// inventory snapshot.
//
// # Normalization
//
// The Normalizer resolves detector labels through the catalog and barcode
// payloads through the catalog plus an optional remote product lookup.
// Codes the lookup recognizes are bound on the spot so the next scan of the
// same product resolves locally. Evidence that cannot be resolved still
// becomes an observation; the engine routes it to the unresolved queue.
//
// # Archive
//
// When object storage is enabled every processed frame is archived twice:
// the original upload and an annotated copy with detection and barcode
// boxes drawn in. Prune removes archived frames past the retention window.
package scan
