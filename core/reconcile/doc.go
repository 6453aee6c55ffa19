// Package reconcile turns normalized observations into inventory mutations.
//
// One reconciliation batch corresponds to one processed image: the set of
// observations derived from that image's detections and barcode reads. The
// engine decides, per item identity, what the batch means for the inventory
// and emits a Plan the store applies atomically.
//
// # Policy
//
// The engine applies four rules, in order:
//
//  1. Threshold: observations below their source's confidence threshold are
//     discarded and logged. Barcode decodes always carry confidence 1.0, so
//     the barcode threshold defaults lower than the vision threshold.
//  2. Unresolved routing: observations whose raw label or payload could not
//     be resolved to an identity never reach the store. They are aggregated
//     per raw value and parked in the UnresolvedQueue for manual binding.
//  3. Aggregation and precedence: counts for the same identity sum per source
//     within the batch. When both vision and barcode saw an identity, the
//     barcode count wins (exact decode beats box counting); the losing
//     observations stay in the plan audit as overridden.
//  4. Replace-by-latest-batch: the winning count replaces the stored quantity
//     outright. A batch describes what is currently visible, not a delta, so
//     re-scanning an unchanged fridge is idempotent. An identity the batch
//     does not mention is left untouched; removal is always an explicit
//     caller signal, never inferred from one missing detection.
//
// # Audit
//
// Every input observation lands in Plan.Audit with an outcome (applied,
// overridden, discarded, unresolved) so the scan history can record what the
// pipeline saw, including evidence that did not change the inventory.
//
// # Usage
//
//	engine := reconcile.NewEngine(cfg, logger)
//	plan := engine.Reconcile(observations)
//	snapshot, err := store.Apply(ctx, plan)
//
// The engine itself holds no inventory state; the UnresolvedQueue is its only
// mutable component and is safe for concurrent use.
package reconcile
