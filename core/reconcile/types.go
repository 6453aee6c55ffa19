package reconcile

import "time"

// Source identifies where an observation came from.
type Source string

const (
	// SourceVision marks observations derived from object detection.
	SourceVision Source = "vision"
	// SourceBarcode marks observations derived from barcode decoding.
	SourceBarcode Source = "barcode"
	// SourceManual marks observations entered by hand (trusted, threshold 0).
	SourceManual Source = "manual"
)

// Observation is one normalized unit of evidence about an item's presence.
// It is consumed exactly once by the engine and never persisted itself;
// audit copies live in the plan and, optionally, the scan history.
type Observation struct {
	// Identity is the canonical item key. Empty means unresolved.
	Identity string `json:"identity,omitempty"`

	// Raw is the normalized detector label or barcode payload the
	// observation was derived from. Kept for unresolved routing and audit.
	Raw string `json:"raw"`

	// Category is the resolver-assigned food category (empty if unresolved).
	Category string `json:"category,omitempty"`

	// Count is the number of instances this observation stands for.
	// Vision and barcode observations always carry 1 (one per box/decode).
	Count int `json:"count"`

	// Source is the evidence channel.
	Source Source `json:"source"`

	// Confidence is the evidence strength in [0,1].
	// Barcode decodes are exact, so they always carry 1.0.
	Confidence float64 `json:"confidence"`

	// Observed is the batch timestamp stamped by the normalizer.
	Observed time.Time `json:"observed"`

	// Expires is the shelf-life estimate for a newly created entry.
	// Zero when unresolved or when no rule applies.
	Expires time.Time `json:"expires,omitempty"`
}

// Resolved reports whether the observation carries a canonical identity.
func (o Observation) Resolved() bool {
	return o.Identity != ""
}

// Outcome classifies what the engine did with one observation.
type Outcome string

const (
	// OutcomeApplied means the observation contributed to a change.
	OutcomeApplied Outcome = "applied"
	// OutcomeOverridden means a higher-precedence source won the identity's
	// count in this batch; kept for audit only.
	OutcomeOverridden Outcome = "overridden"
	// OutcomeDiscarded means the observation fell below its source threshold.
	OutcomeDiscarded Outcome = "discarded"
	// OutcomeUnresolved means the raw value had no identity binding and the
	// observation was routed to the unresolved queue.
	OutcomeUnresolved Outcome = "unresolved"
)

// AuditEntry records the engine's decision for a single observation.
type AuditEntry struct {
	Observation

	// Outcome is the engine's decision.
	Outcome Outcome `json:"outcome"`

	// Reason explains discards and overrides, e.g. "below vision threshold 0.50".
	Reason string `json:"reason,omitempty"`
}

// Change is one planned inventory mutation. Quantity is absolute: it replaces
// the stored quantity for the identity (replace-by-latest-batch).
type Change struct {
	// Identity is the canonical item key.
	Identity string `json:"identity"`

	// Quantity is the new absolute quantity, never negative.
	Quantity int `json:"quantity"`

	// Source is the winning evidence channel for this batch.
	Source Source `json:"source"`

	// Category and Expires seed entry metadata on first creation.
	Category string    `json:"category,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`

	// Observed is the batch timestamp.
	Observed time.Time `json:"observed"`
}

// Plan is the engine's output for one batch: the mutations to apply plus the
// full per-observation audit trail. Changes are ordered by identity so plans
// are deterministic for identical input.
type Plan struct {
	// BatchID uniquely identifies this reconciliation batch.
	BatchID string `json:"batch_id"`

	// Observed is the batch timestamp.
	Observed time.Time `json:"observed"`

	// Changes contains the planned mutations, ordered by identity.
	Changes []Change `json:"changes"`

	// Audit contains one entry per input observation.
	Audit []AuditEntry `json:"audit"`
}

// Empty reports whether the plan mutates anything.
func (p *Plan) Empty() bool {
	return len(p.Changes) == 0
}

// ByOutcome returns the audit entries with the given outcome, in plan order.
func (p *Plan) ByOutcome(outcome Outcome) []AuditEntry {
	var entries []AuditEntry
	for _, e := range p.Audit {
		if e.Outcome == outcome {
			entries = append(entries, e)
		}
	}
	return entries
}
