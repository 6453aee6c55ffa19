package reconcile

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine reconciles observation batches into inventory plans.
// It is stateless apart from the unresolved queue and safe for concurrent use.
type Engine struct {
	cfg    Config
	queue  *UnresolvedQueue
	logger *zap.Logger
}

// NewEngine creates a reconciliation engine with an empty unresolved queue.
func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	return &Engine{
		cfg:    cfg,
		queue:  NewUnresolvedQueue(),
		logger: logger,
	}
}

// Queue returns the engine's unresolved queue.
func (e *Engine) Queue() *UnresolvedQueue {
	return e.queue
}

// sourceRank orders evidence channels for the per-identity tie-break:
// manual beats barcode beats vision.
func sourceRank(s Source) int {
	switch s {
	case SourceManual:
		return 3
	case SourceBarcode:
		return 2
	case SourceVision:
		return 1
	default:
		return 0
	}
}

// tally accumulates per-source counts for one identity within a batch.
type tally struct {
	counts   map[Source]int
	category string
	expires  time.Time
}

// pending aggregates unresolved observations for one raw value within a batch.
type pending struct {
	source     Source
	count      int
	confidence float64
}

// Reconcile decides what one batch of observations means for the inventory.
// The returned plan carries absolute quantities (replace-by-latest-batch) and
// a full audit trail; identities the batch does not mention are untouched.
// Unresolved observations are parked in the queue as a side effect.
func (e *Engine) Reconcile(batch []Observation) *Plan {
	plan := &Plan{
		BatchID:  uuid.NewString(),
		Observed: batchTime(batch),
	}
	log := e.logger.With(zap.String("batch_id", plan.BatchID))

	// First pass: threshold filter and routing. Resolved survivors feed the
	// per-identity tallies; their audit outcome is decided after precedence.
	outcomes := make([]AuditEntry, len(batch))
	tallies := make(map[string]*tally)
	unresolved := make(map[string]*pending)

	for i, obs := range batch {
		threshold := e.cfg.ThresholdFor(obs.Source)
		if obs.Confidence < threshold {
			outcomes[i] = AuditEntry{
				Observation: obs,
				Outcome:     OutcomeDiscarded,
				Reason:      fmt.Sprintf("below %s threshold %.2f", obs.Source, threshold),
			}
			log.Debug("Observation discarded",
				zap.String("raw", obs.Raw),
				zap.String("source", string(obs.Source)),
				zap.Float64("confidence", obs.Confidence),
			)
			continue
		}

		if !obs.Resolved() {
			outcomes[i] = AuditEntry{
				Observation: obs,
				Outcome:     OutcomeUnresolved,
				Reason:      "no identity binding",
			}
			p := unresolved[obs.Raw]
			if p == nil {
				p = &pending{source: obs.Source}
				unresolved[obs.Raw] = p
			}
			p.count += obs.Count
			if obs.Confidence > p.confidence {
				p.confidence = obs.Confidence
			}
			if sourceRank(obs.Source) > sourceRank(p.source) {
				p.source = obs.Source
			}
			continue
		}

		t := tallies[obs.Identity]
		if t == nil {
			t = &tally{counts: make(map[Source]int)}
			tallies[obs.Identity] = t
		}
		t.counts[obs.Source] += obs.Count
		if t.category == "" {
			t.category = obs.Category
		}
		if t.expires.IsZero() {
			t.expires = obs.Expires
		}
	}

	// Park unresolved evidence; the latest batch replaces a raw value's count.
	for raw, p := range unresolved {
		e.queue.Put(raw, p.source, p.count, p.confidence, plan.Observed)
		log.Info("Unresolved observation queued",
			zap.String("raw", raw),
			zap.String("source", string(p.source)),
			zap.Int("count", p.count),
		)
	}

	// Second pass: pick the winning source per identity and emit changes in
	// identity order so plans are deterministic.
	winners := make(map[string]Source, len(tallies))
	identities := make([]string, 0, len(tallies))
	for identity := range tallies {
		identities = append(identities, identity)
	}
	sort.Strings(identities)

	for _, identity := range identities {
		t := tallies[identity]

		var winner Source
		for src := range t.counts {
			if winner == "" || sourceRank(src) > sourceRank(winner) {
				winner = src
			}
		}
		winners[identity] = winner

		quantity := t.counts[winner]
		if quantity < 0 {
			quantity = 0
		}

		plan.Changes = append(plan.Changes, Change{
			Identity: identity,
			Quantity: quantity,
			Source:   winner,
			Category: t.category,
			Expires:  t.expires,
			Observed: plan.Observed,
		})
	}

	// Final pass: audit resolved survivors now that precedence is known.
	for i, obs := range batch {
		if outcomes[i].Outcome != "" {
			continue
		}
		winner := winners[obs.Identity]
		if obs.Source == winner {
			outcomes[i] = AuditEntry{Observation: obs, Outcome: OutcomeApplied}
		} else {
			outcomes[i] = AuditEntry{
				Observation: obs,
				Outcome:     OutcomeOverridden,
				Reason:      fmt.Sprintf("%s count takes precedence", winner),
			}
		}
	}
	plan.Audit = outcomes

	return plan
}

// batchTime returns the batch timestamp: the first stamped observation time,
// falling back to now for empty or unstamped batches.
func batchTime(batch []Observation) time.Time {
	for _, obs := range batch {
		if !obs.Observed.IsZero() {
			return obs.Observed
		}
	}
	return time.Now()
}
