package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var batchStamp = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func newTestEngine() *Engine {
	cfg := Config{VisionThreshold: 0.5, BarcodeThreshold: 0.25}
	return NewEngine(cfg, zap.NewNop())
}

func visionObs(identity string, confidence float64) Observation {
	return Observation{
		Identity:   identity,
		Raw:        identity,
		Count:      1,
		Source:     SourceVision,
		Confidence: confidence,
		Observed:   batchStamp,
	}
}

func barcodeObs(identity, payload string) Observation {
	return Observation{
		Identity:   identity,
		Raw:        payload,
		Count:      1,
		Source:     SourceBarcode,
		Confidence: 1.0,
		Observed:   batchStamp,
	}
}

func TestReconcile_EmptyBatch(t *testing.T) {
	engine := newTestEngine()

	plan := engine.Reconcile(nil)

	require.NotNil(t, plan)
	assert.NotEmpty(t, plan.BatchID)
	assert.True(t, plan.Empty())
	assert.Empty(t, plan.Audit)
	assert.Zero(t, engine.Queue().Len())
}

func TestReconcile_SingleVisionObservation(t *testing.T) {
	engine := newTestEngine()

	plan := engine.Reconcile([]Observation{visionObs("apple", 0.9)})

	require.Len(t, plan.Changes, 1)
	change := plan.Changes[0]
	assert.Equal(t, "apple", change.Identity)
	assert.Equal(t, 1, change.Quantity)
	assert.Equal(t, SourceVision, change.Source)
	assert.Equal(t, batchStamp, change.Observed)

	require.Len(t, plan.Audit, 1)
	assert.Equal(t, OutcomeApplied, plan.Audit[0].Outcome)
}

func TestReconcile_SumsSameIdentityWithinBatch(t *testing.T) {
	engine := newTestEngine()

	plan := engine.Reconcile([]Observation{
		visionObs("apple", 0.9),
		visionObs("apple", 0.8),
		visionObs("apple", 0.7),
	})

	require.Len(t, plan.Changes, 1)
	assert.Equal(t, 3, plan.Changes[0].Quantity)
}

// Two vision boxes and one barcode decode of the same identity: the barcode
// count wins, the vision observations are kept as overridden audit entries.
func TestReconcile_BarcodeOverridesVisionCount(t *testing.T) {
	engine := newTestEngine()

	plan := engine.Reconcile([]Observation{
		visionObs("apple", 0.9),
		visionObs("apple", 0.8),
		barcodeObs("apple", "4011"),
	})

	require.Len(t, plan.Changes, 1)
	change := plan.Changes[0]
	assert.Equal(t, "apple", change.Identity)
	assert.Equal(t, 1, change.Quantity)
	assert.Equal(t, SourceBarcode, change.Source)

	assert.Len(t, plan.ByOutcome(OutcomeOverridden), 2)
	applied := plan.ByOutcome(OutcomeApplied)
	require.Len(t, applied, 1)
	assert.Equal(t, SourceBarcode, applied[0].Source)
}

func TestReconcile_ThresholdFilter(t *testing.T) {
	engine := newTestEngine()

	plan := engine.Reconcile([]Observation{
		visionObs("apple", 0.6),
		visionObs("apple", 0.4), // below the 0.5 vision threshold
	})

	require.Len(t, plan.Changes, 1)
	assert.Equal(t, 1, plan.Changes[0].Quantity)

	discarded := plan.ByOutcome(OutcomeDiscarded)
	require.Len(t, discarded, 1)
	assert.Contains(t, discarded[0].Reason, "vision threshold")
}

func TestReconcile_UnresolvedRouting(t *testing.T) {
	engine := newTestEngine()

	unknown := Observation{
		Raw:        "dragonfruit",
		Count:      1,
		Source:     SourceVision,
		Confidence: 0.8,
		Observed:   batchStamp,
	}
	second := unknown
	second.Confidence = 0.7

	plan := engine.Reconcile([]Observation{unknown, second})

	assert.True(t, plan.Empty())
	assert.Len(t, plan.ByOutcome(OutcomeUnresolved), 2)

	items := engine.Queue().List()
	require.Len(t, items, 1)
	assert.Equal(t, "dragonfruit", items[0].Raw)
	assert.Equal(t, 2, items[0].Count) // summed within the batch
	assert.Equal(t, 0.8, items[0].Confidence)
	assert.Equal(t, 1, items[0].Batches)
}

func TestReconcile_QueueKeepsLatestBatchCount(t *testing.T) {
	engine := newTestEngine()

	unknown := Observation{Raw: "dragonfruit", Count: 1, Source: SourceVision, Confidence: 0.8, Observed: batchStamp}

	engine.Reconcile([]Observation{unknown, unknown})
	engine.Reconcile([]Observation{unknown})

	items := engine.Queue().List()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Count) // replaced, not summed across batches
	assert.Equal(t, 2, items[0].Batches)
}

func TestReconcile_ChangesOrderedByIdentity(t *testing.T) {
	engine := newTestEngine()

	plan := engine.Reconcile([]Observation{
		visionObs("banana", 0.9),
		visionObs("apple", 0.9),
		visionObs("cherry", 0.9),
	})

	require.Len(t, plan.Changes, 3)
	assert.Equal(t, "apple", plan.Changes[0].Identity)
	assert.Equal(t, "banana", plan.Changes[1].Identity)
	assert.Equal(t, "cherry", plan.Changes[2].Identity)
}

func TestReconcile_ManualPrecedence(t *testing.T) {
	engine := newTestEngine()

	manual := Observation{
		Identity:   "oat-milk",
		Raw:        "oat-milk",
		Count:      5,
		Source:     SourceManual,
		Confidence: 1.0,
		Observed:   batchStamp,
	}

	plan := engine.Reconcile([]Observation{
		manual,
		barcodeObs("oat-milk", "7314"),
	})

	require.Len(t, plan.Changes, 1)
	assert.Equal(t, 5, plan.Changes[0].Quantity)
	assert.Equal(t, SourceManual, plan.Changes[0].Source)
}

func TestReconcile_ManualZeroCount(t *testing.T) {
	engine := newTestEngine()

	manual := Observation{
		Identity:   "oat-milk",
		Raw:        "oat-milk",
		Count:      0,
		Source:     SourceManual,
		Confidence: 1.0,
		Observed:   batchStamp,
	}

	plan := engine.Reconcile([]Observation{manual})

	require.Len(t, plan.Changes, 1)
	assert.Equal(t, 0, plan.Changes[0].Quantity)
}

func TestReconcile_CarriesResolverMetadata(t *testing.T) {
	engine := newTestEngine()

	obs := visionObs("apple", 0.9)
	obs.Category = "Fruit"
	obs.Expires = batchStamp.AddDate(0, 0, 7)

	plan := engine.Reconcile([]Observation{obs})

	require.Len(t, plan.Changes, 1)
	assert.Equal(t, "Fruit", plan.Changes[0].Category)
	assert.Equal(t, batchStamp.AddDate(0, 0, 7), plan.Changes[0].Expires)
}
