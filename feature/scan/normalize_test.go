package scan_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"fridge-manager/core/barcode"
	"fridge-manager/core/catalog"
	"fridge-manager/core/reconcile"
	"fridge-manager/core/vision"
	"fridge-manager/feature/scan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var observedAt = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

type stubLookup struct {
	product *catalog.Product
	err     error
	calls   int
}

func (s *stubLookup) Lookup(context.Context, string) (*catalog.Product, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.product, nil
}

func TestNormalizer_ResolvesKnownLabels(t *testing.T) {
	n := scan.NewNormalizer(catalog.NewResolver(), nil, zap.NewNop())

	observations := n.Normalize(context.Background(),
		[]vision.Detection{{Label: "  Apple ", Confidence: 0.9}}, nil, observedAt)
	require.Len(t, observations, 1)

	obs := observations[0]
	assert.Equal(t, "apple", obs.Identity)
	assert.Equal(t, "apple", obs.Raw)
	assert.Equal(t, catalog.CategoryFruit, obs.Category)
	assert.Equal(t, reconcile.SourceVision, obs.Source)
	assert.Equal(t, 1, obs.Count)
	assert.InDelta(t, 0.9, obs.Confidence, 0.001)
	assert.True(t, obs.Expires.Equal(observedAt.AddDate(0, 0, 7)))
}

func TestNormalizer_UnknownLabelStaysUnresolved(t *testing.T) {
	n := scan.NewNormalizer(catalog.NewResolver(), nil, zap.NewNop())

	observations := n.Normalize(context.Background(),
		[]vision.Detection{{Label: "Mystery  Goo", Confidence: 0.9}}, nil, observedAt)
	require.Len(t, observations, 1)

	obs := observations[0]
	assert.False(t, obs.Resolved())
	assert.Equal(t, "mystery goo", obs.Raw)
	assert.Empty(t, obs.Category)
	assert.True(t, obs.Expires.IsZero())
}

func TestNormalizer_ResolvesBoundCodesLocally(t *testing.T) {
	resolver := catalog.NewResolver()
	resolver.BindCode("4011200296908", "apple", "apple", catalog.CategoryFruit)
	lookup := &stubLookup{}
	n := scan.NewNormalizer(resolver, lookup, zap.NewNop())

	observations := n.Normalize(context.Background(), nil,
		[]barcode.Code{{Payload: "4011200296908", Format: "EAN_13"}}, observedAt)
	require.Len(t, observations, 1)

	obs := observations[0]
	assert.Equal(t, "apple", obs.Identity)
	assert.Equal(t, "4011200296908", obs.Raw)
	assert.Equal(t, reconcile.SourceBarcode, obs.Source)
	assert.InDelta(t, 1.0, obs.Confidence, 0.001)
	assert.Zero(t, lookup.calls)
}

func TestNormalizer_BindsUnknownCodeFromLookup(t *testing.T) {
	resolver := catalog.NewResolver()
	lookup := &stubLookup{product: &catalog.Product{
		Code:       "3017620422003",
		Name:       "Nutella",
		Categories: "Spreads, Sweet spreads",
	}}
	n := scan.NewNormalizer(resolver, lookup, zap.NewNop())

	observations := n.Normalize(context.Background(), nil,
		[]barcode.Code{{Payload: "3017620422003"}}, observedAt)
	require.Len(t, observations, 1)

	obs := observations[0]
	assert.Equal(t, "nutella", obs.Identity)
	assert.Equal(t, catalog.CategoryPantry, obs.Category)
	assert.Equal(t, 1, lookup.calls)

	// The binding sticks, so the next scan resolves without the lookup.
	n.Normalize(context.Background(), nil, []barcode.Code{{Payload: "3017620422003"}}, observedAt)
	assert.Equal(t, 1, lookup.calls)
}

func TestNormalizer_UnknownCodeStaysUnresolved(t *testing.T) {
	lookup := &stubLookup{err: catalog.ErrProductNotFound}
	n := scan.NewNormalizer(catalog.NewResolver(), lookup, zap.NewNop())

	observations := n.Normalize(context.Background(), nil,
		[]barcode.Code{{Payload: "0000000000000"}}, observedAt)
	require.Len(t, observations, 1)
	assert.False(t, observations[0].Resolved())
	assert.Equal(t, "0000000000000", observations[0].Raw)
}

func TestNormalizer_NilLookupSkipsRemote(t *testing.T) {
	n := scan.NewNormalizer(catalog.NewResolver(), nil, zap.NewNop())

	observations := n.Normalize(context.Background(), nil,
		[]barcode.Code{{Payload: "3017620422003"}}, observedAt)
	require.Len(t, observations, 1)
	assert.False(t, observations[0].Resolved())
}

func TestNormalizer_LookupFailureDoesNotBlockBatch(t *testing.T) {
	lookup := &stubLookup{err: catalog.ErrLookup}
	n := scan.NewNormalizer(catalog.NewResolver(), lookup, zap.NewNop())

	observations := n.Normalize(context.Background(),
		[]vision.Detection{{Label: "apple", Confidence: 0.9}},
		[]barcode.Code{{Payload: "3017620422003"}}, observedAt)
	require.Len(t, observations, 2)
	assert.True(t, observations[0].Resolved())
	assert.False(t, observations[1].Resolved())
}
