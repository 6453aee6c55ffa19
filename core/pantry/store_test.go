package pantry_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"fridge-manager/core/pantry"
	"fridge-manager/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

type memPersister struct {
	saved     map[string]pantry.Entry
	saveCalls int
	failSave  bool
	failLoad  bool
}

func (m *memPersister) Load(context.Context) (map[string]pantry.Entry, error) {
	if m.failLoad {
		return nil, errors.New("backend down")
	}
	out := make(map[string]pantry.Entry, len(m.saved))
	for identity, entry := range m.saved {
		out[identity] = entry
	}
	return out, nil
}

func (m *memPersister) Save(_ context.Context, entries map[string]pantry.Entry) error {
	m.saveCalls++
	if m.failSave {
		return errors.New("backend down")
	}
	out := make(map[string]pantry.Entry, len(entries))
	for identity, entry := range entries {
		out[identity] = entry
	}
	m.saved = out
	return nil
}

func (m *memPersister) Reset(context.Context) error {
	m.saved = nil
	return nil
}

func openStore(t *testing.T, p pantry.Persister) *pantry.Store {
	t.Helper()
	store, err := pantry.Open(context.Background(), p, zap.NewNop())
	require.NoError(t, err)
	return store
}

func batch(id string, changes ...reconcile.Change) *reconcile.Plan {
	return &reconcile.Plan{BatchID: id, Observed: stamp, Changes: changes}
}

func change(identity string, quantity int, source reconcile.Source) reconcile.Change {
	return reconcile.Change{Identity: identity, Quantity: quantity, Source: source, Observed: stamp}
}

func TestStore_Open_LoadFailure(t *testing.T) {
	_, err := pantry.Open(context.Background(), &memPersister{failLoad: true}, zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, pantry.ErrPersistence)
}

func TestStore_Apply_ReplacesQuantities(t *testing.T) {
	store := openStore(t, &memPersister{})

	require.NoError(t, store.Apply(context.Background(), batch("b-1", change("apple", 3, reconcile.SourceVision))))
	require.NoError(t, store.Apply(context.Background(), batch("b-2", change("apple", 1, reconcile.SourceBarcode))))

	entry, ok := store.Get("apple")
	require.True(t, ok)
	assert.Equal(t, 1, entry.Quantity)
	assert.Equal(t, "barcode", entry.Source)
	assert.Equal(t, "b-2", entry.LastBatch)
}

func TestStore_Apply_LeavesUnmentionedItemsAlone(t *testing.T) {
	store := openStore(t, &memPersister{})

	require.NoError(t, store.Apply(context.Background(), batch("b-1",
		change("apple", 2, reconcile.SourceVision),
		change("milk", 1, reconcile.SourceBarcode),
	)))
	require.NoError(t, store.Apply(context.Background(), batch("b-2", change("apple", 1, reconcile.SourceVision))))

	milk, ok := store.Get("milk")
	require.True(t, ok)
	assert.Equal(t, 1, milk.Quantity)
	assert.Equal(t, "b-1", milk.LastBatch)
}

func TestStore_Apply_AllOrNothingOnPersistFailure(t *testing.T) {
	persister := &memPersister{}
	store := openStore(t, persister)
	require.NoError(t, store.Apply(context.Background(), batch("b-1", change("apple", 2, reconcile.SourceVision))))

	persister.failSave = true
	err := store.Apply(context.Background(), batch("b-2",
		change("apple", 5, reconcile.SourceVision),
		change("milk", 1, reconcile.SourceBarcode),
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, pantry.ErrPersistence)

	entry, ok := store.Get("apple")
	require.True(t, ok)
	assert.Equal(t, 2, entry.Quantity)
	_, ok = store.Get("milk")
	assert.False(t, ok)
}

func TestStore_Apply_ZeroCountRemovesEntry(t *testing.T) {
	store := openStore(t, &memPersister{})

	require.NoError(t, store.Apply(context.Background(), batch("b-1", change("apple", 2, reconcile.SourceVision))))
	require.NoError(t, store.Apply(context.Background(), batch("b-2", change("apple", 0, reconcile.SourceManual))))

	_, ok := store.Get("apple")
	assert.False(t, ok)
}

func TestStore_Apply_EmptyPlanSkipsPersistence(t *testing.T) {
	persister := &memPersister{}
	store := openStore(t, persister)

	require.NoError(t, store.Apply(context.Background(), nil))
	require.NoError(t, store.Apply(context.Background(), batch("b-1")))
	assert.Zero(t, persister.saveCalls)
}

func TestStore_Apply_PreservesFirstSeen(t *testing.T) {
	store := openStore(t, &memPersister{})

	later := stamp.Add(48 * time.Hour)
	require.NoError(t, store.Apply(context.Background(), batch("b-1", change("apple", 2, reconcile.SourceVision))))
	require.NoError(t, store.Apply(context.Background(), &reconcile.Plan{
		BatchID:  "b-2",
		Observed: later,
		Changes: []reconcile.Change{
			{Identity: "apple", Quantity: 4, Source: reconcile.SourceVision, Observed: later},
		},
	}))

	entry, ok := store.Get("apple")
	require.True(t, ok)
	assert.True(t, entry.FirstSeen.Equal(stamp))
	assert.True(t, entry.UpdatedAt.Equal(later))
}

func TestStore_Remove(t *testing.T) {
	store := openStore(t, &memPersister{})
	require.NoError(t, store.Apply(context.Background(), batch("b-1", change("apple", 3, reconcile.SourceVision))))

	entry, err := store.Remove(context.Background(), "apple", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, entry.Quantity)

	entry, err = store.Remove(context.Background(), "apple", 5)
	require.NoError(t, err)
	assert.Equal(t, 0, entry.Quantity)

	_, ok := store.Get("apple")
	assert.False(t, ok)

	_, err = store.Remove(context.Background(), "apple", 1)
	assert.ErrorIs(t, err, pantry.ErrNotFound)
}

func TestStore_Remove_ZeroCountRemovesAll(t *testing.T) {
	store := openStore(t, &memPersister{})
	require.NoError(t, store.Apply(context.Background(), batch("b-1", change("apple", 3, reconcile.SourceVision))))

	entry, err := store.Remove(context.Background(), "apple", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, entry.Quantity)

	_, ok := store.Get("apple")
	assert.False(t, ok)
}

func TestStore_Remove_PersistFailureKeepsState(t *testing.T) {
	persister := &memPersister{}
	store := openStore(t, persister)
	require.NoError(t, store.Apply(context.Background(), batch("b-1", change("apple", 3, reconcile.SourceVision))))

	persister.failSave = true
	_, err := store.Remove(context.Background(), "apple", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, pantry.ErrPersistence)

	entry, ok := store.Get("apple")
	require.True(t, ok)
	assert.Equal(t, 3, entry.Quantity)
}

func TestStore_Snapshot(t *testing.T) {
	store := openStore(t, &memPersister{})
	require.NoError(t, store.Apply(context.Background(), batch("b-1",
		change("milk", 1, reconcile.SourceBarcode),
		change("apple", 2, reconcile.SourceVision),
	)))

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, "apple", snapshot.Items[0].Identity)
	assert.Equal(t, "milk", snapshot.Items[1].Identity)
	assert.Equal(t, 3, snapshot.Total)

	// Mutating the snapshot must not leak back into the store.
	snapshot.Items[0].Quantity = 99
	entry, _ := store.Get("apple")
	assert.Equal(t, 2, entry.Quantity)
}

func TestStore_FileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pantry.json")
	expiry := stamp.AddDate(0, 0, 7)

	store := openStore(t, pantry.NewFilePersister(path))
	require.NoError(t, store.Apply(context.Background(), batch("b-1", reconcile.Change{
		Identity: "apple",
		Quantity: 3,
		Source:   reconcile.SourceBarcode,
		Category: "Fruit",
		Expires:  expiry,
		Observed: stamp,
	})))

	reopened := openStore(t, pantry.NewFilePersister(path))
	entry, ok := reopened.Get("apple")
	require.True(t, ok)
	assert.Equal(t, 3, entry.Quantity)
	assert.Equal(t, "Fruit", entry.Category)
	assert.Equal(t, "barcode", entry.Source)
	assert.True(t, entry.Expires.Equal(expiry))
	assert.Equal(t, "b-1", entry.LastBatch)
}
