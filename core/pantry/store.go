package pantry

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"fridge-manager/core/reconcile"
)

// Store holds the live inventory and keeps it in sync with the persister.
type Store struct {
	mu        sync.RWMutex
	entries   map[string]Entry
	persister Persister
	logger    *zap.Logger
}

// Open loads existing state through the persister. A missing document
// starts an empty inventory. A corrupt one is an error, so previously
// persisted state is never silently discarded.
func Open(ctx context.Context, persister Persister, logger *zap.Logger) (*Store, error) {
	entries, err := persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if entries == nil {
		entries = make(map[string]Entry)
	}

	logger.Info("inventory loaded", zap.Int("items", len(entries)))
	return &Store{entries: entries, persister: persister, logger: logger}, nil
}

// Apply commits a reconciliation plan. Each change replaces the quantity of
// its identity; identities outside the plan are untouched. The plan lands
// whole or not at all: persistence runs against a staged copy and the live
// state only advances after the save succeeds.
func (s *Store) Apply(ctx context.Context, plan *reconcile.Plan) error {
	if plan == nil || plan.Empty() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cloneLocked()
	for _, change := range plan.Changes {
		stage(next, change, plan.BatchID)
	}

	if err := s.persister.Save(ctx, next); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	s.entries = next

	s.logger.Info("batch applied",
		zap.String("batch_id", plan.BatchID),
		zap.Int("changes", len(plan.Changes)),
		zap.Int("items", len(s.entries)))
	return nil
}

// stage writes one change into the staged state. An explicit zero count
// removes the entry.
func stage(entries map[string]Entry, change reconcile.Change, batchID string) {
	quantity := change.Quantity
	if quantity < 0 {
		quantity = 0
	}

	entry, ok := entries[change.Identity]
	if quantity == 0 {
		if ok {
			delete(entries, change.Identity)
		}
		return
	}
	if !ok {
		entry = Entry{Identity: change.Identity, FirstSeen: change.Observed}
	}

	entry.Quantity = quantity
	entry.Source = string(change.Source)
	if change.Category != "" {
		entry.Category = change.Category
	}
	if !change.Expires.IsZero() {
		entry.Expires = change.Expires
	}
	if entry.FirstSeen.IsZero() {
		entry.FirstSeen = change.Observed
	}
	entry.UpdatedAt = change.Observed
	entry.LastBatch = batchID
	entries[change.Identity] = entry
}

// Remove takes count units out of an item, deleting the entry when the
// count reaches or exceeds the stock. A count of zero or less removes the
// entry outright. The returned entry reflects the state after removal.
func (s *Store) Remove(ctx context.Context, identity string, count int) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[identity]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, identity)
	}

	next := s.cloneLocked()
	if count <= 0 || count >= entry.Quantity {
		delete(next, identity)
		entry.Quantity = 0
	} else {
		entry.Quantity -= count
		entry.UpdatedAt = time.Now().UTC()
		next[identity] = entry
	}

	if err := s.persister.Save(ctx, next); err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	s.entries = next

	s.logger.Info("item removed",
		zap.String("identity", identity),
		zap.Int("remaining", entry.Quantity))
	return entry, nil
}

// Get returns the entry for an identity.
func (s *Store) Get(identity string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[identity]
	return entry, ok
}

// Snapshot returns a copy of the inventory sorted by identity.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]Entry, 0, len(s.entries))
	total := 0
	for _, entry := range s.entries {
		items = append(items, entry)
		total += entry.Quantity
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Identity < items[j].Identity })

	return Snapshot{Items: items, Total: total, TakenAt: time.Now().UTC()}
}

// cloneLocked copies the entry map. Callers hold mu.
func (s *Store) cloneLocked() map[string]Entry {
	next := make(map[string]Entry, len(s.entries))
	for identity, entry := range s.entries {
		next[identity] = entry
	}
	return next
}
