package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"fridge-manager/core/catalog"
	"fridge-manager/core/history"
	"fridge-manager/core/pantry"
	"fridge-manager/core/reconcile"
	"fridge-manager/core/utils"
)

// ErrNotQueued is returned when a resolve request names a raw value that is
// not parked in the unresolved queue.
var ErrNotQueued = errors.New("raw value is not queued")

// Service provides inventory reads and the manual curation operations.
type Service struct {
	store    *pantry.Store
	engine   *reconcile.Engine
	resolver *catalog.Resolver
	recorder *history.Recorder
	logger   *zap.Logger
}

// NewService creates a new inventory service.
func NewService(store *pantry.Store, engine *reconcile.Engine, resolver *catalog.Resolver,
	recorder *history.Recorder, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		engine:   engine,
		resolver: resolver,
		recorder: recorder,
		logger:   logger,
	}
}

// Snapshot returns the current inventory.
func (s *Service) Snapshot() pantry.Snapshot {
	return s.store.Snapshot()
}

// Remove takes count units of an item out of the inventory. A count of zero
// or one exceeding the stock removes the item entirely.
func (s *Service) Remove(ctx context.Context, identity string, count int) (pantry.Entry, error) {
	entry, err := s.store.Remove(ctx, identity, count)
	if err != nil {
		return pantry.Entry{}, err
	}

	s.logger.Info("Item removed",
		zap.String("identity", identity),
		zap.Int("count", count),
		zap.Int("remaining", entry.Quantity))
	return entry, nil
}

// Unresolved lists queued evidence awaiting an identity binding.
func (s *Service) Unresolved() []reconcile.UnresolvedItem {
	return s.engine.Queue().List()
}

// ResolveRequest binds a queued raw value to an identity. Identity, Name and
// Category are optional; the resolver falls back to slugging the raw value
// and classifying it against the built in vocabulary.
type ResolveRequest struct {
	Raw      string `json:"raw"`
	Identity string `json:"identity"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Resolve binds a queued raw value and replays the parked evidence through
// the engine so the inventory picks it up without a rescan. The replay keeps
// the original source and confidence; queued evidence already passed its
// source threshold, so it cannot be discarded a second time.
func (s *Service) Resolve(ctx context.Context, req ResolveRequest) (*reconcile.Plan, error) {
	item, ok := s.engine.Queue().Take(req.Raw)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotQueued, req.Raw)
	}

	var binding catalog.Binding
	if item.Source == reconcile.SourceBarcode {
		binding = s.resolver.BindCode(item.Raw, req.Identity, req.Name, req.Category)
	} else {
		binding = s.resolver.BindLabel(item.Raw, req.Identity, req.Category)
	}

	observed := time.Now().UTC()
	plan := s.engine.Reconcile([]reconcile.Observation{{
		Identity:   binding.Identity,
		Raw:        item.Raw,
		Category:   binding.Category,
		Count:      item.Count,
		Source:     item.Source,
		Confidence: item.Confidence,
		Observed:   observed,
		Expires:    catalog.ExpiryFor(binding.Category, observed),
	}})
	if err := s.store.Apply(ctx, plan); err != nil {
		return nil, err
	}
	if err := s.recorder.Record(ctx, plan, ""); err != nil {
		s.logger.Warn("Failed to record resolve batch", zap.Error(err))
	}

	s.logger.Info("Unresolved item bound",
		zap.String("raw", item.Raw),
		zap.String("identity", binding.Identity),
		zap.Int("count", item.Count))
	return plan, nil
}

// ManualItem is a hand entered inventory correction. Quantity is absolute;
// zero removes the item.
type ManualItem struct {
	Name     string `json:"name"`
	Identity string `json:"identity"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// Add records a manual observation. Unknown names are bound on the fly so
// later scans resolve them too.
func (s *Service) Add(ctx context.Context, item ManualItem) (*reconcile.Plan, error) {
	label := utils.NormalizeLabel(item.Name)
	binding, ok := s.resolver.ResolveLabel(label)
	if !ok {
		binding = s.resolver.BindLabel(label, item.Identity, item.Category)
	}

	quantity := item.Quantity
	if quantity < 0 {
		quantity = 0
	}

	observed := time.Now().UTC()
	plan := s.engine.Reconcile([]reconcile.Observation{{
		Identity:   binding.Identity,
		Raw:        label,
		Category:   binding.Category,
		Count:      quantity,
		Source:     reconcile.SourceManual,
		Confidence: 1,
		Observed:   observed,
		Expires:    catalog.ExpiryFor(binding.Category, observed),
	}})
	if err := s.store.Apply(ctx, plan); err != nil {
		return nil, err
	}
	if err := s.recorder.Record(ctx, plan, ""); err != nil {
		s.logger.Warn("Failed to record manual batch", zap.Error(err))
	}

	s.logger.Info("Manual item recorded",
		zap.String("identity", binding.Identity),
		zap.Int("quantity", quantity))
	return plan, nil
}

// History returns recent scan batches, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]history.ScanRecord, error) {
	return s.recorder.Recent(ctx, limit)
}
