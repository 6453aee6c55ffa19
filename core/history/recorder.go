package history

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"fridge-manager/core/reconcile"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// Recorder writes batches to the scan log. A nil database disables it.
type Recorder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecorder creates a recorder. Pass a nil db to disable recording.
func NewRecorder(db *gorm.DB, logger *zap.Logger) *Recorder {
	return &Recorder{db: db, logger: logger}
}

// Enabled reports whether the recorder has a database to write to.
func (r *Recorder) Enabled() bool {
	return r != nil && r.db != nil
}

// Migrate creates or updates the scan log schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&ScanRecord{}); err != nil {
		return fmt.Errorf("failed to migrate scan log: %w", err)
	}
	return nil
}

// Record stores one reconciliation plan.
func (r *Recorder) Record(ctx context.Context, plan *reconcile.Plan, imageKey string) error {
	if !r.Enabled() || plan == nil {
		return nil
	}

	changes, err := json.Marshal(plan.Changes)
	if err != nil {
		return fmt.Errorf("failed to encode changes: %w", err)
	}
	audit, err := json.Marshal(plan.Audit)
	if err != nil {
		return fmt.Errorf("failed to encode audit: %w", err)
	}

	record := &ScanRecord{
		BatchID:    plan.BatchID,
		Observed:   plan.Observed,
		Applied:    len(plan.ByOutcome(reconcile.OutcomeApplied)),
		Overridden: len(plan.ByOutcome(reconcile.OutcomeOverridden)),
		Discarded:  len(plan.ByOutcome(reconcile.OutcomeDiscarded)),
		Unresolved: len(plan.ByOutcome(reconcile.OutcomeUnresolved)),
		Changes:    string(changes),
		Audit:      string(audit),
		ImageKey:   imageKey,
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to record scan: %w", err)
	}

	r.logger.Debug("scan recorded",
		zap.String("batch_id", plan.BatchID),
		zap.Int("applied", record.Applied))
	return nil
}

// Recent returns the newest records, newest first.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]ScanRecord, error) {
	if !r.Enabled() {
		return []ScanRecord{}, nil
	}

	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	var records []ScanRecord
	err := r.db.WithContext(ctx).
		Order("observed_at desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read scan log: %w", err)
	}
	return records, nil
}
