package status

import (
	"context"
	"fmt"
	"time"

	"fridge-manager/core/history"
	"fridge-manager/core/pantry"
	"fridge-manager/core/storage"
	"fridge-manager/core/vision"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ComponentStatus is the probe result for one backend.
type ComponentStatus struct {
	Status string `json:"status"` // "ok", "error", "disabled"
	Detail string `json:"detail,omitempty"`
}

// Report aggregates the probe results. Healthy stays true as long as no
// component reports an error; disabled components do not count against it.
type Report struct {
	Healthy    bool                       `json:"healthy"`
	Components map[string]ComponentStatus `json:"components"`
	CheckedAt  time.Time                  `json:"checked_at"`
}

// Service runs the backend probes.
type Service struct {
	detector      vision.Detector
	client        storage.Client
	bucket        string
	db            *gorm.DB
	store         *pantry.Store
	lookupEnabled bool
	logger        *zap.Logger
}

// NewService creates a new status service. client and db may be nil when
// the corresponding backend is not configured.
func NewService(detector vision.Detector, client storage.Client, bucket string, db *gorm.DB, store *pantry.Store, lookupEnabled bool, logger *zap.Logger) *Service {
	return &Service{
		detector:      detector,
		client:        client,
		bucket:        bucket,
		db:            db,
		store:         store,
		lookupEnabled: lookupEnabled,
		logger:        logger,
	}
}

// Check probes every backend and returns the combined report.
func (s *Service) Check(ctx context.Context) Report {
	components := map[string]ComponentStatus{
		"vision":   s.checkVision(ctx),
		"storage":  s.checkStorage(ctx),
		"database": s.checkDatabase(ctx),
		"catalog":  s.checkCatalog(),
		"pantry":   s.checkPantry(),
	}

	healthy := true
	for _, c := range components {
		if c.Status == "error" {
			healthy = false
		}
	}

	return Report{
		Healthy:    healthy,
		Components: components,
		CheckedAt:  time.Now().UTC(),
	}
}

func (s *Service) checkVision(ctx context.Context) ComponentStatus {
	if err := s.detector.Health(ctx); err != nil {
		return ComponentStatus{Status: "error", Detail: err.Error()}
	}
	return ComponentStatus{Status: "ok"}
}

func (s *Service) checkStorage(ctx context.Context) ComponentStatus {
	if s.client == nil {
		return ComponentStatus{Status: "disabled", Detail: "object storage is not configured"}
	}
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return ComponentStatus{Status: "error", Detail: err.Error()}
	}
	if !exists {
		return ComponentStatus{Status: "error", Detail: fmt.Sprintf("bucket %q does not exist", s.bucket)}
	}
	return ComponentStatus{Status: "ok"}
}

func (s *Service) checkDatabase(ctx context.Context) ComponentStatus {
	if s.db == nil {
		return ComponentStatus{Status: "disabled", Detail: "no database configured"}
	}
	var records int64
	if err := s.db.WithContext(ctx).Model(&history.ScanRecord{}).Count(&records).Error; err != nil {
		return ComponentStatus{Status: "error", Detail: err.Error()}
	}
	return ComponentStatus{Status: "ok", Detail: fmt.Sprintf("%d scan batches recorded", records)}
}

func (s *Service) checkCatalog() ComponentStatus {
	if !s.lookupEnabled {
		return ComponentStatus{Status: "disabled", Detail: "product lookup is not enabled"}
	}
	return ComponentStatus{Status: "ok"}
}

func (s *Service) checkPantry() ComponentStatus {
	snap := s.store.Snapshot()
	return ComponentStatus{
		Status: "ok",
		Detail: fmt.Sprintf("%d items, %d units", len(snap.Items), snap.Total),
	}
}
