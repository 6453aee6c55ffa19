package scan

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"fridge-manager/core/barcode"
	"fridge-manager/core/history"
	"fridge-manager/core/pantry"
	"fridge-manager/core/reconcile"
	"fridge-manager/core/vision"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the scan feature.
func NewFeature(detector vision.Detector, scanner barcode.Scanner, normalizer *Normalizer,
	engine *reconcile.Engine, store *pantry.Store, archive *Archive,
	recorder *history.Recorder, logger *zap.Logger) *Feature {
	svc := NewService(detector, scanner, normalizer, engine, store, archive, recorder, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "scan"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
