package inventory

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"fridge-manager/core/catalog"
	"fridge-manager/core/history"
	"fridge-manager/core/pantry"
	"fridge-manager/core/reconcile"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the inventory feature.
func NewFeature(store *pantry.Store, engine *reconcile.Engine, resolver *catalog.Resolver,
	recorder *history.Recorder, logger *zap.Logger) *Feature {
	svc := NewService(store, engine, resolver, recorder, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "pantry"
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
