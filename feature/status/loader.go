package status

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"fridge-manager/core/pantry"
	"fridge-manager/core/storage"
	"fridge-manager/core/vision"

	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the status feature.
func NewFeature(detector vision.Detector, client storage.Client, bucket string,
	db *gorm.DB, store *pantry.Store, lookupEnabled bool, logger *zap.Logger) *Feature {
	svc := NewService(detector, client, bucket, db, store, lookupEnabled, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "status"
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
