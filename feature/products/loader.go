package products

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"fridge-manager/core/catalog"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates the products feature.
func NewFeature(cfg catalog.Config, logger *zap.Logger) *Feature {
	svc := NewService(catalog.NewOpenFoodFacts(cfg), logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h, enabled: cfg.LookupEnabled}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "products"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
