package products

import (
	"context"

	"go.uber.org/zap"

	"fridge-manager/core/catalog"
)

// Service looks up packaged products by barcode payload.
type Service struct {
	lookup *catalog.OpenFoodFacts
	logger *zap.Logger
}

// NewService creates a new product lookup service.
func NewService(lookup *catalog.OpenFoodFacts, logger *zap.Logger) *Service {
	return &Service{lookup: lookup, logger: logger}
}

// GetProduct fetches product metadata for a barcode payload.
func (s *Service) GetProduct(ctx context.Context, code string) (*catalog.Product, error) {
	return s.lookup.Lookup(ctx, code)
}
