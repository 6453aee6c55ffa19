package scan

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"fridge-manager/core/barcode"
	"fridge-manager/core/catalog"
	"fridge-manager/core/reconcile"
	"fridge-manager/core/utils"
	"fridge-manager/core/vision"
)

// ProductLookup resolves barcode payloads against a product database.
type ProductLookup interface {
	Lookup(ctx context.Context, code string) (*catalog.Product, error)
}

// Normalizer turns raw detections and decoded barcodes into observations.
type Normalizer struct {
	resolver *catalog.Resolver
	lookup   ProductLookup
	logger   *zap.Logger
}

// NewNormalizer creates a normalizer. A nil lookup disables remote product
// lookups; unknown codes then stay unresolved until an operator binds them.
func NewNormalizer(resolver *catalog.Resolver, lookup ProductLookup, logger *zap.Logger) *Normalizer {
	return &Normalizer{resolver: resolver, lookup: lookup, logger: logger}
}

// Normalize stamps every piece of evidence from one frame with the batch
// time and resolves identities where it can. Each detection box and each
// decoded code becomes one observation with count 1; the engine does the
// summing.
func (n *Normalizer) Normalize(ctx context.Context, detections []vision.Detection, codes []barcode.Code, observed time.Time) []reconcile.Observation {
	observations := make([]reconcile.Observation, 0, len(detections)+len(codes))
	for _, detection := range detections {
		observations = append(observations, n.fromDetection(detection, observed))
	}
	for _, code := range codes {
		observations = append(observations, n.fromCode(ctx, code, observed))
	}
	return observations
}

func (n *Normalizer) fromDetection(detection vision.Detection, observed time.Time) reconcile.Observation {
	raw := utils.NormalizeLabel(detection.Label)
	obs := reconcile.Observation{
		Raw:        raw,
		Count:      1,
		Source:     reconcile.SourceVision,
		Confidence: detection.Confidence,
		Observed:   observed,
	}

	if binding, ok := n.resolver.ResolveLabel(raw); ok {
		obs.Identity = binding.Identity
		obs.Category = binding.Category
		obs.Expires = catalog.ExpiryFor(binding.Category, observed)
	}
	return obs
}

// fromCode resolves a payload locally first, then through the remote
// lookup. A successful lookup binds the code so later scans stay local.
// Decodes are exact, so barcode observations carry confidence 1.
func (n *Normalizer) fromCode(ctx context.Context, code barcode.Code, observed time.Time) reconcile.Observation {
	obs := reconcile.Observation{
		Raw:        code.Payload,
		Count:      1,
		Source:     reconcile.SourceBarcode,
		Confidence: 1,
		Observed:   observed,
	}

	binding, ok := n.resolver.ResolveCode(code.Payload)
	if !ok && n.lookup != nil {
		product, err := n.lookup.Lookup(ctx, code.Payload)
		switch {
		case err == nil:
			derived := product.Binding()
			binding = n.resolver.BindCode(code.Payload, derived.Identity, derived.Name, derived.Category)
			ok = true
			n.logger.Info("barcode bound from product lookup",
				zap.String("code", code.Payload),
				zap.String("identity", binding.Identity))
		case errors.Is(err, catalog.ErrProductNotFound):
			n.logger.Debug("barcode unknown to product database", zap.String("code", code.Payload))
		default:
			n.logger.Warn("product lookup failed",
				zap.String("code", code.Payload),
				zap.Error(err))
		}
	}

	if ok {
		obs.Identity = binding.Identity
		obs.Category = binding.Category
		obs.Expires = catalog.ExpiryFor(binding.Category, observed)
	}
	return obs
}
