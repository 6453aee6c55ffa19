package reconcile

// Config holds the per-source confidence thresholds.
type Config struct {
	// VisionThreshold is the minimum confidence for vision observations.
	VisionThreshold float64 `mapstructure:"vision_threshold" default:"0.5"`
	// BarcodeThreshold is the minimum confidence for barcode observations.
	// Barcode decodes carry confidence 1.0, so this mostly exists as a knob
	// to reject them wholesale by raising it above 1.
	BarcodeThreshold float64 `mapstructure:"barcode_threshold" default:"0.25"`
}

// ThresholdFor returns the effective confidence threshold for a source.
// Manual observations are trusted and never filtered.
func (c Config) ThresholdFor(s Source) float64 {
	switch s {
	case SourceVision:
		return c.VisionThreshold
	case SourceBarcode:
		return c.BarcodeThreshold
	default:
		return 0
	}
}
