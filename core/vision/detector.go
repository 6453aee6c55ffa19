package vision

import (
	"context"
	"errors"
	"fmt"

	"fridge-manager/core/imaging"
)

// ErrInference indicates the detection backend failed.
// Fatal to the call; the pipeline surfaces it unchanged and never retries.
var ErrInference = errors.New("inference failed")

// Detection is one raw model output. Ephemeral: produced per call, never
// persisted.
type Detection struct {
	// Label is the raw class name reported by the model.
	Label string `json:"label"`
	// Confidence is the model score in [0,1].
	Confidence float64 `json:"confidence"`
	// Box is the bounding box in image pixel coordinates.
	Box imaging.Box `json:"box"`
}

// Detector runs object detection over a single frame.
// Implementations are stateless between calls and apply the configured
// minimum confidence before returning.
type Detector interface {
	// Detect returns the detections for the frame, already threshold-filtered.
	Detect(ctx context.Context, frame *imaging.Frame) ([]Detection, error)
	// Health probes the backend. Called once at startup to verify the
	// inference resource is actually available.
	Health(ctx context.Context) error
}

// New builds the configured detector backend.
func New(ctx context.Context, cfg Config) (Detector, error) {
	switch cfg.Backend {
	case BackendHTTP:
		return NewHTTPDetector(cfg), nil
	case BackendRekognition:
		return NewRekognitionDetector(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported vision backend: %q", cfg.Backend)
	}
}

// filterByConfidence drops detections below the threshold in place order.
func filterByConfidence(dets []Detection, min float64) []Detection {
	kept := dets[:0]
	for _, d := range dets {
		if d.Confidence >= min {
			kept = append(kept, d)
		}
	}
	return kept
}
