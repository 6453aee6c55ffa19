// Package vision provides the object-detection component of the scan pipeline.
//
// A Detector turns a decoded frame into raw detections: label, confidence,
// bounding box. Detection is stateless between calls and read-only with
// respect to the frame; the configured minimum confidence is applied before
// results are returned.
//
// # Backends
//
// Two backends implement the Detector interface:
//
//   - HTTP: posts the frame to a model-serving sidecar (the default). The
//     sidecar owns the model weights; this process never loads them. The
//     sidecar is health-probed once at startup.
//   - Rekognition: AWS Rekognition DetectLabels. Label instances map to one
//     detection per bounding box; instance-less labels map to a single
//     full-frame detection.
//
// # Failure Modes
//
// Backend failures (unreachable, non-200, malformed response) wrap
// ErrInference. The detector never retries; retry policy belongs to callers.
package vision
