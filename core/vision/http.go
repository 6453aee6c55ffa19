package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"fridge-manager/core/imaging"
)

// HTTPDetector posts frames to a model-serving sidecar.
// The sidecar owns the model weights; this process only ships bytes.
type HTTPDetector struct {
	cfg    Config
	client *http.Client
}

// NewHTTPDetector creates the HTTP backend with a bounded request timeout.
func NewHTTPDetector(cfg Config) *HTTPDetector {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &HTTPDetector{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// detectResponse is the sidecar's wire format.
type detectResponse struct {
	Detections []Detection `json:"detections"`
}

// Detect posts the frame as a multipart upload and decodes the detection list.
func (d *HTTPDetector) Detect(ctx context.Context, frame *imaging.Frame) ([]Detection, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", "frame."+frame.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}
	if _, err := part.Write(frame.Bytes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.Endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: sidecar returned status %d", ErrInference, resp.StatusCode)
	}

	var out detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrInference, err)
	}

	return filterByConfidence(out.Detections, d.cfg.MinConfidence), nil
}

// Health probes the sidecar's health endpoint.
func (d *HTTPDetector) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.cfg.HealthEndpoint, nil)
	if err != nil {
		return err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sidecar unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sidecar health returned status %d", resp.StatusCode)
	}
	return nil
}
