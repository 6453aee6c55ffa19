package vision

// Config holds configuration for the detector backend.
type Config struct {
	// Backend selects the detection backend (http, rekognition).
	Backend string `mapstructure:"backend" default:"http"`
	// Endpoint is the detect URL of the model-serving sidecar (http backend).
	Endpoint string `mapstructure:"endpoint" default:"http://localhost:8500/detect"`
	// HealthEndpoint is the sidecar's health URL, probed once at startup.
	HealthEndpoint string `mapstructure:"health_endpoint" default:"http://localhost:8500/health"`
	// MinConfidence drops detections below this score before returning.
	MinConfidence float64 `mapstructure:"min_confidence" default:"0.20"`
	// TimeoutSeconds bounds one inference call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxLabels caps the number of labels requested from Rekognition.
	MaxLabels int `mapstructure:"max_labels" default:"25"`
	// Region is the AWS region for the Rekognition backend.
	Region string `mapstructure:"region" default:"us-east-1"`
}

const (
	BackendHTTP        = "http"
	BackendRekognition = "rekognition"
)

// IsValidBackend checks if the configured backend is valid.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendHTTP, BackendRekognition:
		return true
	default:
		return false
	}
}
