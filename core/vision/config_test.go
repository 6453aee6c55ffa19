package vision_test

import (
	"testing"

	"fridge-manager/core/vision"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidBackend(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		want    bool
	}{
		{"HTTP", vision.BackendHTTP, true},
		{"Rekognition", vision.BackendRekognition, true},
		{"Invalid", "invalid", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := vision.Config{Backend: tt.backend}
			assert.Equal(t, tt.want, c.IsValidBackend())
		})
	}
}
