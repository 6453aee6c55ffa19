package barcode

import (
	"context"

	"fridge-manager/core/imaging"
)

// Code is one decoded barcode.
type Code struct {
	// Payload is the decoded text, e.g. the EAN digits.
	Payload string `json:"payload"`
	// Format names the symbology, e.g. "EAN_13".
	Format string `json:"format"`
	// Box locates the code within the original frame.
	Box imaging.Box `json:"box"`
}

// Scanner decodes every barcode visible in a frame.
type Scanner interface {
	Scan(ctx context.Context, frame *imaging.Frame) ([]Code, error)
}
