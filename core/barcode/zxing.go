package barcode

import (
	"context"
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/multi"

	"fridge-manager/core/imaging"
)

// formatNames maps config names to gozxing symbologies.
var formatNames = map[string]gozxing.BarcodeFormat{
	"ean13":   gozxing.BarcodeFormat_EAN_13,
	"ean8":    gozxing.BarcodeFormat_EAN_8,
	"upca":    gozxing.BarcodeFormat_UPC_A,
	"upce":    gozxing.BarcodeFormat_UPC_E,
	"code128": gozxing.BarcodeFormat_CODE_128,
	"code39":  gozxing.BarcodeFormat_CODE_39,
	"qr":      gozxing.BarcodeFormat_QR_CODE,
}

// ZxingScanner decodes 1D and QR codes with gozxing.
type ZxingScanner struct {
	cfg   Config
	hints map[gozxing.DecodeHintType]interface{}
}

// NewZxingScanner builds a scanner restricted to the configured formats.
func NewZxingScanner(cfg Config) *ZxingScanner {
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	if formats := parseFormats(cfg.Formats); len(formats) > 0 {
		hints[gozxing.DecodeHintType_POSSIBLE_FORMATS] = formats
	}
	return &ZxingScanner{cfg: cfg, hints: hints}
}

func parseFormats(list string) []gozxing.BarcodeFormat {
	var formats []gozxing.BarcodeFormat
	for _, name := range strings.Split(list, ",") {
		if format, ok := formatNames[strings.TrimSpace(strings.ToLower(name))]; ok {
			formats = append(formats, format)
		}
	}
	return formats
}

// Scan decodes all barcodes in the frame. A frame without any codes returns
// an empty slice. When the upright pass finds nothing and try_rotate is set,
// the frame is retried rotated 90 degrees and the hit coordinates are mapped
// back into the original orientation.
func (s *ZxingScanner) Scan(ctx context.Context, frame *imaging.Frame) ([]Code, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results, err := s.decode(frame.Image)
	if err != nil {
		return nil, err
	}
	codes := s.collect(results, frame.Width, frame.Height, uprightPoint)

	if len(codes) == 0 && s.cfg.TryRotate {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results, err = s.decode(imaging.Rotate90(frame.Image))
		if err != nil {
			return nil, err
		}
		codes = s.collect(results, frame.Width, frame.Height, rotatedPoint(frame.Height))
	}

	return dedupe(codes), nil
}

// decode runs one gozxing pass over an image. A NotFoundException means the
// image simply has no codes and is not treated as a failure.
func (s *ZxingScanner) decode(img image.Image) ([]*gozxing.Result, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("binarizing frame: %w", err)
	}

	reader := multi.NewGenericMultipleBarcodeReader(gozxing.NewMultiFormatReader())
	results, err := reader.DecodeMultiple(bmp, s.hints)
	if err != nil {
		if _, ok := err.(gozxing.NotFoundException); ok {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding barcodes: %w", err)
	}
	return results, nil
}

func (s *ZxingScanner) collect(results []*gozxing.Result, width, height int, transform func(x, y float64) (float64, float64)) []Code {
	codes := make([]Code, 0, len(results))
	for _, result := range results {
		payload := strings.TrimSpace(result.GetText())
		if payload == "" {
			continue
		}
		codes = append(codes, Code{
			Payload: payload,
			Format:  result.GetBarcodeFormat().String(),
			Box:     pointsBox(result.GetResultPoints(), width, height, transform),
		})
	}
	return codes
}

// uprightPoint is the identity transform for the first pass.
func uprightPoint(x, y float64) (float64, float64) {
	return x, y
}

// rotatedPoint maps a coordinate in the 90 degree clockwise rotation back to
// the original frame, inverting imaging.Rotate90.
func rotatedPoint(height int) func(x, y float64) (float64, float64) {
	return func(x, y float64) (float64, float64) {
		return y, float64(height-1) - x
	}
}

// pointsBox bounds the transformed result points. Results without points get
// a frame sized box so downstream annotation still has something to draw.
func pointsBox(points []gozxing.ResultPoint, width, height int, transform func(x, y float64) (float64, float64)) imaging.Box {
	if len(points) == 0 {
		return imaging.Box{X: 0, Y: 0, W: width, H: height}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, point := range points {
		x, y := transform(point.GetX(), point.GetY())
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	box := imaging.Box{
		X: int(minX),
		Y: int(minY),
		W: int(maxX-minX) + 1,
		H: int(maxY-minY) + 1,
	}
	if box.X < 0 {
		box.X = 0
	}
	if box.Y < 0 {
		box.Y = 0
	}
	return box
}

// dedupe drops repeated payloads, keeping the first hit. The same physical
// code can be reported twice when it sits on a region boundary.
func dedupe(codes []Code) []Code {
	seen := make(map[string]struct{}, len(codes))
	out := codes[:0]
	for _, code := range codes {
		if _, ok := seen[code.Payload]; ok {
			continue
		}
		seen[code.Payload] = struct{}{}
		out = append(out, code)
	}
	return out
}
