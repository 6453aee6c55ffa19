package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"
)

// ErrInvalidImage indicates the input bytes are not a usable image.
// All validation failures in Decode wrap this sentinel.
var ErrInvalidImage = errors.New("invalid image")

// MaxImageBytes is the largest accepted upload. Anything bigger is rejected
// before decoding to keep memory bounded.
const MaxImageBytes = 16 << 20

// jpegQuality is used when re-encoding annotated frames.
const jpegQuality = 85

// Box is an axis-aligned bounding box in image pixel coordinates.
type Box struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Frame is a decoded image together with the original upload bytes.
type Frame struct {
	// Bytes is the original, unmodified upload.
	Bytes []byte
	// Image is the decoded pixel data.
	Image image.Image
	// Width and Height are the decoded dimensions in pixels.
	Width  int
	Height int
	// Format is the detected encoding ("jpeg", "png", "gif").
	Format string
}

// Decode validates and decodes raw upload bytes into a Frame.
// It fails with an error wrapping ErrInvalidImage when the input is empty,
// oversized, undecodable, or has zero width/height.
func Decode(data []byte) (*Frame, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidImage)
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrInvalidImage, len(data), MaxImageBytes)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: degenerate dimensions %dx%d", ErrInvalidImage, bounds.Dx(), bounds.Dy())
	}

	return &Frame{
		Bytes:  data,
		Image:  img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}, nil
}

// Rotate90 returns a copy of img rotated 90 degrees clockwise.
// Barcode decoding uses it to retry vertically oriented labels.
func Rotate90(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(h-1-y, x, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// Annotate returns a copy of img with each box outlined.
// Boxes are clamped to the image bounds; out-of-frame boxes are skipped.
func Annotate(img image.Image, boxes []Box) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	outline := color.RGBA{R: 46, G: 204, B: 64, A: 255}
	const thickness = 3

	for _, box := range boxes {
		x0, y0 := clamp(box.X, 0, b.Dx()), clamp(box.Y, 0, b.Dy())
		x1, y1 := clamp(box.X+box.W, 0, b.Dx()), clamp(box.Y+box.H, 0, b.Dy())
		if x1 <= x0 || y1 <= y0 {
			continue
		}
		for t := 0; t < thickness; t++ {
			for x := x0; x < x1; x++ {
				setIfInside(dst, x, y0+t, outline)
				setIfInside(dst, x, y1-1-t, outline)
			}
			for y := y0; y < y1; y++ {
				setIfInside(dst, x0+t, y, outline)
				setIfInside(dst, x1-1-t, y, outline)
			}
		}
	}
	return dst
}

// EncodeJPEG serializes img as a JPEG suitable for archiving.
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func setIfInside(dst *image.RGBA, x, y int, c color.Color) {
	if image.Pt(x, y).In(dst.Bounds()) {
		dst.Set(x, y, c)
	}
}
