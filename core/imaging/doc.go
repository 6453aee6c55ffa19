// Package imaging provides image decoding and validation for the scan pipeline.
//
// Every image entering the system passes through Decode, which turns raw upload
// bytes into a Frame: the decoded pixels plus the original bytes side by side.
// Detector backends post the original bytes, the barcode reader walks the pixels,
// and the archive re-encodes an annotated copy, so both representations are kept.
//
// # Validation
//
// Decode rejects inputs that cannot be decoded, exceed MaxImageBytes, or have
// degenerate dimensions. All rejections wrap ErrInvalidImage so callers can map
// them to a client error with errors.Is.
//
// # Drawing
//
// Annotate outlines detection boxes on a copy of the frame for the archived
// "what the model saw" snapshot. It never mutates the source image.
package imaging
