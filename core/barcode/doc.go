// Package barcode decodes product barcodes out of shelf photos.
//
// # Scanning
//
// The Scanner interface hides the decoding library. The production
// implementation is ZxingScanner, built on the gozxing port of the ZXing
// core. A single frame can carry several codes, so scanning always returns
// a slice and an empty result is not an error.
//
// # Rotation
//
// Linear symbologies only decode along horizontal scan lines. Packaging is
// frequently photographed on its side, so when the upright pass finds
// nothing the scanner can retry the frame rotated 90 degrees. Box
// coordinates from the rotated pass are mapped back into the original
// frame before they are returned.
package barcode
