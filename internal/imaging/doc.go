// Package imaging provides the image-domain primitives behind the OCR
// preprocessing pipeline.
//
// The package covers byte-stream decoding and PNG encoding, grayscale
// conversion, global and tile-local contrast operations, Otsu
// binarization, denoising, sharpening, morphology, Gaussian smoothing,
// Canny edge detection and center rotation. Every operation returns a
// fresh buffer and never mutates its input, so pipeline stages can keep
// references to earlier results.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left
// corner; X increases rightward and Y increases downward. Edge masks
// returned by DetectEdges are indexed mask[y][x] relative to the image
// bounds.
//
// # Dimension Preservation
//
// No operation in this package resizes: output width and height always
// equal the input's, including Rotate, which fills uncovered corners by
// border replication rather than growing the canvas.
//
// # Channel Model
//
// Color inputs are accepted wherever image.Image appears; grayscale
// operations take and return *image.Gray (exactly one 8-bit channel).
// Grayscale collapses any channel count to one using ITU-R BT.601
// luminance weights.
package imaging
