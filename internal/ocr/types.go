package ocr

import (
	"context"
	"net/http"

	"github.com/Abraxas-365/craftable/errx"
)

// Line is one recognized line of text.
type Line struct {
	// Text is the recognized content.
	Text string `json:"text"`

	// Confidence is the engine's confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`
}

// Result contains the outcome of a completed read operation.
type Result struct {
	// Lines are the recognized text lines in reading order. May be
	// empty when the engine cannot produce line-level results; FullText
	// is always populated when any text was found.
	Lines []Line `json:"lines"`

	// FullText is all recognized text with the engine's original
	// spacing and newlines.
	FullText string `json:"full_text"`
}

// Engine recognizes text in a PNG-encoded image. Implementations must be
// safe for sequential reuse; they are not required to be safe for
// concurrent calls.
type Engine interface {
	Recognize(ctx context.Context, png []byte, language string) (*Result, error)
}

// Error registry for the OCR collaborator.
var (
	ocrErrors = errx.NewRegistry("OCR")

	// ErrEngineUnavailable means no recognition engine is compiled into
	// this binary (CGO disabled or unsupported platform).
	ErrEngineUnavailable = ocrErrors.Register("ENGINE_UNAVAILABLE", errx.TypeUnavailable, http.StatusServiceUnavailable, "no OCR engine available in this build")

	// ErrRecognitionFailed wraps engine-level recognition failures.
	ErrRecognitionFailed = ocrErrors.Register("RECOGNITION_FAILED", errx.TypeExternal, http.StatusBadGateway, "text recognition failed")
)
