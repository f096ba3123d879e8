//go:build !cgo || !linux

package ocr

// NewTesseractEngine reports that no native engine is compiled into this
// binary. Builds without CGO (or off Linux) can still run the full
// preprocessing pipeline; only recognition is unavailable.
func NewTesseractEngine() (Engine, error) {
	return nil, ocrErrors.New(ErrEngineUnavailable)
}
