//go:build cgo && linux

package ocr

import (
	"context"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine recognizes text through the native Tesseract bindings.
// It requires the tesseract and leptonica libraries plus the language's
// traineddata to be installed on the system.
type TesseractEngine struct{}

// NewTesseractEngine returns the native Tesseract engine.
func NewTesseractEngine() (Engine, error) {
	return &TesseractEngine{}, nil
}

// Version returns the installed Tesseract version string.
func (e *TesseractEngine) Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}

// Recognize runs Tesseract over the PNG-encoded image and returns the
// recognized text grouped into lines.
//
// Line-level confidence comes from Tesseract's RIL_TEXTLINE iterator. If
// line extraction fails the full text is still returned with an empty
// Lines slice; only a failure of the base recognition pass is an error.
func (e *TesseractEngine) Recognize(ctx context.Context, png []byte, language string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if language != "" {
		if err := client.SetLanguage(language); err != nil {
			return nil, ocrErrors.NewWithCause(ErrRecognitionFailed, err).WithDetail("language", language)
		}
	}

	if err := client.SetImageFromBytes(png); err != nil {
		return nil, ocrErrors.NewWithCause(ErrRecognitionFailed, err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, ocrErrors.NewWithCause(ErrRecognitionFailed, err)
	}

	result := &Result{FullText: text}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return result, nil
	}
	for _, box := range boxes {
		line := strings.TrimSpace(box.Word)
		if line == "" {
			continue
		}
		result.Lines = append(result.Lines, Line{
			Text:       line,
			Confidence: float64(box.Confidence) / 100.0,
		})
	}

	return result, nil
}
