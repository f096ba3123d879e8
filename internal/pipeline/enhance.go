package pipeline

import (
	"image"

	"github.com/heitorfelix/scanprep/internal/imaging"
)

// Artifact labels for each enhancement stage, in execution order. The
// numbering is part of the on-disk contract with existing tooling that
// inspects artifact directories, ordering quirks included: histogram
// equalization has carried the 21_threshold label since the pipeline's
// first version.
const (
	LabelOriginal  = "original"
	LabelGray      = "1_gray"
	LabelEqualized = "21_threshold"
	LabelThreshold = "2_threshold"
	LabelDenoised  = "3_denoised"
	LabelEnhanced  = "4_enhanced"
	LabelSharpened = "5_sharpened"
	LabelDilated   = "6_dilated"
	LabelFinal     = "7_final"
)

// StageLabels lists the enhancement stage labels in execution order,
// excluding the orchestrator-written original.
var StageLabels = []string{
	LabelGray,
	LabelEqualized,
	LabelThreshold,
	LabelDenoised,
	LabelEnhanced,
	LabelSharpened,
	LabelDilated,
	LabelFinal,
}

// Enhancer runs the ordered sequence of enhancement stages that turns a
// (possibly rotation-corrected) document photo into an OCR-ready image.
//
// Stages, in order: grayscale, histogram equalization, Otsu threshold,
// denoising, tile-local contrast enhancement, sharpening, dilation and a
// final Gaussian blur. Every stage result is persisted as an artifact;
// the next stage always consumes the in-memory value, never a disk
// round-trip.
type Enhancer struct {
	// ReturnStage selects which stage's output the pipeline hands back
	// for OCR submission. The default is LabelEnhanced: the sharpening,
	// dilation and blur stages are computed and persisted for diagnosis
	// but their outputs are not chained into the returned image. That
	// behavior is deliberate and matches what this pipeline has always
	// shipped; flag it to the product owner before changing the default
	// rather than quietly "fixing" it here.
	ReturnStage string

	// DenoiseStrength is the non-local-means filter strength (h).
	DenoiseStrength float64

	// CLAHE parameters for the local contrast stage.
	ClipLimit float64
	TileGrid  int
}

// NewEnhancer returns an enhancer with the pipeline's standard stage
// parameters: denoise strength 10, CLAHE clip limit 2.0 on an 8x8 grid,
// returning the contrast-enhanced stage.
func NewEnhancer() *Enhancer {
	return &Enhancer{
		ReturnStage:     LabelEnhanced,
		DenoiseStrength: 10,
		ClipLimit:       2.0,
		TileGrid:        8,
	}
}

// Run executes all stages on img, persisting each result through store
// under the given run timestamp, and returns the image selected by
// ReturnStage.
//
// Artifacts written before a failure remain on disk; the error reports
// which stage could not be persisted.
func (e *Enhancer) Run(img image.Image, store *ArtifactStore, stamp string) (*image.Gray, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, prepErrors.NewWithMessage(ErrStageFailed, "enhancement input image is empty")
	}

	returnStage := e.ReturnStage
	if returnStage == "" {
		returnStage = LabelEnhanced
	}

	var selected *image.Gray
	keep := func(label string, img *image.Gray) {
		if label == returnStage {
			selected = img
		}
	}

	gray := imaging.Grayscale(img)
	if _, err := store.Save(stamp, LabelGray, gray); err != nil {
		return nil, err
	}
	keep(LabelGray, gray)

	equalized := imaging.EqualizeHist(gray)
	if _, err := store.Save(stamp, LabelEqualized, equalized); err != nil {
		return nil, err
	}
	keep(LabelEqualized, equalized)

	binary, _ := imaging.OtsuThreshold(equalized)
	if _, err := store.Save(stamp, LabelThreshold, binary); err != nil {
		return nil, err
	}
	keep(LabelThreshold, binary)

	denoised := imaging.DenoiseNLM(binary, e.DenoiseStrength)
	if _, err := store.Save(stamp, LabelDenoised, denoised); err != nil {
		return nil, err
	}
	keep(LabelDenoised, denoised)

	enhanced := imaging.CLAHE(denoised, e.ClipLimit, e.TileGrid, e.TileGrid)
	if _, err := store.Save(stamp, LabelEnhanced, enhanced); err != nil {
		return nil, err
	}
	keep(LabelEnhanced, enhanced)

	sharpened := imaging.Sharpen(enhanced)
	if _, err := store.Save(stamp, LabelSharpened, sharpened); err != nil {
		return nil, err
	}
	keep(LabelSharpened, sharpened)

	dilated := imaging.Dilate2x2(sharpened)
	if _, err := store.Save(stamp, LabelDilated, dilated); err != nil {
		return nil, err
	}
	keep(LabelDilated, dilated)

	final := imaging.GaussianBlur(dilated, 1)
	if _, err := store.Save(stamp, LabelFinal, final); err != nil {
		return nil, err
	}
	keep(LabelFinal, final)

	if selected == nil {
		return nil, prepErrors.NewWithMessage(ErrStageFailed, "unknown return stage "+returnStage)
	}
	return selected, nil
}
