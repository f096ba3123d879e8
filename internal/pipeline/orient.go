package pipeline

import (
	"image"

	"github.com/heitorfelix/scanprep/internal/detection"
	"github.com/heitorfelix/scanprep/internal/imaging"
)

// Default parameters for skew detection: Canny hysteresis thresholds and
// the Hough accumulator vote minimum. 200 votes asks for a line feature
// at least 200 edge pixels long, which filters out short stroke edges on
// photos of full pages.
const (
	DefaultCannyLow      = 50
	DefaultCannyHigh     = 150
	DefaultVoteThreshold = 200
)

// OrientationCorrector straightens a photographed document by measuring
// the dominant angle of its straight-line features and rotating the image
// to cancel it.
type OrientationCorrector struct {
	// CannyLow and CannyHigh are the edge detector's hysteresis
	// thresholds on the 0-255 scale.
	CannyLow  int
	CannyHigh int

	// VoteThreshold is the minimum Hough accumulator count for a line
	// candidate. Lower it for small images whose lines cannot collect
	// many votes.
	VoteThreshold int
}

// NewOrientationCorrector returns a corrector with the default detection
// parameters.
func NewOrientationCorrector() *OrientationCorrector {
	return &OrientationCorrector{
		CannyLow:      DefaultCannyLow,
		CannyHigh:     DefaultCannyHigh,
		VoteThreshold: DefaultVoteThreshold,
	}
}

// Correct estimates the skew of img and returns a version rotated so the
// dominant line feature is horizontal, along with the skew angle that was
// measured (degrees).
//
// Detection runs on a grayscale copy; the rotation is applied to the
// original color image, preserving its dimensions and channel count.
// When no line candidates are found the input image is returned as-is
// with a zero angle; an undetectable orientation is a defined fallback,
// not a failure.
func (oc *OrientationCorrector) Correct(img image.Image) (image.Image, float64) {
	gray := imaging.Grayscale(img)
	edges := imaging.DetectEdges(gray, oc.CannyLow, oc.CannyHigh)
	lines := detection.HoughLines(edges, oc.VoteThreshold)

	angle, ok := detection.EstimateSkew(lines)
	if !ok {
		return img, 0
	}

	return imaging.Rotate(img, angle), angle
}
