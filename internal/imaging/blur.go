package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
)

// GaussianBlur applies a small Gaussian smoothing pass to a grayscale
// image. A radius of 1 produces a 3x3 kernel, which is enough to soften
// the hard staircase edges left behind by thresholding and dilation
// without washing out stroke detail.
func GaussianBlur(src *image.Gray, radius float64) *image.Gray {
	if radius <= 0 {
		radius = 1
	}
	return Grayscale(blur.Gaussian(src, radius))
}
