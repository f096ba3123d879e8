package imaging

import (
	"image"
)

// OtsuThreshold binarizes a grayscale image using Otsu's method.
//
// The threshold is chosen automatically by maximizing the between-class
// variance of the intensity histogram; pixels strictly above the threshold
// map to 255 and all others to 0, so the output contains exactly the two
// values {0, 255}.
//
// The selected threshold level is returned alongside the binary image.
func OtsuThreshold(src *image.Gray) (*image.Gray, uint8) {
	bounds := src.Bounds()
	total := bounds.Dx() * bounds.Dy()
	out := image.NewGray(bounds)
	if total == 0 {
		return out, 0
	}

	var hist [256]float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[src.Pix[src.PixOffset(x, y)]]++
		}
	}
	for i := range hist {
		hist[i] /= float64(total)
	}

	level := otsuLevel(hist[:])

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if src.Pix[src.PixOffset(x, y)] > level {
				out.Pix[out.PixOffset(x, y)] = 255
			}
		}
	}
	return out, level
}

// otsuLevel finds the threshold maximizing between-class variance over a
// normalized 256-bin histogram.
func otsuLevel(hist []float64) uint8 {
	sum := 0.0
	for i := 0; i < 256; i++ {
		sum += float64(i) * hist[i]
	}

	sumB := 0.0
	wB := 0.0
	maximum := 0.0
	level := 0

	for t := 0; t < 256; t++ {
		wB += hist[t]
		if wB == 0 {
			continue
		}
		wF := 1.0 - wB
		if wF == 0 {
			break
		}

		sumB += float64(t) * hist[t]
		mB := sumB / wB
		mF := (sum - sumB) / wF

		between := wB * wF * (mB - mF) * (mB - mF)
		if between > maximum {
			level = t
			maximum = between
		}
	}

	return uint8(level)
}
