package imaging

import (
	"image"
)

// EqualizeHist applies global histogram equalization to a grayscale image.
//
// The transfer function is built from the cumulative distribution of pixel
// intensities, rescaled so the darkest occupied bin maps to 0 and the full
// population maps to 255:
//
//	lut[v] = round((cdf[v] - cdfMin) / (total - cdfMin) * 255)
//
// This stretches the occupied intensity range across the full 8-bit range,
// normalizing global contrast before thresholding. A constant image is
// returned unchanged (there is no contrast to redistribute).
func EqualizeHist(src *image.Gray) *image.Gray {
	bounds := src.Bounds()
	total := bounds.Dx() * bounds.Dy()
	out := image.NewGray(bounds)
	if total == 0 {
		return out
	}

	var hist [256]int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[src.Pix[src.PixOffset(x, y)]]++
		}
	}

	// Cumulative distribution; cdfMin is the first occupied bin.
	var cdf [256]int
	running := 0
	cdfMin := 0
	seenMin := false
	for i := 0; i < 256; i++ {
		running += hist[i]
		cdf[i] = running
		if !seenMin && hist[i] > 0 {
			cdfMin = running
			seenMin = true
		}
	}

	if cdfMin == total {
		// Single intensity value, nothing to equalize.
		return Grayscale(src)
	}

	var lut [256]uint8
	scale := 255.0 / float64(total-cdfMin)
	for i := 0; i < 256; i++ {
		v := float64(cdf[i]-cdfMin) * scale
		if v < 0 {
			v = 0
		}
		lut[i] = uint8(v + 0.5)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Pix[out.PixOffset(x, y)] = lut[src.Pix[src.PixOffset(x, y)]]
		}
	}
	return out
}
