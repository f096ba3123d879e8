package imaging

import (
	"image"
)

// Grayscale converts an image to a single-channel 8-bit grayscale buffer.
//
// Luminance is computed with the ITU-R BT.601 weights
// (0.299*R + 0.587*G + 0.114*B), matching the conversion used throughout
// the enhancement pipeline. The result is always a fresh *image.Gray with
// exactly one channel, regardless of the channel count of the input
// (3-channel color, 4-channel color with alpha, or already grayscale).
//
// The returned image shares no pixel storage with the input.
func Grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(bounds)

	if src, ok := img.(*image.Gray); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			copy(out.Pix[out.PixOffset(bounds.Min.X, y):out.PixOffset(bounds.Min.X, y)+bounds.Dx()],
				src.Pix[src.PixOffset(bounds.Min.X, y):src.PixOffset(bounds.Min.X, y)+bounds.Dx()])
		}
		return out
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// 16-bit components down to 8-bit before weighting
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			out.Pix[out.PixOffset(x, y)] = uint8(lum + 0.5)
		}
	}
	return out
}

// CloneGray returns a fresh copy of a grayscale image.
func CloneGray(src *image.Gray) *image.Gray {
	return Grayscale(src)
}
