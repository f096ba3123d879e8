package imaging

import (
	"image"
)

// Dilate2x2 applies one iteration of grayscale morphological dilation with
// a 2x2 all-ones structuring element anchored at its bottom-right cell,
// the anchor an even-sized kernel gets by default.
//
// Each output pixel takes the maximum of the 2x2 neighborhood extending
// left and up from it (with edge replication at the borders). On a
// binary document image this thickens strokes by one pixel, reconnecting
// glyph fragments that thresholding may have split.
func Dilate2x2(src *image.Gray) *image.Gray {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	out := image.NewGray(bounds)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			max := uint8(0)
			for dy := -1; dy <= 0; dy++ {
				for dx := -1; dx <= 0; dx++ {
					sx := clampInt(x+dx, 0, width-1) + bounds.Min.X
					sy := clampInt(y+dy, 0, height-1) + bounds.Min.Y
					if v := src.Pix[src.PixOffset(sx, sy)]; v > max {
						max = v
					}
				}
			}
			out.Pix[out.PixOffset(x+bounds.Min.X, y+bounds.Min.Y)] = max
		}
	}
	return out
}
