package imaging

import (
	"image"
	"math"
)

// Rotate rotates an image about its center by the given angle in degrees,
// keeping the output dimensions identical to the input.
//
// Positive angles rotate counterclockwise on screen, matching the usual
// rotation-matrix convention for images with y growing downward. Pixels
// are resampled with Catmull-Rom cubic interpolation; source coordinates
// that fall outside the image after the inverse mapping are clamped to the
// nearest edge pixel, so the corners uncovered by the rotation fill with
// replicated border content instead of a solid color.
//
// The input is never modified; the result is a fresh RGBA buffer with the
// same bounds.
func Rotate(img image.Image, angleDeg float64) *image.RGBA {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	out := image.NewRGBA(bounds)
	if width == 0 || height == 0 {
		return out
	}

	src := toRGBA(img)

	theta := angleDeg * math.Pi / 180.0
	cos := math.Cos(theta)
	sin := math.Sin(theta)
	cx := float64(width) / 2
	cy := float64(height) / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Inverse mapping: where in the source does this output
			// pixel come from?
			dx := float64(x) - cx
			dy := float64(y) - cy
			srcX := cos*dx - sin*dy + cx
			srcY := sin*dx + cos*dy + cy

			r, g, b := sampleCubic(src, srcX, srcY)
			off := out.PixOffset(x+bounds.Min.X, y+bounds.Min.Y)
			out.Pix[off+0] = r
			out.Pix[off+1] = g
			out.Pix[off+2] = b
			out.Pix[off+3] = 255
		}
	}
	return out
}

// sampleCubic samples an RGBA image at a fractional coordinate using
// Catmull-Rom interpolation over the surrounding 4x4 neighborhood.
// Out-of-range taps clamp to the image edge (border replication).
func sampleCubic(src *image.RGBA, fx, fy float64) (uint8, uint8, uint8) {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	var wx, wy [4]float64
	for i := 0; i < 4; i++ {
		wx[i] = catmullRom(float64(i-1) - tx)
		wy[i] = catmullRom(float64(i-1) - ty)
	}

	var r, g, b float64
	for j := 0; j < 4; j++ {
		sy := clampInt(y0+j-1, 0, height-1) + bounds.Min.Y
		for i := 0; i < 4; i++ {
			sx := clampInt(x0+i-1, 0, width-1) + bounds.Min.X
			w := wx[i] * wy[j]
			off := src.PixOffset(sx, sy)
			r += w * float64(src.Pix[off+0])
			g += w * float64(src.Pix[off+1])
			b += w * float64(src.Pix[off+2])
		}
	}

	return clampByte(r), clampByte(g), clampByte(b)
}

// catmullRom is the Catmull-Rom cubic interpolation weight (a = -0.5).
func catmullRom(t float64) float64 {
	t = math.Abs(t)
	switch {
	case t <= 1:
		return 1.5*t*t*t - 2.5*t*t + 1
	case t < 2:
		return -0.5*t*t*t + 2.5*t*t - 4*t + 2
	default:
		return 0
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// toRGBA converts any image to RGBA, reusing the buffer when the input is
// already in that format.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}
