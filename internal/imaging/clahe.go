package imaging

import (
	"image"
)

// CLAHE applies contrast-limited adaptive histogram equalization.
//
// The image is divided into a grid of tiles (tilesX by tilesY). Each tile
// gets its own equalization transfer function built from its local
// histogram, with bin counts clipped at
//
//	clipLimit * tilePixels / 256
//
// and the clipped excess redistributed uniformly across all bins. Clipping
// bounds the slope of the transfer function, which is what stops the filter
// from amplifying noise in flat regions the way plain equalization would.
//
// Output pixels are bilinearly interpolated between the transfer functions
// of the four nearest tile centers, removing visible tile seams.
//
// A clip limit of 2.0 with an 8x8 grid is the conventional setting for
// document images.
func CLAHE(src *image.Gray, clipLimit float64, tilesX, tilesY int) *image.Gray {
	if clipLimit <= 0 {
		clipLimit = 2.0
	}
	if tilesX < 1 {
		tilesX = 8
	}
	if tilesY < 1 {
		tilesY = 8
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	out := image.NewGray(bounds)
	if width == 0 || height == 0 {
		return out
	}
	if tilesX > width {
		tilesX = width
	}
	if tilesY > height {
		tilesY = height
	}

	tileW := (width + tilesX - 1) / tilesX
	tileH := (height + tilesY - 1) / tilesY

	// Per-tile transfer functions.
	luts := make([][][256]uint8, tilesY)
	for ty := 0; ty < tilesY; ty++ {
		luts[ty] = make([][256]uint8, tilesX)
		for tx := 0; tx < tilesX; tx++ {
			x0 := tx * tileW
			y0 := ty * tileH
			x1 := clampInt(x0+tileW, 0, width)
			y1 := clampInt(y0+tileH, 0, height)
			luts[ty][tx] = claheTileLUT(src, bounds.Min.X+x0, bounds.Min.Y+y0, bounds.Min.X+x1, bounds.Min.Y+y1, clipLimit)
		}
	}

	// Bilinear interpolation between the four surrounding tile LUTs,
	// weighted by distance from the tile centers.
	for y := 0; y < height; y++ {
		fy := (float64(y) - float64(tileH)/2) / float64(tileH)
		ty0 := int(fy)
		if fy < 0 {
			ty0 = -1
		}
		ty1 := ty0 + 1
		wy := fy - float64(ty0)
		ty0 = clampInt(ty0, 0, tilesY-1)
		ty1 = clampInt(ty1, 0, tilesY-1)

		for x := 0; x < width; x++ {
			fx := (float64(x) - float64(tileW)/2) / float64(tileW)
			tx0 := int(fx)
			if fx < 0 {
				tx0 = -1
			}
			tx1 := tx0 + 1
			wx := fx - float64(tx0)
			tx0 = clampInt(tx0, 0, tilesX-1)
			tx1 = clampInt(tx1, 0, tilesX-1)
			if wx < 0 {
				wx = 0
			} else if wx > 1 {
				wx = 1
			}
			cwy := wy
			if cwy < 0 {
				cwy = 0
			} else if cwy > 1 {
				cwy = 1
			}

			v := src.Pix[src.PixOffset(x+bounds.Min.X, y+bounds.Min.Y)]
			top := (1-wx)*float64(luts[ty0][tx0][v]) + wx*float64(luts[ty0][tx1][v])
			bot := (1-wx)*float64(luts[ty1][tx0][v]) + wx*float64(luts[ty1][tx1][v])
			out.Pix[out.PixOffset(x+bounds.Min.X, y+bounds.Min.Y)] = uint8((1-cwy)*top + cwy*bot + 0.5)
		}
	}
	return out
}

// claheTileLUT builds the clipped equalization transfer function for one
// tile covering [x0,x1) x [y0,y1) in image coordinates.
func claheTileLUT(src *image.Gray, x0, y0, x1, y1 int, clipLimit float64) [256]uint8 {
	var lut [256]uint8
	tilePixels := (x1 - x0) * (y1 - y0)
	if tilePixels == 0 {
		for i := range lut {
			lut[i] = uint8(i)
		}
		return lut
	}

	var hist [256]float64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			hist[src.Pix[src.PixOffset(x, y)]]++
		}
	}

	// Clip and redistribute the excess uniformly.
	limit := clipLimit * float64(tilePixels) / 256.0
	if limit < 1 {
		limit = 1
	}
	excess := 0.0
	for i := range hist {
		if hist[i] > limit {
			excess += hist[i] - limit
			hist[i] = limit
		}
	}
	share := excess / 256.0
	for i := range hist {
		hist[i] += share
	}

	scale := 255.0 / float64(tilePixels)
	cdf := 0.0
	for i := 0; i < 256; i++ {
		cdf += hist[i]
		v := cdf * scale
		if v > 255 {
			v = 255
		}
		lut[i] = uint8(v + 0.5)
	}
	return lut
}
