package imaging

import (
	"image"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// DocumentStats summarizes the color makeup of a document photo before
// preprocessing. The numbers are diagnostic only; they are logged so a
// poor OCR result can be traced back to a low-contrast source image.
type DocumentStats struct {
	// Background is the estimated paper color as "#RRGGBB".
	Background string `json:"background"`

	// Ink is the estimated stroke color as "#RRGGBB".
	Ink string `json:"ink"`

	// Contrast is the CIE Lab distance between the background and ink
	// estimates. Values under ~0.3 usually mean the threshold stage
	// will struggle.
	Contrast float64 `json:"contrast"`
}

// AnalyzeDocument estimates the background and ink colors of a document
// image and the perceptual contrast between them.
//
// Pixels are sampled on a grid (at most ~10k samples) and ranked by
// luminance; the brightest quartile averages into the background estimate
// and the darkest quartile into the ink estimate. Contrast is their
// distance in Lab space, which tracks perceived difference far better
// than RGB distance.
func AnalyzeDocument(img image.Image) *DocumentStats {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return &DocumentStats{Background: "#000000", Ink: "#000000"}
	}

	step := 1
	for (width/step)*(height/step) > 10000 {
		step++
	}

	type sample struct {
		lum     float64
		r, g, b float64
	}
	samples := make([]sample, 0, (width/step+1)*(height/step+1))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			rf := float64(r >> 8)
			gf := float64(g >> 8)
			bf := float64(b >> 8)
			samples = append(samples, sample{
				lum: 0.299*rf + 0.587*gf + 0.114*bf,
				r:   rf, g: gf, b: bf,
			})
		}
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].lum < samples[j].lum })

	quartile := len(samples) / 4
	if quartile < 1 {
		quartile = 1
	}

	average := func(part []sample) colorful.Color {
		var r, g, b float64
		for _, s := range part {
			r += s.r
			g += s.g
			b += s.b
		}
		n := float64(len(part))
		c, _ := colorful.MakeColor(color.NRGBA{
			R: uint8(r/n + 0.5),
			G: uint8(g/n + 0.5),
			B: uint8(b/n + 0.5),
			A: 255,
		})
		return c
	}

	ink := average(samples[:quartile])
	background := average(samples[len(samples)-quartile:])

	return &DocumentStats{
		Background: background.Hex(),
		Ink:        ink.Hex(),
		Contrast:   background.DistanceLab(ink),
	}
}
