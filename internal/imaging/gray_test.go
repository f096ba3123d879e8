package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniformGray builds a grayscale image with every pixel set to v.
func uniformGray(width, height int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// uniformRGBA builds a color image with every pixel set to c.
func uniformRGBA(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestGrayscaleCollapsesChannels(t *testing.T) {
	src := uniformRGBA(40, 30, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	gray := Grayscale(src)

	require.Equal(t, 40, gray.Bounds().Dx())
	require.Equal(t, 30, gray.Bounds().Dy())

	// 0.299*200 + 0.587*100 + 0.114*50 = 124.2
	want := uint8(124)
	for i, v := range gray.Pix {
		require.Equal(t, want, v, "pixel %d", i)
	}
}

func TestGrayscaleOfGrayIsCopy(t *testing.T) {
	src := uniformGray(20, 20, 77)
	src.SetGray(3, 4, color.Gray{Y: 200})

	gray := Grayscale(src)

	assert.Equal(t, src.Pix, gray.Pix)

	// Mutating the copy must not touch the source.
	gray.SetGray(0, 0, color.Gray{Y: 1})
	assert.Equal(t, uint8(77), src.GrayAt(0, 0).Y)
}

func TestGrayscalePreservesDimensions(t *testing.T) {
	for _, size := range []image.Rectangle{
		image.Rect(0, 0, 1, 1),
		image.Rect(0, 0, 101, 37),
		image.Rect(0, 0, 64, 480),
	} {
		src := image.NewRGBA(size)
		gray := Grayscale(src)
		assert.Equal(t, size, gray.Bounds())
	}
}
