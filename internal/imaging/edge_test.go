package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEdgesUniformImageHasNone(t *testing.T) {
	src := uniformGray(50, 50, 128)

	mask := DetectEdges(src, 50, 150)

	require.Len(t, mask, 50)
	for y := range mask {
		require.Len(t, mask[y], 50)
		for x := range mask[y] {
			assert.False(t, mask[y][x], "pixel (%d,%d)", x, y)
		}
	}
}

func TestDetectEdgesFindsStep(t *testing.T) {
	// Hard vertical step between black and white halves.
	src := uniformGray(60, 60, 0)
	for y := 0; y < 60; y++ {
		for x := 30; x < 60; x++ {
			src.Pix[src.PixOffset(x, y)] = 255
		}
	}

	mask := DetectEdges(src, 50, 150)

	// Edge pixels cluster around the step column; count them there and
	// verify the flat halves stay clean.
	nearStep, elsewhere := 0, 0
	for y := 5; y < 55; y++ {
		for x := 0; x < 60; x++ {
			if !mask[y][x] {
				continue
			}
			if x >= 26 && x <= 34 {
				nearStep++
			} else {
				elsewhere++
			}
		}
	}
	assert.Greater(t, nearStep, 25)
	assert.Zero(t, elsewhere)
}

func TestDetectEdgesThresholdOrdering(t *testing.T) {
	src := uniformGray(40, 40, 0)
	for y := 0; y < 40; y++ {
		for x := 20; x < 40; x++ {
			src.Pix[src.PixOffset(x, y)] = 255
		}
	}

	loose := DetectEdges(src, 10, 40)
	strict := DetectEdges(src, 200, 250)

	count := func(mask [][]bool) int {
		n := 0
		for _, row := range mask {
			for _, v := range row {
				if v {
					n++
				}
			}
		}
		return n
	}

	assert.GreaterOrEqual(t, count(loose), count(strict))
}
