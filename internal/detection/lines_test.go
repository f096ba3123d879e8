package detection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyMask builds an all-false edge mask.
func emptyMask(width, height int) [][]bool {
	mask := make([][]bool, height)
	for y := range mask {
		mask[y] = make([]bool, width)
	}
	return mask
}

func TestHoughLinesFindsHorizontalLine(t *testing.T) {
	mask := emptyMask(100, 100)
	for x := 0; x < 100; x++ {
		mask[50][x] = true
	}

	lines := HoughLines(mask, 80)

	require.NotEmpty(t, lines)

	// A horizontal line's normal points straight down: theta = pi/2,
	// rho = the line's y coordinate.
	best := lines[0]
	assert.InDelta(t, math.Pi/2, best.Theta, 0.03)
	assert.InDelta(t, 50, best.Rho, 1.5)
	assert.GreaterOrEqual(t, best.Votes, 95)
}

func TestHoughLinesFindsVerticalLine(t *testing.T) {
	mask := emptyMask(100, 100)
	for y := 0; y < 100; y++ {
		mask[y][30] = true
	}

	lines := HoughLines(mask, 80)

	require.NotEmpty(t, lines)
	best := lines[0]
	assert.InDelta(t, 0, best.Theta, 0.03)
	assert.InDelta(t, 30, best.Rho, 1.5)
}

func TestHoughLinesEmptyMask(t *testing.T) {
	assert.Empty(t, HoughLines(emptyMask(50, 50), 10))
	assert.Empty(t, HoughLines(nil, 10))
}

func TestHoughLinesThresholdFiltersShortSegments(t *testing.T) {
	mask := emptyMask(100, 100)
	for x := 0; x < 30; x++ {
		mask[10][x] = true
	}

	// 30 collinear pixels cannot reach a 50-vote threshold.
	assert.Empty(t, HoughLines(mask, 50))
	assert.NotEmpty(t, HoughLines(mask, 20))
}

func TestHoughLinesSortedByVotes(t *testing.T) {
	mask := emptyMask(120, 120)
	for x := 0; x < 120; x++ {
		mask[40][x] = true
	}
	for x := 0; x < 60; x++ {
		mask[90][x] = true
	}

	lines := HoughLines(mask, 40)

	require.GreaterOrEqual(t, len(lines), 2)
	for i := 1; i < len(lines); i++ {
		assert.GreaterOrEqual(t, lines[i-1].Votes, lines[i].Votes)
	}
	assert.InDelta(t, 40, lines[0].Rho, 1.5)
}
