package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenoiseNLMUniformImageUnchanged(t *testing.T) {
	src := uniformGray(32, 32, 100)

	out := DenoiseNLM(src, 10)

	require.Equal(t, src.Bounds(), out.Bounds())
	for i, v := range out.Pix {
		assert.Equal(t, uint8(100), v, "pixel %d", i)
	}
}

func TestDenoiseNLMAttenuatesSpeck(t *testing.T) {
	// A single bright pixel in a dark field is classic salt noise; a
	// strong filter should pull it toward the surrounding level.
	src := uniformGray(21, 21, 0)
	src.Pix[src.PixOffset(10, 10)] = 255

	out := DenoiseNLM(src, 200)

	assert.Less(t, out.GrayAt(10, 10).Y, uint8(255))

	// Far-away background pixels stay black.
	assert.Equal(t, uint8(0), out.GrayAt(1, 1).Y)
}

func TestDenoiseNLMPreservesDimensions(t *testing.T) {
	src := uniformGray(17, 29, 60)
	out := DenoiseNLM(src, 10)
	assert.Equal(t, 17, out.Bounds().Dx())
	assert.Equal(t, 29, out.Bounds().Dy())
}
