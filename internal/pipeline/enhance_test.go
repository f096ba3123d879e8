package pipeline

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/Abraxas-365/craftable/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heitorfelix/scanprep/internal/imaging"
)

// documentFixture builds a small white page with a block of dark marks,
// enough structure for every enhancement stage to chew on.
func documentFixture(width, height int) *image.RGBA {
	img := whiteCanvas(width, height)
	for y := height / 4; y < height/2; y++ {
		for x := width / 4; x < 3*width/4; x++ {
			if (x+y)%3 != 0 {
				img.SetRGBA(x, y, color.RGBA{R: 30, G: 30, B: 30, A: 255})
			}
		}
	}
	return img
}

func TestEnhancerWritesEveryStageArtifact(t *testing.T) {
	dir := t.TempDir()
	store, err := NewArtifactStore(dir)
	require.NoError(t, err)

	img := documentFixture(64, 64)
	stamp := "20240101_120000"

	result, err := NewEnhancer().Run(img, store, stamp)
	require.NoError(t, err)
	require.NotNil(t, result)

	for _, label := range StageLabels {
		path := filepath.Join(dir, stamp+"_"+label+".png")
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr, "missing artifact %s", label)
	}
}

func TestEnhancerPreservesDimensions(t *testing.T) {
	store, err := NewArtifactStore(t.TempDir())
	require.NoError(t, err)

	img := documentFixture(80, 48)

	result, err := NewEnhancer().Run(img, store, "20240101_120000")
	require.NoError(t, err)

	assert.Equal(t, 80, result.Bounds().Dx())
	assert.Equal(t, 48, result.Bounds().Dy())
}

func TestEnhancerReturnStageSelection(t *testing.T) {
	store, err := NewArtifactStore(t.TempDir())
	require.NoError(t, err)

	img := documentFixture(40, 40)

	e := NewEnhancer()
	e.ReturnStage = LabelGray

	result, err := e.Run(img, store, "20240101_120000")
	require.NoError(t, err)

	assert.Equal(t, imaging.Grayscale(img).Pix, result.Pix)
}

func TestEnhancerReturnStageFinal(t *testing.T) {
	store, err := NewArtifactStore(t.TempDir())
	require.NoError(t, err)

	img := documentFixture(40, 40)

	e := NewEnhancer()
	e.ReturnStage = LabelFinal

	result, err := e.Run(img, store, "20240101_120000")
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), result.Bounds())
}

func TestEnhancerThresholdStageIsBinary(t *testing.T) {
	store, err := NewArtifactStore(t.TempDir())
	require.NoError(t, err)

	img := documentFixture(40, 40)

	e := NewEnhancer()
	e.ReturnStage = LabelThreshold

	result, err := e.Run(img, store, "20240101_120000")
	require.NoError(t, err)

	for i, v := range result.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("pixel %d has value %d, want 0 or 255", i, v)
		}
	}
}

func TestEnhancerUnknownReturnStage(t *testing.T) {
	store, err := NewArtifactStore(t.TempDir())
	require.NoError(t, err)

	e := NewEnhancer()
	e.ReturnStage = "9_bogus"

	_, err = e.Run(documentFixture(32, 32), store, "20240101_120000")
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, ErrStageFailed))
}

func TestEnhancerRejectsNilImage(t *testing.T) {
	store, err := NewArtifactStore(t.TempDir())
	require.NoError(t, err)

	_, err = NewEnhancer().Run(nil, store, "20240101_120000")
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, ErrStageFailed))
}
