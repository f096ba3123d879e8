package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heitorfelix/scanprep/internal/imaging"
)

// fixtureBytes PNG-encodes the standard document fixture.
func fixtureBytes(t *testing.T) []byte {
	t.Helper()
	data, err := imaging.EncodePNG(documentFixture(64, 64))
	require.NoError(t, err)
	return data
}

// newTestOrchestrator builds an orchestrator writing into a temp dir with
// a frozen clock.
func newTestOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	cfg := DefaultConfig()
	cfg.OutputDir = t.TempDir()

	orch, err := NewOrchestrator(cfg, nil)
	require.NoError(t, err)
	orch.now = func() time.Time {
		return time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	}
	return orch
}

func TestProcessBytesProducesEncodedPNG(t *testing.T) {
	orch := newTestOrchestrator(t)

	out, err := orch.ProcessBytes(context.Background(), fixtureBytes(t))
	require.NoError(t, err)
	require.NotEmpty(t, out)

	decoded, err := imaging.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 64, decoded.Bounds().Dx())
	assert.Equal(t, 64, decoded.Bounds().Dy())
}

func TestProcessBytesWritesAllArtifacts(t *testing.T) {
	orch := newTestOrchestrator(t)

	_, err := orch.ProcessBytes(context.Background(), fixtureBytes(t))
	require.NoError(t, err)

	entries, err := os.ReadDir(orch.ArtifactDir())
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	const stamp = "20240601_093000"
	assert.Contains(t, names, stamp+"_"+LabelOriginal+".png")
	for _, label := range StageLabels {
		assert.Contains(t, names, stamp+"_"+label+".png")
	}
	assert.Len(t, names, 1+len(StageLabels))
}

func TestProcessBytesDecodeFailureWritesNothing(t *testing.T) {
	orch := newTestOrchestrator(t)

	_, err := orch.ProcessBytes(context.Background(), []byte("not an image at all"))
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
	assert.False(t, IsPreprocessingFailed(err))

	entries, readErr := os.ReadDir(orch.ArtifactDir())
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestProcessBytesIsDeterministic(t *testing.T) {
	src := fixtureBytes(t)

	first, err := newTestOrchestrator(t).ProcessBytes(context.Background(), src)
	require.NoError(t, err)
	second, err := newTestOrchestrator(t).ProcessBytes(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProcessURLFetchesAndProcesses(t *testing.T) {
	payload := fixtureBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer srv.Close()

	orch := newTestOrchestrator(t)

	out, err := orch.ProcessURL(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFetchReturnsSourceBytes(t *testing.T) {
	payload := []byte("opaque payload, decodable or not")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	orch := newTestOrchestrator(t)

	data, err := orch.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestProcessURLServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	orch := newTestOrchestrator(t)

	_, err := orch.ProcessURL(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, IsSourceUnavailable(err))
}

func TestProcessURLUnreachableHost(t *testing.T) {
	orch := newTestOrchestrator(t)

	_, err := orch.ProcessURL(context.Background(), "http://127.0.0.1:1/never")
	require.Error(t, err)
	assert.True(t, IsSourceUnavailable(err))
}

func TestNewOrchestratorAppliesOverrides(t *testing.T) {
	cfg := Config{
		OutputDir:       t.TempDir(),
		CannyLow:        20,
		CannyHigh:       60,
		VoteThreshold:   90,
		ReturnStage:     LabelThreshold,
		DenoiseStrength: 25,
	}

	orch, err := NewOrchestrator(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, 20, orch.orient.CannyLow)
	assert.Equal(t, 60, orch.orient.CannyHigh)
	assert.Equal(t, 90, orch.orient.VoteThreshold)
	assert.Equal(t, LabelThreshold, orch.enhancer.ReturnStage)
	assert.Equal(t, 25.0, orch.enhancer.DenoiseStrength)
}
