package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Abraxas-365/craftable/logx"

	"github.com/heitorfelix/scanprep/internal/imaging"
)

// Config carries the process-wide pipeline settings. It is built once at
// startup (see internal/config) and passed in explicitly; nothing in this
// package reads ambient state.
type Config struct {
	// OutputDir is where stage artifacts are written.
	OutputDir string

	// FetchTimeout bounds the source image download. The original
	// behavior had no timeout; this is a defensive addition, not a
	// contract.
	FetchTimeout time.Duration

	// Skew detection parameters; zero values select the defaults.
	CannyLow      int
	CannyHigh     int
	VoteThreshold int

	// ReturnStage overrides which enhancement stage is handed back for
	// OCR submission. Empty selects the standard contrast-enhanced
	// stage.
	ReturnStage string

	// DenoiseStrength overrides the non-local-means filter strength.
	DenoiseStrength float64
}

// DefaultConfig returns the settings the pipeline ships with.
func DefaultConfig() Config {
	return Config{
		OutputDir:    "processed_images",
		FetchTimeout: 30 * time.Second,
	}
}

// Orchestrator wires the orientation corrector and enhancement pipeline
// together: fetch, decode, straighten, enhance, encode. Each invocation
// is independent and synchronous; the only shared state is the artifact
// directory.
type Orchestrator struct {
	client   *http.Client
	store    *ArtifactStore
	orient   *OrientationCorrector
	enhancer *Enhancer
	logger   *logx.Logger

	// now stamps artifact filenames; swapped out in tests for
	// deterministic runs.
	now func() time.Time
}

// NewOrchestrator builds an orchestrator from cfg, creating the artifact
// directory if needed.
func NewOrchestrator(cfg Config, logger *logx.Logger) (*Orchestrator, error) {
	if logger == nil {
		logger = logx.New()
	}

	dir := cfg.OutputDir
	if dir == "" {
		dir = DefaultConfig().OutputDir
	}
	store, err := NewArtifactStore(dir)
	if err != nil {
		return nil, err
	}

	orient := NewOrientationCorrector()
	if cfg.CannyLow > 0 {
		orient.CannyLow = cfg.CannyLow
	}
	if cfg.CannyHigh > 0 {
		orient.CannyHigh = cfg.CannyHigh
	}
	if cfg.VoteThreshold > 0 {
		orient.VoteThreshold = cfg.VoteThreshold
	}

	enhancer := NewEnhancer()
	if cfg.ReturnStage != "" {
		enhancer.ReturnStage = cfg.ReturnStage
	}
	if cfg.DenoiseStrength > 0 {
		enhancer.DenoiseStrength = cfg.DenoiseStrength
	}

	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultConfig().FetchTimeout
	}

	return &Orchestrator{
		client:   &http.Client{Timeout: timeout},
		store:    store,
		orient:   orient,
		enhancer: enhancer,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// ArtifactDir returns the directory stage artifacts are written under.
func (o *Orchestrator) ArtifactDir() string {
	return o.store.Dir()
}

// Fetch downloads the source image bytes from url. Failures surface as
// SOURCE_UNAVAILABLE. Callers that need the raw bytes for the
// fall-back-to-original contract fetch first and then hand the bytes to
// ProcessBytes.
func (o *Orchestrator) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, prepErrors.NewWithCause(ErrSourceUnavailable, err).WithDetail("url", url)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, prepErrors.NewWithCause(ErrSourceUnavailable, err).WithDetail("url", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, prepErrors.NewWithMessage(ErrSourceUnavailable,
			fmt.Sprintf("fetching source image returned status %d", resp.StatusCode)).
			WithDetail("url", url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, prepErrors.NewWithCause(ErrSourceUnavailable, err).WithDetail("url", url)
	}
	return data, nil
}

// ProcessURL fetches the source image from url and runs the full
// pipeline on it. Fetch failures surface as SOURCE_UNAVAILABLE.
func (o *Orchestrator) ProcessURL(ctx context.Context, url string) ([]byte, error) {
	data, err := o.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return o.ProcessBytes(ctx, data)
}

// ProcessBytes runs the full preprocessing pipeline on raw image bytes
// and returns the PNG-encoded OCR-ready result.
//
// The run writes the original plus one artifact per enhancement stage.
// Undecodable input fails with DECODE_FAILED before any artifact is
// written; any later failure surfaces as the single PREPROCESSING_FAILED
// condition (with the cause attached) and the caller is expected to fall
// back to submitting the unprocessed original. Artifacts persisted before
// the failure stay on disk.
func (o *Orchestrator) ProcessBytes(ctx context.Context, data []byte) ([]byte, error) {
	img, err := imaging.Decode(data)
	if err != nil {
		return nil, prepErrors.NewWithCause(ErrDecodeFailed, err)
	}

	bounds := img.Bounds()
	stats := imaging.AnalyzeDocument(img)
	o.logger.Info("processing source image %dx%d (background %s, ink %s, contrast %.2f)",
		bounds.Dx(), bounds.Dy(), stats.Background, stats.Ink, stats.Contrast)

	stamp := Timestamp(o.now())

	if _, err := o.store.Save(stamp, LabelOriginal, img); err != nil {
		return nil, prepErrors.NewWithCause(ErrPreprocessingFailed, err)
	}

	corrected, angle := o.orient.Correct(img)
	if angle != 0 {
		o.logger.Info("corrected document skew of %.2f degrees", angle)
	} else {
		o.logger.Debug("no dominant line features, skipping rotation")
	}

	result, err := o.enhancer.Run(corrected, o.store, stamp)
	if err != nil {
		return nil, prepErrors.NewWithCause(ErrPreprocessingFailed, err)
	}

	encoded, err := imaging.EncodePNG(result)
	if err != nil {
		return nil, prepErrors.NewWithCause(ErrPreprocessingFailed, err)
	}

	o.logger.Info("preprocessing complete: %d bytes, artifacts under %s (run %s)",
		len(encoded), o.store.Dir(), stamp)
	return encoded, nil
}
