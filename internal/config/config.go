// Package config loads the process settings for the preprocessing
// service. Values come from a local .env file overlaid by SCANPREP_
// environment variables; either source is optional and every setting
// has a usable default.
//
// Environment keys map to dotted setting names with the prefix
// stripped: SCANPREP_OUTPUT_DIR sets "output.dir", SCANPREP_HOUGH_VOTES
// sets "hough.votes", and so on.
package config

import (
	"time"

	"github.com/Abraxas-365/craftable/configx"

	"github.com/heitorfelix/scanprep/internal/pipeline"
)

// EnvPrefix is the environment variable prefix for all settings.
const EnvPrefix = "SCANPREP_"

// Settings holds everything the service reads at startup.
type Settings struct {
	// OutputDir is the stage artifact directory.
	OutputDir string

	// FetchTimeout bounds source image downloads.
	FetchTimeout time.Duration

	// Skew detection tuning.
	CannyLow   int
	CannyHigh  int
	HoughVotes int

	// ReturnStage selects the enhancement stage handed to OCR; empty
	// keeps the pipeline default.
	ReturnStage string

	// DenoiseStrength is the non-local-means filter strength; zero
	// keeps the pipeline default.
	DenoiseStrength float64

	// OCRLanguage is the Tesseract language code for recognition.
	OCRLanguage string
}

// Load reads settings from .env and the environment. Missing sources
// and missing keys fall back to defaults; Load only fails if the
// configuration layer itself cannot be constructed.
func Load() (Settings, error) {
	cfg, err := configx.New()
	if err != nil {
		return Settings{}, err
	}
	cfg.AddSource(configx.NewDotEnvSource(".env", 50))
	cfg.AddSource(configx.NewEnvSource(EnvPrefix, 100))

	defaults := pipeline.DefaultConfig()

	return Settings{
		OutputDir:       cfg.Get("output.dir").AsStringDefault(defaults.OutputDir),
		FetchTimeout:    cfg.Get("fetch.timeout").AsDurationDefault(defaults.FetchTimeout),
		CannyLow:        cfg.Get("canny.low").AsIntDefault(0),
		CannyHigh:       cfg.Get("canny.high").AsIntDefault(0),
		HoughVotes:      cfg.Get("hough.votes").AsIntDefault(0),
		ReturnStage:     cfg.Get("return.stage").AsStringDefault(""),
		DenoiseStrength: cfg.Get("denoise.strength").AsFloatDefault(0),
		OCRLanguage:     cfg.Get("ocr.language").AsStringDefault("eng"),
	}, nil
}

// Pipeline converts the settings into the orchestrator's configuration.
// Zero values select the pipeline defaults.
func (s Settings) Pipeline() pipeline.Config {
	return pipeline.Config{
		OutputDir:       s.OutputDir,
		FetchTimeout:    s.FetchTimeout,
		CannyLow:        s.CannyLow,
		CannyHigh:       s.CannyHigh,
		VoteThreshold:   s.HoughVotes,
		ReturnStage:     s.ReturnStage,
		DenoiseStrength: s.DenoiseStrength,
	}
}
