package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Abraxas-365/craftable/logx"

	"github.com/heitorfelix/scanprep/internal/config"
	"github.com/heitorfelix/scanprep/internal/ocr"
	"github.com/heitorfelix/scanprep/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("scanprep %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	flags := flag.NewFlagSet("scanprep", flag.ExitOnError)
	flags.Usage = printHelp
	input := flags.String("input", "", "image file path or http(s) URL to preprocess")
	out := flags.String("out", "", "write the OCR-ready PNG here instead of the artifact directory")
	runOCR := flags.Bool("ocr", false, "run text recognition on the preprocessed image and print it")
	flags.Parse(os.Args[1:])

	// LOG_LEVEL and LOG_FORMAT are picked up by the logging package on
	// startup.
	logger := logx.New()

	settings, err := config.Load()
	if err != nil {
		logger.Fatal("loading configuration: %v", err)
	}

	if *input == "" {
		printHelp()
		os.Exit(2)
	}

	if err := run(context.Background(), logger, settings, *input, *out, *runOCR); err != nil {
		logger.Fatal("%v", err)
	}
}

func run(ctx context.Context, logger *logx.Logger, settings config.Settings, input, out string, runOCR bool) error {
	orch, err := pipeline.NewOrchestrator(settings.Pipeline(), logger)
	if err != nil {
		return err
	}

	original, encoded, err := process(ctx, orch, input)
	if err != nil {
		// Recognition still gets a chance on the unprocessed original,
		// even when it never decoded. Only a missing source is fatal.
		if original == nil ||
			!(pipeline.IsPreprocessingFailed(err) || pipeline.IsDecodeError(err)) {
			return err
		}
		logger.Warn("preprocessing failed, falling back to the original image: %v", err)
		encoded = original
	}

	if out != "" {
		if err := os.WriteFile(out, encoded, 0o644); err != nil {
			return err
		}
		logger.Info("wrote OCR-ready image to %s", out)
	}

	if !runOCR {
		return nil
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	op := ocr.Submit(engine, encoded, settings.OCRLanguage)
	result, err := op.Wait(ctx)
	if err != nil {
		return err
	}
	fmt.Println(strings.TrimSpace(result.FullText))
	return nil
}

// newEngine builds the recognition engine; swapped out in tests.
var newEngine = func() (ocr.Engine, error) {
	return ocr.NewTesseractEngine()
}

// process runs the pipeline on input and also returns the raw source
// bytes so callers can fall back to them. URLs are fetched first for the
// same reason: once the download succeeded, a pipeline failure must not
// lose the bytes.
func process(ctx context.Context, orch *pipeline.Orchestrator, input string) (original, encoded []byte, err error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		original, err = orch.Fetch(ctx, input)
	} else {
		original, err = os.ReadFile(input)
	}
	if err != nil {
		return nil, nil, err
	}

	encoded, err = orch.ProcessBytes(ctx, original)
	return original, encoded, err
}

func printHelp() {
	fmt.Println("scanprep - document photo preprocessing for OCR")
	fmt.Println()
	fmt.Println("Usage: scanprep [options] -input <file-or-url>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -input <path|url>  image file or http(s) URL to preprocess")
	fmt.Println("  -out <path>        also write the OCR-ready PNG to this path")
	fmt.Println("  -ocr               run text recognition and print the result")
	fmt.Println("  --version, -v      print version information")
	fmt.Println("  --help, -h         print this help message")
	fmt.Println()
	fmt.Println("Environment variables (all optional, .env is read too):")
	fmt.Println("  SCANPREP_OUTPUT_DIR        artifact directory (default processed_images)")
	fmt.Println("  SCANPREP_FETCH_TIMEOUT     source download timeout (default 30s)")
	fmt.Println("  SCANPREP_HOUGH_VOTES       line detector vote threshold")
	fmt.Println("  SCANPREP_RETURN_STAGE      enhancement stage handed to OCR")
	fmt.Println("  SCANPREP_OCR_LANGUAGE      Tesseract language code (default eng)")
	fmt.Println("  LOG_LEVEL, LOG_FORMAT      logging level and format")
}
