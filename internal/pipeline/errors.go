package pipeline

import (
	"net/http"

	"github.com/Abraxas-365/craftable/errx"
)

// Error registry for the preprocessing pipeline.
var (
	prepErrors = errx.NewRegistry("PREP")

	// ErrSourceUnavailable covers network and fetch failures before any
	// image bytes exist.
	ErrSourceUnavailable = prepErrors.Register("SOURCE_UNAVAILABLE", errx.TypeExternal, http.StatusBadGateway, "failed to fetch source image")

	// ErrDecodeFailed means the fetched bytes are not a decodable raster
	// image.
	ErrDecodeFailed = prepErrors.Register("DECODE_FAILED", errx.TypeBadRequest, http.StatusBadRequest, "source bytes are not a valid raster image")

	// ErrStageFailed marks a failure inside an individual enhancement
	// stage.
	ErrStageFailed = prepErrors.Register("STAGE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "enhancement stage failed")

	// ErrArtifactWrite marks a failure persisting a diagnostic snapshot.
	ErrArtifactWrite = prepErrors.Register("ARTIFACT_WRITE_FAILED", errx.TypeSystem, http.StatusInternalServerError, "failed to persist pipeline artifact")

	// ErrPreprocessingFailed is the single condition surfaced at the
	// orchestrator boundary for any failure past decode. Callers are
	// expected to fall back to the unprocessed original image.
	ErrPreprocessingFailed = prepErrors.Register("PREPROCESSING_FAILED", errx.TypeInternal, http.StatusInternalServerError, "image preprocessing failed")
)

// IsSourceUnavailable reports whether err is a source fetch failure.
func IsSourceUnavailable(err error) bool {
	return errx.IsCode(err, ErrSourceUnavailable)
}

// IsDecodeError reports whether err means the input bytes were not a
// decodable image.
func IsDecodeError(err error) bool {
	return errx.IsCode(err, ErrDecodeFailed)
}

// IsPreprocessingFailed reports whether err is the orchestrator-boundary
// failure condition; callers seeing it should submit the original image
// to the OCR service instead.
func IsPreprocessingFailed(err error) bool {
	return errx.IsCode(err, ErrPreprocessingFailed)
}
