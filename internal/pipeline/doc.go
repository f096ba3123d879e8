// Package pipeline turns a photograph of handwritten or printed text
// into a cleaned binary image ready for OCR submission.
//
// The pipeline has three parts, run strictly in sequence by the
// Orchestrator:
//
//  1. OrientationCorrector measures document skew from detected line
//     features (Canny edges fed into a Hough transform, median of the
//     normalized line angles) and rotates the image to cancel it.
//  2. Enhancer applies the ordered enhancement stages: grayscale,
//     histogram equalization, Otsu binarization, denoising, tile-local
//     contrast enhancement, sharpening, dilation and a final blur.
//  3. The result is PNG-encoded for the OCR collaborator.
//
// # Artifacts
//
// Every stage writes its output under the configured artifact directory
// as {YYYYMMDD_HHMMSS}_{label}.png. Artifacts exist purely so a bad OCR
// result can be traced to the stage that mangled the image; stages chain
// in-memory values, never disk round-trips. Runs starting in the same
// second overwrite each other's artifacts; see ArtifactStore.
//
// # Returned stage
//
// The image handed back for OCR is the contrast-enhanced stage, not the
// last stage computed: sharpening, dilation and blur are persisted as
// diagnostics only. Enhancer.ReturnStage documents and controls this.
//
// # Failure policy
//
// Fetch and decode failures keep their own error codes
// (SOURCE_UNAVAILABLE, DECODE_FAILED). Everything after decode collapses
// into the single PREPROCESSING_FAILED condition at the orchestrator
// boundary; callers fall back to submitting the unprocessed original
// rather than failing the user request. There are no partial results -
// a run either returns the encoded image or an error, though artifacts
// already written stay on disk.
package pipeline
