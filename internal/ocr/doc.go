// Package ocr submits preprocessed document images for text recognition.
//
// The package separates the recognition engine from the job lifecycle:
//
//   - Engine is the recognition interface. On Linux with CGO enabled the
//     native Tesseract bindings (gosseract/v2) implement it; other builds
//     get a stub that reports ErrEngineUnavailable so the preprocessing
//     pipeline still works without libtesseract installed.
//   - ReadOperation wraps a recognition call as an asynchronous job with
//     the notStarted/running/succeeded/failed lifecycle. Submit starts
//     the job, Poll inspects it, Wait blocks with a bounded exponential
//     backoff (500ms doubling up to 5s between polls).
//
// # Languages
//
// Engines take Tesseract language codes ("eng", "deu", "por", ...). The
// matching traineddata must be installed on the system, for example via
// the tesseract-ocr-<lang> packages on Debian and Ubuntu.
package ocr
