package detection

import (
	"math"
	"sort"
)

// EstimateSkew derives a document skew angle in degrees from a set of
// detected line candidates.
//
// Each candidate's theta is converted to degrees and normalized by
// subtracting 90, so a horizontal text line contributes an angle near
// zero. The estimate is the median of the normalized angles: with a
// handful of spurious detections among many true baseline hits, the
// median stays pinned to the document's real orientation where a mean
// would drift toward the outliers. An even-sized set averages the two
// middle values.
//
// The boolean result is false when no candidates were supplied; callers
// skip rotation entirely in that case.
func EstimateSkew(lines []LineCandidate) (float64, bool) {
	if len(lines) == 0 {
		return 0, false
	}

	angles := make([]float64, len(lines))
	for i, line := range lines {
		angles[i] = line.Theta*180.0/math.Pi - 90.0
	}
	sort.Float64s(angles)

	mid := len(angles) / 2
	if len(angles)%2 == 1 {
		return angles[mid], true
	}
	return (angles[mid-1] + angles[mid]) / 2, true
}
