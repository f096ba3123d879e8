// Package detection provides straight-line feature detection and skew
// angle estimation for document images.
//
// The package implements the parametric Hough line transform over a
// Canny edge mask and turns the resulting (rho, theta) line candidates
// into a single robust skew estimate for the orientation corrector.
//
// # Algorithm Overview
//
// Line detection votes every edge pixel into an accumulator over the
// (rho, theta) parameter space at 1 px / 1 degree resolution; cells above
// the vote threshold that are also local maxima become LineCandidates.
// Skew estimation normalizes each candidate angle so a horizontal line
// maps to zero and takes the median, which is robust to a minority of
// outlier detections (a vertical table rule in a page of horizontal
// text, for example).
//
// # Performance Considerations
//
// Voting is O(edge pixels * 180) and the accumulator is
// O(image diagonal * 360) cells, so cost grows with resolution. Typical
// phone photos process in well under a second; for very large scans,
// downsampling before detection is an option the pipeline currently does
// not take.
package detection
