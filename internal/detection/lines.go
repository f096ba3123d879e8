package detection

import (
	"math"
	"sort"
)

// LineCandidate is one straight-line feature detected in an edge mask,
// in the normal (rho, theta) parameterization: every point (x, y) on the
// line satisfies x*cos(theta) + y*sin(theta) = rho.
type LineCandidate struct {
	// Rho is the signed perpendicular distance from the origin in pixels.
	Rho float64 `json:"rho"`

	// Theta is the angle of the line's normal in radians, in [0, pi).
	Theta float64 `json:"theta"`

	// Votes is the number of edge pixels that voted for this line.
	Votes int `json:"votes"`
}

// HoughLines runs the standard Hough line transform over a boolean edge
// mask and returns the candidate lines whose accumulator cells received
// at least voteThreshold votes.
//
// Resolution is fixed at 1 pixel in rho and 1 degree (pi/180 radians) in
// theta. Each candidate must also be a local maximum within a 5x5
// neighborhood of the accumulator, which collapses the near-duplicate
// cells a single physical line produces into one candidate. Results are
// sorted by vote count, strongest first.
//
// An empty result is a normal outcome for images without straight
// features (callers treat it as "nothing to correct", not an error).
func HoughLines(edges [][]bool, voteThreshold int) []LineCandidate {
	height := len(edges)
	if height == 0 {
		return nil
	}
	width := len(edges[0])
	if width == 0 || voteThreshold < 1 {
		return nil
	}

	const numAngles = 180
	maxDist := int(math.Sqrt(float64(width*width + height*height)))

	// Precompute the trig table once; the voting loop touches every
	// (edge pixel, angle) pair.
	var cosTable, sinTable [numAngles]float64
	for theta := 0; theta < numAngles; theta++ {
		angle := float64(theta) * math.Pi / 180.0
		cosTable[theta] = math.Cos(angle)
		sinTable[theta] = math.Sin(angle)
	}

	accumulator := make([][]int, maxDist*2)
	for i := range accumulator {
		accumulator[i] = make([]int, numAngles)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !edges[y][x] {
				continue
			}
			for theta := 0; theta < numAngles; theta++ {
				rho := float64(x)*cosTable[theta] + float64(y)*sinTable[theta]
				rhoIdx := int(math.Round(rho)) + maxDist
				if rhoIdx >= 0 && rhoIdx < maxDist*2 {
					accumulator[rhoIdx][theta]++
				}
			}
		}
	}

	candidates := make([]LineCandidate, 0)
	for rhoIdx := 0; rhoIdx < maxDist*2; rhoIdx++ {
		for theta := 0; theta < numAngles; theta++ {
			votes := accumulator[rhoIdx][theta]
			if votes < voteThreshold {
				continue
			}

			// Keep only local maxima so one physical line yields one
			// candidate instead of a smear of adjacent cells.
			isMax := true
			for dr := -2; dr <= 2 && isMax; dr++ {
				for dt := -2; dt <= 2 && isMax; dt++ {
					if dr == 0 && dt == 0 {
						continue
					}
					nr := rhoIdx + dr
					nt := (theta + dt + numAngles) % numAngles
					if nr >= 0 && nr < maxDist*2 {
						if accumulator[nr][nt] > votes {
							isMax = false
						}
					}
				}
			}
			if !isMax {
				continue
			}

			candidates = append(candidates, LineCandidate{
				Rho:   float64(rhoIdx - maxDist),
				Theta: float64(theta) * math.Pi / 180.0,
				Votes: votes,
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Votes > candidates[j].Votes
	})
	return candidates
}
