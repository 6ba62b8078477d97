package layeredgraph

import (
	"math"
	"sort"

	"github.com/flightscore/freedist/geo"
)

// feasible reports whether a top-layer cell corresponds to an actual
// achievable path rather than the negative-infinity placeholder left by
// a start index too close to the end of the route for the graph's leg
// count.
func feasible(c Cell) bool {
	return !math.IsInf(float64(c.Distance), -1)
}

// Solution is the raw result of a top-layer scan: a reconstructed path
// plus its planar-distance sum from the DP. The outer search layer
// (searchkernel) converts this into an OptimizationResult with the
// ellipsoidal total distance once a final answer is chosen.
type Solution struct {
	Path     []int
	Distance float32
}

// StartCandidate is a worklist entry produced by GetStartCandidates: a
// fix index that could start a better-than-best path, together with the
// unconstrained DP's upper-bound distance for that start.
type StartCandidate struct {
	Start    int
	Distance float32
}

// FindBestValidSolution scans the top layer for the best reconstructed
// path whose start/finish altitude difference satisfies the 1000-unit
// rule, filtering out any top-layer cell whose (unconstrained-DP-optimal)
// path violates it.
//
// This is a filtered optimum, not a constrained one: a cell's DP-optimal
// path may have been dominated during the DP by non-compliant
// alternatives, so this can miss a solution that would be best subject
// to the constraint. Its output is a lower bound for the outer search,
// never a proven optimum — except when g was built with
// BuildStartConstrained for a single candidate, in which case it is
// optimal for that candidate's start.
func (g *Graph) FindBestValidSolution(route geo.PointSource) (Solution, error) {
	top := g.layers[len(g.layers)-1]

	var (
		best  Solution
		found bool
	)
	for j, cell := range top {
		if !feasible(cell) {
			continue
		}
		path := g.Reconstruct(j)
		if !geo.AltitudeCompliant(route, path[0], path[len(path)-1]) {
			continue
		}
		if !found || betterDistance(cell.Distance, best.Distance) {
			best = Solution{Path: path, Distance: cell.Distance}
			found = true
		}
	}
	if !found {
		return Solution{}, ErrNoValidSolution
	}

	return best, nil
}

// FindBestSolution scans the top layer for the best reconstructed path
// with no altitude-rule filtering at all. Used only to seed the Slide
// refinement with an aggressive candidate for edge cases.
func (g *Graph) FindBestSolution() Solution {
	top := g.layers[len(g.layers)-1]

	best := Solution{Path: g.Reconstruct(0), Distance: top[0].Distance}
	for j, cell := range top {
		if j == 0 || !feasible(cell) {
			continue
		}
		if betterDistance(cell.Distance, best.Distance) {
			best = Solution{Path: g.Reconstruct(j), Distance: cell.Distance}
		}
	}

	return best
}

// ValidStops returns the fix indices that could legally finish a route
// started at sc.Start: every index strictly greater than both sc.Start
// and minimumStop whose altitude satisfies the 1000-unit rule relative to the start.
// minimumStop is normally the cumulative-distance cutoff computed by the
// outer search (see searchkernel) — any finish at or below it cannot
// possibly beat the current best even with the maximum remaining
// distance, so it is excluded before the caller ever resolves it.
func (sc StartCandidate) ValidStops(route geo.PointSource, minimumStop int) []int {
	stops := make([]int, 0, route.Len()-sc.Start)
	for index := sc.Start + 1; index < route.Len(); index++ {
		if index > minimumStop && geo.AltitudeCompliant(route, sc.Start, index) {
			stops = append(stops, index)
		}
	}
	return stops
}

// GetStartCandidates enumerates the top layer and emits one
// StartCandidate per start index whose unconstrained distance exceeds
// currentBest, sorted ascending by distance so popping from the end of
// the returned slice yields candidates in descending-distance
// (most-promising-first) order. O(n log n).
func (g *Graph) GetStartCandidates(currentBest float32) []StartCandidate {
	top := g.layers[len(g.layers)-1]

	candidates := make([]StartCandidate, 0, len(top))
	for j, cell := range top {
		if feasible(cell) && cell.Distance > currentBest {
			candidates = append(candidates, StartCandidate{Start: j, Distance: cell.Distance})
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Distance < candidates[b].Distance
	})

	return candidates
}
