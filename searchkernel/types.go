package searchkernel

import (
	"github.com/flightscore/freedist/geo"
	"github.com/flightscore/freedist/layeredgraph"
)

// OptimizationResult is the kernel's final answer: the chosen fix
// indices (strictly increasing, legs+1 of them) and the ellipsoidal
// distance they sum to.
type OptimizationResult struct {
	Path     []int
	Distance float32
}

// newResult recomputes Distance from path via the ellipsoidal distance
// function, mirroring OptimizationResult::new in the reference driver —
// callers always carry a path and let this fill in the reported
// distance rather than trusting a planar DP value for the final figure.
func newResult(route geo.PointSource, path []int, dist geo.EllipsoidDistance) OptimizationResult {
	return OptimizationResult{
		Path:     path,
		Distance: geo.CumulativeDistance(route, path, dist),
	}
}

// Bound is the [min, max] start-index window spanned by a set of start
// candidates, used to cap how far the Slide refinement is allowed to
// walk the path's first turnpoint backward.
type Bound struct {
	Start int
	Stop  int
}

// boundFrom computes the Bound spanning a non-empty slice of start
// candidates' Start fields.
func boundFrom(candidates []layeredgraph.StartCandidate) Bound {
	b := Bound{Start: candidates[0].Start, Stop: candidates[0].Start}
	for _, c := range candidates[1:] {
		if c.Start < b.Start {
			b.Start = c.Start
		}
		if c.Start > b.Stop {
			b.Stop = c.Start
		}
	}
	return b
}
