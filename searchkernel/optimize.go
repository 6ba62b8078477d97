package searchkernel

import (
	"context"

	"github.com/flightscore/freedist/distmatrix"
	"github.com/flightscore/freedist/geo"
	"github.com/flightscore/freedist/layeredgraph"
	"github.com/flightscore/freedist/simcache"
)

// unreachableDistance marks a cached start candidate that was proven to
// never beat the incumbent: it can always be safely skipped, but must
// never look promising enough to seed someone else's bound.
const unreachableDistance = float32(-1 << 30)

// Optimize runs the outer branch-and-bound search described in
// original_source/src/free.rs's optimize driver: build the unconstrained
// DP graph, seed an incumbent from its altitude-filtered optimum and two
// Slide passes, then resolve remaining start candidates in
// descending-upper-bound order — pruning via the similarity cache and a
// cumulative-distance floor — until none can possibly improve on the
// incumbent or the search exhausts the candidate list.
//
// dm and planar must come from the same route (distmatrix.Build and a
// geo.Projector applied to it, respectively); dist computes the final
// reported distance between two fix indices.
func Optimize(ctx context.Context, route geo.PointSource, planar []geo.PlanarPoint, dm *distmatrix.Matrix, legs int, breakAt float32, dist geo.EllipsoidDistance) (OptimizationResult, error) {
	graph, err := layeredgraph.BuildUnconstrained(ctx, dm, legs)
	if err != nil {
		return OptimizationResult{}, err
	}

	bestSol, err := graph.FindBestValidSolution(route)
	if err != nil {
		return OptimizationResult{}, err
	}
	best := OptimizationResult{Path: bestSol.Path, Distance: bestSol.Distance}

	startCandidates := graph.GetStartCandidates(best.Distance)
	if len(startCandidates) == 0 {
		return newResult(route, best.Path, dist), nil
	}

	window := boundFrom(startCandidates)

	if improved, ok := Slide(best, route, planar, window, dist); ok && improved.Distance > best.Distance {
		best = improved
	}

	// Also try sliding the unconstrained (altitude-agnostic) optimum, to
	// catch edge cases the altitude-filtered seed missed entirely.
	unconstrained := graph.FindBestSolution()
	unconstrainedResult := OptimizationResult{Path: unconstrained.Path, Distance: unconstrained.Distance}
	if improved, ok := Slide(unconstrainedResult, route, planar, window, dist); ok && improved.Distance > best.Distance {
		best = improved
	}

	minStop, err := findMinimumStop(dm, best.Distance)
	if err != nil {
		return OptimizationResult{}, err
	}

	startCandidates = retainAbove(startCandidates, best.Distance)

	cache := simcache.New()
	for len(startCandidates) > 0 {
		candidate := startCandidates[len(startCandidates)-1]
		startCandidates = startCandidates[:len(startCandidates)-1]

		stops := candidate.ValidStops(route, minStop)
		if len(stops) == 0 {
			continue
		}
		stopSet := simcache.NewStopSet(stops)

		usable, bound := cache.Check(planar, candidate.Start, best.Distance, stopSet)
		if usable {
			cache.Set(simcache.CacheItem{Start: candidate.Start, Stops: stopSet, Distance: bound})
			continue
		}

		if candidate.Distance < breakAt {
			return newResult(route, best.Path, dist), nil
		}

		startAltitude := route.Altitude(candidate.Start)
		candidateGraph, err := layeredgraph.BuildStartConstrained(ctx, dm, legs, route, startAltitude)
		if err != nil {
			return OptimizationResult{}, err
		}

		candidateBest, err := candidateGraph.FindBestValidSolution(route)
		if err != nil {
			cache.Set(simcache.CacheItem{Start: candidate.Start, Stops: stopSet, Distance: unreachableDistance})
			continue
		}
		cache.Set(simcache.CacheItem{Start: candidate.Start, Stops: stopSet, Distance: candidateBest.Distance})

		if candidateBest.Distance > best.Distance {
			best = OptimizationResult{Path: candidateBest.Path, Distance: candidateBest.Distance}
			startCandidates = retainAbove(startCandidates, best.Distance)
		}
	}

	return newResult(route, best.Path, dist), nil
}

// retainAbove filters candidates to those whose upper bound still
// exceeds currentBest, preserving relative order (ascending by
// distance, as GetStartCandidates produced it).
func retainAbove(candidates []layeredgraph.StartCandidate, currentBest float32) []layeredgraph.StartCandidate {
	kept := candidates[:0]
	for _, c := range candidates {
		if c.Distance > currentBest {
			kept = append(kept, c)
		}
	}
	return kept
}

// findMinimumStop returns the smallest fix index i such that the
// cumulative consecutive-fix distance from the route's start through i
// exceeds distance — no finish at or before that index could possibly
// make up the remaining ground needed to beat it. Returns
// ErrMinimumStopNotFound if the cumulative distance never exceeds
// distance before the matrix runs out of consecutive pairs, which
// indicates a degenerate route of near-identical fixes.
func findMinimumStop(dm *distmatrix.Matrix, distance float32) (int, error) {
	var sum float32
	for i := 0; i < dm.N(); i++ {
		row := dm.Row(i)
		if len(row) < 2 {
			break
		}
		sum += row[1]
		if sum > distance {
			return i, nil
		}
	}
	return 0, ErrMinimumStopNotFound
}
