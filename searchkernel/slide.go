package searchkernel

import "github.com/flightscore/freedist/geo"

// Slide holds the interior of result's path constant and jointly
// searches a new (first, last) turnpoint pair over window, maximizing
// the sum of the two boundary-leg planar distances (every other leg is
// unchanged, so only the boundary legs affect the objective). Paths
// under three turnpoints have no interior to hold constant and return
// a zero OptimizationResult and false.
//
// The search windows are: first turnpoint candidates in
// [window.Start, min(window.Stop, path[1])), and last turnpoint
// candidates in [path[len-2], route length). Every (start, stop) pair is
// checked for altitude compliance before being scored.
func Slide(result OptimizationResult, route geo.PointSource, planar []geo.PlanarPoint, window Bound, dist geo.EllipsoidDistance) (OptimizationResult, bool) {
	path := result.Path
	if len(path) < 3 {
		return OptimizationResult{}, false
	}

	second := path[1]
	penultimate := path[len(path)-2]

	firstLegEnd := window.Stop
	if second < firstLegEnd {
		firstLegEnd = second
	}

	var (
		found     bool
		bestStart int
		bestStop  int
		bestDist  float32
	)
	for start := window.Start; start < firstLegEnd; start++ {
		for stop := penultimate; stop < route.Len(); stop++ {
			if !geo.AltitudeCompliant(route, start, stop) {
				continue
			}
			firstLeg := planar[start].Distance(planar[second])
			lastLeg := planar[stop].Distance(planar[penultimate])
			d := firstLeg + lastLeg
			if !found || d > bestDist {
				found = true
				bestStart, bestStop, bestDist = start, stop, d
			}
		}
	}
	if !found {
		return OptimizationResult{}, false
	}

	newPath := append([]int(nil), path...)
	newPath[0] = bestStart
	newPath[len(newPath)-1] = bestStop

	return OptimizationResult{
		Path:     newPath,
		Distance: geo.CumulativeDistance(route, newPath, dist),
	}, true
}
