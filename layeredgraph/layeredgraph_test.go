package layeredgraph_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flightscore/freedist/distmatrix"
	"github.com/flightscore/freedist/geo"
	"github.com/flightscore/freedist/layeredgraph"
)

// collinear builds n points spaced 1 unit apart along the X axis, so
// D[i][j] == j-i exactly (no projection rounding to worry about).
func collinear(n int) []geo.PlanarPoint {
	points := make([]geo.PlanarPoint, n)
	for i := range points {
		points[i] = geo.PlanarPoint{X: float32(i), Y: 0}
	}
	return points
}

func buildMatrix(t *testing.T, points []geo.PlanarPoint) *distmatrix.Matrix {
	t.Helper()
	dm, err := distmatrix.Build(context.Background(), points)
	require.NoError(t, err)
	return dm
}

func TestBuildUnconstrained_TooFewLegs(t *testing.T) {
	dm := buildMatrix(t, collinear(5))
	_, err := layeredgraph.BuildUnconstrained(context.Background(), dm, 0)
	require.ErrorIs(t, err, layeredgraph.ErrTooFewLegs)
}

func TestBuildUnconstrained_RouteTooShort(t *testing.T) {
	dm := buildMatrix(t, collinear(3))
	_, err := layeredgraph.BuildUnconstrained(context.Background(), dm, 4)
	require.ErrorIs(t, err, layeredgraph.ErrRouteTooShort)
}

func TestBuildUnconstrained_CollinearBestSpansEndpoints(t *testing.T) {
	dm := buildMatrix(t, collinear(5))
	g, err := layeredgraph.BuildUnconstrained(context.Background(), dm, 2)
	require.NoError(t, err)

	sol := g.FindBestSolution()
	require.InDelta(t, 4.0, float64(sol.Distance), 1e-5)
	require.Equal(t, 0, sol.Path[0])
	require.Equal(t, 4, sol.Path[len(sol.Path)-1])
	require.Len(t, sol.Path, 3)
	for i := 1; i < len(sol.Path); i++ {
		require.Greater(t, sol.Path[i], sol.Path[i-1])
	}
}

// TestBuildUnconstrained_DegenerateIdenticalFixes mirrors the all-zero,
// fully tied worst case: n == legs+1 leaves no freedom at all, so the
// only strictly-increasing path of the required length is 0..n-1.
func TestBuildUnconstrained_DegenerateIdenticalFixes(t *testing.T) {
	points := make([]geo.PlanarPoint, 7)
	for i := range points {
		points[i] = geo.PlanarPoint{X: 10, Y: 10}
	}
	dm := buildMatrix(t, points)
	g, err := layeredgraph.BuildUnconstrained(context.Background(), dm, 6)
	require.NoError(t, err)

	sol := g.FindBestSolution()
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, sol.Path)
	require.InDelta(t, 0.0, float64(sol.Distance), 1e-6)
}

func TestReconstruct_StrictlyIncreasing(t *testing.T) {
	dm := buildMatrix(t, collinear(10))
	g, err := layeredgraph.BuildUnconstrained(context.Background(), dm, 4)
	require.NoError(t, err)

	for start := 0; start <= dm.N()-1-g.Legs(); start++ {
		path := g.Reconstruct(start)
		require.Len(t, path, 5)
		for i := 1; i < len(path); i++ {
			require.Greater(t, path[i], path[i-1])
		}
	}
}

func TestBuildStartConstrained_PenalizesNonCompliantFinish(t *testing.T) {
	// Four collinear fixes; the last one drops 2000 units of altitude
	// from a start of 0, which violates the 1000-unit rule, so a
	// constrained build starting at fix 0 must prefer a compliant finish
	// even though it is geometrically closer.
	points := collinear(4)
	route := geo.SliceSource{
		{Latitude: 0, Longitude: 0, Altitude: 0},
		{Latitude: 0, Longitude: 0, Altitude: 0},
		{Latitude: 0, Longitude: 0, Altitude: 0},
		{Latitude: 0, Longitude: 0, Altitude: -2000},
	}
	dm := buildMatrix(t, points)

	g, err := layeredgraph.BuildStartConstrained(context.Background(), dm, 1, route, 0)
	require.NoError(t, err)

	sol, err := g.FindBestValidSolution(route)
	require.NoError(t, err)
	require.NotEqual(t, 3, sol.Path[len(sol.Path)-1])
}

func TestFindBestValidSolution_NoCompliantPath(t *testing.T) {
	// Every fix after the first drops more than 1000 units of altitude,
	// so no two-index path from fix 0 can ever satisfy the rule.
	n := 5
	points := collinear(n)
	route := make(geo.SliceSource, n)
	for i := range route {
		route[i] = geo.Fix{Latitude: 0, Longitude: 0, Altitude: int16(-2000 * i)}
	}
	dm := buildMatrix(t, points)

	g, err := layeredgraph.BuildUnconstrained(context.Background(), dm, 1)
	require.NoError(t, err)

	_, err = g.FindBestValidSolution(route)
	require.ErrorIs(t, err, layeredgraph.ErrNoValidSolution)
}

func TestGetStartCandidates_SortedAscendingAndFiltered(t *testing.T) {
	dm := buildMatrix(t, collinear(6))
	g, err := layeredgraph.BuildUnconstrained(context.Background(), dm, 2)
	require.NoError(t, err)

	candidates := g.GetStartCandidates(0)
	require.NotEmpty(t, candidates)
	for i := 1; i < len(candidates); i++ {
		require.LessOrEqual(t, candidates[i-1].Distance, candidates[i].Distance)
	}
	for _, c := range candidates {
		require.Greater(t, c.Distance, float32(0))
	}

	best := candidates[len(candidates)-1].Distance
	none := g.GetStartCandidates(best)
	require.Empty(t, none)
}

// TestUpperBoundProperty checks the DP's defining guarantee: the best
// overall distance the graph reports is at least as large as the planar
// sum of any concrete strictly-increasing path of the same length,
// recomputed directly off the matrix as a cross-check.
func TestUpperBoundProperty(t *testing.T) {
	dm := buildMatrix(t, collinear(8))
	g, err := layeredgraph.BuildUnconstrained(context.Background(), dm, 3)
	require.NoError(t, err)

	alt := []int{2, 3, 5, 6}
	var altDist float32
	for i := 1; i < len(alt); i++ {
		altDist += dm.At(alt[i-1], alt[i])
	}

	best := g.FindBestSolution()
	require.GreaterOrEqual(t, float64(best.Distance), float64(altDist)-1e-5)
}

func TestLastFixHasNoForwardCandidate(t *testing.T) {
	dm := buildMatrix(t, collinear(3))
	g, err := layeredgraph.BuildUnconstrained(context.Background(), dm, 1)
	require.NoError(t, err)

	// Fix 2 is the last fix; a 1-leg path starting there is impossible,
	// so it must never win FindBestSolution's argmax.
	sol := g.FindBestSolution()
	require.NotEqual(t, 2, sol.Path[0])
	require.False(t, math.IsInf(float64(sol.Distance), -1))
}
