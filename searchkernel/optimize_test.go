package searchkernel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flightscore/freedist/distmatrix"
	"github.com/flightscore/freedist/geo"
	"github.com/flightscore/freedist/layeredgraph"
	"github.com/flightscore/freedist/searchkernel"
)

// buildForRoute is a small test harness replicating what the root
// package's Optimize wires together, without depending on it (keeps
// this package's tests independent of the root package).
func buildForRoute(t *testing.T, route geo.SliceSource) (*distmatrix.Matrix, []geo.PlanarPoint) {
	t.Helper()
	planar, err := geo.EquirectangularProjector{}.Project(route)
	require.NoError(t, err)
	dm, err := distmatrix.Build(context.Background(), planar)
	require.NoError(t, err)
	return dm, planar
}

// TestOptimize_PrefersCompliantOverFartherNonCompliant constructs a
// route where the unconstrained DP's own per-row optimum is
// altitude-noncompliant for most starts, exercising the outer search's
// fallback to genuine start candidates rather than a flat fixture.
func TestOptimize_PrefersCompliantOverFartherNonCompliant(t *testing.T) {
	route := geo.SliceSource{
		{Latitude: 0, Longitude: 0, Altitude: 0},
		{Latitude: 0.09, Longitude: 0, Altitude: 0},
		{Latitude: 0, Longitude: 0.45, Altitude: -5000},
		{Latitude: 0.09, Longitude: 0.009, Altitude: 0},
	}
	dm, planar := buildForRoute(t, route)

	result, err := searchkernel.Optimize(context.Background(), route, planar, dm, 1, 0, geo.VincentyDistance)
	require.NoError(t, err)
	require.Len(t, result.Path, 2)
	require.Greater(t, result.Path[1], result.Path[0])
	require.True(t, geo.AltitudeCompliant(route, result.Path[0], result.Path[len(result.Path)-1]))
}

// TestOptimize_NoValidSolutionPropagates mirrors spec.md's "Monotone
// altitude drop" scenario: every feasible endpoint pair loses more than
// 1000 units of altitude, so the kernel must report NoValidSolution
// rather than returning any path.
func TestOptimize_NoValidSolutionPropagates(t *testing.T) {
	n := 10
	route := make(geo.SliceSource, n)
	for i := range route {
		route[i] = geo.Fix{Latitude: float32(i) * 0.01, Longitude: 0, Altitude: int16(-2000 * i)}
	}
	dm, planar := buildForRoute(t, route)

	_, err := searchkernel.Optimize(context.Background(), route, planar, dm, 2, 0, geo.VincentyDistance)
	require.ErrorIs(t, err, layeredgraph.ErrNoValidSolution)
}

// TestOptimize_BreakAtShortCircuits sets break_at above anything
// achievable, so the search must return the seed best unchanged instead
// of resolving any start candidate.
func TestOptimize_BreakAtShortCircuits(t *testing.T) {
	route := geo.SliceSource{
		{Latitude: 0, Longitude: 0, Altitude: 0},
		{Latitude: 0.09, Longitude: 0, Altitude: 0},
		{Latitude: 0, Longitude: 0.45, Altitude: -5000},
		{Latitude: 0.09, Longitude: 0.009, Altitude: 0},
	}
	dm, planar := buildForRoute(t, route)

	result, err := searchkernel.Optimize(context.Background(), route, planar, dm, 1, 1_000_000, geo.VincentyDistance)
	require.NoError(t, err)
	require.True(t, geo.AltitudeCompliant(route, result.Path[0], result.Path[len(result.Path)-1]))
}
