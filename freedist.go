package freedist

import (
	"context"

	"github.com/flightscore/freedist/distmatrix"
	"github.com/flightscore/freedist/geo"
	"github.com/flightscore/freedist/searchkernel"
)

// OptimizationResult is the kernel's answer: the chosen fix indices
// (strictly increasing, legs+1 of them) and the ellipsoidal distance
// they sum to.
type OptimizationResult = searchkernel.OptimizationResult

// Optimize computes the optimal free distance with legs legs over
// route, using the Vincenty ellipsoidal distance for the final reported
// figure and the equirectangular projection for the search's internal
// planar approximation. breakAt is a floor, not a timeout: once the best
// remaining unresolved start candidate's upper bound drops below it, the
// search returns its current incumbent immediately rather than resolving
// any further candidates. Pass 0 to disable early exit and search
// exhaustively.
//
// Returns ErrEmptyInput if route has no fixes, ErrNoValidSolution if no
// altitude-compliant path exists, or ErrMinimumStopNotFound if route is
// degenerate (see searchkernel's findMinimumStop).
func Optimize(route geo.PointSource, legs int, breakAt float32) (OptimizationResult, error) {
	return OptimizeWith(route, legs, breakAt, geo.EquirectangularProjector{}, geo.VincentyDistance)
}

// OptimizeWith is Optimize with the projection and ellipsoidal distance
// collaborators made explicit, so a caller can substitute a different
// projector or geodesic routine (a test stub, or a future
// higher-precision ellipsoid implementation) without touching the
// kernel itself.
func OptimizeWith(route geo.PointSource, legs int, breakAt float32, projector geo.Projector, dist geo.EllipsoidDistance) (OptimizationResult, error) {
	if route.Len() == 0 {
		return OptimizationResult{}, wrapKernelError(geo.ErrEmptyInput)
	}

	planar, err := projector.Project(route)
	if err != nil {
		return OptimizationResult{}, wrapKernelError(err)
	}

	ctx := context.Background()
	dm, err := distmatrix.Build(ctx, planar)
	if err != nil {
		return OptimizationResult{}, wrapKernelError(err)
	}

	result, err := searchkernel.Optimize(ctx, route, planar, dm, legs, breakAt, dist)
	if err != nil {
		return OptimizationResult{}, wrapKernelError(err)
	}

	return result, nil
}
