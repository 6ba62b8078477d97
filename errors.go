package freedist

import (
	"errors"
	"fmt"

	"github.com/flightscore/freedist/geo"
	"github.com/flightscore/freedist/layeredgraph"
	"github.com/flightscore/freedist/searchkernel"
)

// Sentinel errors returned by Optimize/OptimizeWith. Each wraps (via
// %w, never direct equality) the narrower internal sentinel that
// actually fired, matching matrix/errors.go's wrap-at-the-boundary
// convention: callers match with errors.Is against these, or against
// the wrapped package's own sentinel — both succeed.
var (
	// ErrEmptyInput is returned when route has zero fixes.
	ErrEmptyInput = errors.New("freedist: route is empty")

	// ErrNoValidSolution is returned when no altitude-compliant path
	// exists anywhere in the search space the kernel explored.
	ErrNoValidSolution = errors.New("freedist: no altitude-compliant solution")

	// ErrMinimumStopNotFound is returned when the route's consecutive-fix
	// distances never accumulate past the incumbent best, indicating a
	// degenerate route of near-identical fixes.
	ErrMinimumStopNotFound = errors.New("freedist: minimum stop index not found")
)

// wrapKernelError maps an internal package error to its root-level
// sentinel, preserving the original via %w so errors.Is matches either.
func wrapKernelError(err error) error {
	switch {
	case errors.Is(err, geo.ErrEmptyInput):
		return fmt.Errorf("%w: %w", ErrEmptyInput, err)
	case errors.Is(err, layeredgraph.ErrNoValidSolution):
		return fmt.Errorf("%w: %w", ErrNoValidSolution, err)
	case errors.Is(err, searchkernel.ErrMinimumStopNotFound):
		return fmt.Errorf("%w: %w", ErrMinimumStopNotFound, err)
	default:
		return err
	}
}
