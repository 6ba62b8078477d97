package layeredgraph

import "errors"

// Sentinel errors for the layeredgraph package.
var (
	// ErrEmptyMatrix is returned when a Build call is given a matrix over
	// zero points.
	ErrEmptyMatrix = errors.New("layeredgraph: empty distance matrix")

	// ErrTooFewLegs is returned when legs <= 0.
	ErrTooFewLegs = errors.New("layeredgraph: legs must be positive")

	// ErrRouteTooShort is returned when the matrix has fewer than legs+1
	// points, so no length-(legs+1) path exists at all.
	ErrRouteTooShort = errors.New("layeredgraph: route shorter than legs+1")

	// ErrNoValidSolution is returned by FindBestValidSolution when no
	// top-layer endpoint reconstructs into a path whose start/finish
	// altitude difference satisfies the 1000-unit rule.
	ErrNoValidSolution = errors.New("layeredgraph: no altitude-compliant solution")
)
