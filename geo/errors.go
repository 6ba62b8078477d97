package geo

import "errors"

// Sentinel errors for the geo package. Callers should use errors.Is, not
// direct equality, since the root freedist package wraps these.
var (
	// ErrEmptyInput is returned when a PointSource has zero fixes.
	ErrEmptyInput = errors.New("geo: point source is empty")
)
