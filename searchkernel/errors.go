package searchkernel

import "errors"

// ErrMinimumStopNotFound is returned when the cumulative consecutive-fix
// distance never exceeds the current best distance anywhere along the
// route — a degenerate route (near-identical fixes clustered together)
// that leaves the outer search with no meaningful cutoff to work with.
var ErrMinimumStopNotFound = errors.New("searchkernel: minimum stop index not found")
