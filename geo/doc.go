// Package geo provides the geographic collaborators the optimization
// kernel consumes through narrow interfaces: a random-access PointSource
// of GPS fixes, a Projector from geographic to planar coordinates, and an
// EllipsoidDistance function for the final reported distance.
//
// None of the three is part of the optimization kernel proper — a real
// deployment would plug in a flight-recorder parser, a production-grade
// equirectangular projection, and a certified Vincenty/geodesic routine.
// The implementations here (EquirectangularProjector, VincentyDistance)
// are faithful, self-contained translations of the reference
// implementation this kernel was modeled on, sufficient to run the kernel
// end to end and to satisfy its documented error bounds.
package geo
