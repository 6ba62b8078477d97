// Package freedist computes the optimal free distance with N legs over a
// recorded flight trajectory: the choice of N+1 ordered turnpoints drawn
// from the trajectory that maximizes the sum of geodesic inter-turnpoint
// distances, subject to the 1000-unit altitude-loss rule (finish altitude
// must not be more than 1000 units below start altitude).
//
// 🚀 What is freedist?
//
//	A free-flight (paragliding/hang-gliding) scoring kernel: given a
//	sequence of GPS fixes, it finds the best N-leg polyline through them.
//
//	  • A layered dynamic-programming graph enumerating the best
//	    length-N path starting at every candidate fix
//	  • A branch-and-bound search over promising starts, pruned by a
//	    similarity cache that reuses one solved start to bound others
//	  • A local "slide" refinement that wiggles only the first/last
//	    turnpoint while holding the interior path constant
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	geo/           — PointSource/Projector/EllipsoidDistance collaborators
//	distmatrix/    — triangular planar-distance matrix, built row-parallel
//	layeredgraph/  — the backward layered DP graph (unconstrained +
//	                 start-constrained builds) and back-pointer reconstruction
//	simcache/      — the similarity cache that prunes candidate starts
//	searchkernel/  — the outer branch-and-bound driver and the Slide pass
//
// The top-level Optimize entry point wires these together into one
// synchronous, single-call kernel: no I/O, no cancellation points, internal
// parallelism limited to fork-join row/layer builds.
//
//	go get github.com/flightscore/freedist
package freedist
