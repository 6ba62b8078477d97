// Package searchkernel implements the outer branch-and-bound driver:
// given a route and its planar distance matrix, it builds an
// unconstrained layered DP graph, refines the seed incumbent's endpoints
// with a sliding-window search, and then finds the optimal
// altitude-compliant path by resolving start candidates in descending
// order of their unconstrained upper bound, pruning via a similarity
// cache and a monotonically tightening incumbent.
//
// The driver in Optimize is sequential by construction: pruning depends
// on best.Distance tightening mid-loop, so candidates cannot be resolved
// concurrently without breaking correctness (the fork-join parallelism
// lives one layer down, inside distmatrix and layeredgraph).
package searchkernel
