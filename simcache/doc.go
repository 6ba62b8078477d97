// Package simcache implements the outer search's similarity cache: a
// heuristic that lets the branch-and-bound driver in searchkernel skip
// re-solving a start candidate whose achievable distance cannot possibly
// beat the current best.
//
// Each CacheItem records a start candidate that was already resolved (or
// bounded), together with the sorted set of finish fixes that were legal
// for it. Cache.Check compares a new candidate's legal finish set against
// previously stored items: a stored item bounds the new candidate only
// when the new candidate's finish set is a superset of the stored one's —
// the reverse direction looks plausible but is wrong, and is covered
// explicitly by this package's tests (see DESIGN.md).
package simcache
