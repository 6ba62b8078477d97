package simcache

import "github.com/flightscore/freedist/geo"

// Cache holds resolved start candidates in insertion order and answers
// whether a new candidate can be bounded by one of them instead of being
// fully resolved.
type Cache struct {
	items []CacheItem
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{}
}

// Set appends a resolved (or bounded) candidate to the cache.
func (c *Cache) Set(item CacheItem) {
	c.items = append(c.items, item)
}

// Check scans stored items most-recently-set first, looking for one that
// bounds the new candidate (candidateStart, stops) below bestDistance.
//
// A stored item only yields a valid bound when the new candidate's stop
// set is a superset of the stored item's: the stored item's best path is
// feasible for the new candidate up to an offset at the start, and any
// additional finish fixes the new candidate permits are bounded via the
// triangle inequality against the stored item's last (farthest) finish.
// The reverse direction (new is a subset) does not hold — a smaller
// finish set can still allow a better result, since it is no longer
// dominated by a finish index that "hides" it once the DP runs.
//
// Returns (true, bound) when the candidate can be skipped using bound as
// its distance; (false, 0) when it must be resolved in full.
func (c *Cache) Check(points []geo.PlanarPoint, candidateStart int, bestDistance float32, stops StopSet) (bool, float32) {
	for i := len(c.items) - 1; i >= 0; i-- {
		item := c.items[i]
		offsetStart := points[item.Start].Distance(points[candidateStart])
		if item.Distance+offsetStart >= bestDistance {
			continue
		}
		if !stops.IsSupersetOf(item.Stops) {
			continue
		}

		useCaching := true
		distance := item.Distance
		for _, toCheck := range stops.Difference(item.Stops) {
			offsetEnd := points[item.Stops.Last()].Distance(points[toCheck])
			distance = offsetEnd + offsetStart + item.Distance
			if distance > bestDistance {
				useCaching = false
				break
			}
		}
		if useCaching {
			return true, distance
		}
	}

	return false, 0
}
