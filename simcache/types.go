package simcache

import "sort"

// StopSet is a sorted, deduplicated set of fix indices — the legal
// finish points for some start candidate. Callers construct it via
// NewStopSet; the zero value is an empty set.
type StopSet struct {
	sorted []int
}

// NewStopSet builds a StopSet from an arbitrary (possibly unsorted,
// possibly duplicated) slice of fix indices.
func NewStopSet(indices []int) StopSet {
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)
	sorted = dedupe(sorted)
	return StopSet{sorted: sorted}
}

func dedupe(sorted []int) []int {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Len reports the number of elements in the set.
func (s StopSet) Len() int { return len(s.sorted) }

// Contains reports whether v is a member of the set.
func (s StopSet) Contains(v int) bool {
	i := sort.SearchInts(s.sorted, v)
	return i < len(s.sorted) && s.sorted[i] == v
}

// IsSupersetOf reports whether s contains every element of other.
func (s StopSet) IsSupersetOf(other StopSet) bool {
	if other.Len() > s.Len() {
		return false
	}
	for _, v := range other.sorted {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// Difference returns the elements of s that are not in other, in
// ascending order.
func (s StopSet) Difference(other StopSet) []int {
	diff := make([]int, 0, len(s.sorted))
	for _, v := range s.sorted {
		if !other.Contains(v) {
			diff = append(diff, v)
		}
	}
	return diff
}

// Last returns the largest element of the set. Panics if the set is
// empty; callers only call this on a non-empty stored item's stop set.
func (s StopSet) Last() int {
	return s.sorted[len(s.sorted)-1]
}

// CacheItem records one resolved (or bounded) start candidate: the fix
// it started at, the legal finish fixes that were considered for it, and
// the best distance found (or used as an upper bound) for that set.
type CacheItem struct {
	Start    int
	Stops    StopSet
	Distance float32
}
