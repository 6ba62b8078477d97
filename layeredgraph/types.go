package layeredgraph

// Cell holds the best distance achievable over a given number of legs
// starting at one fix, plus a back-pointer to the next turnpoint that
// achieves it.
type Cell struct {
	PrevIndex int
	Distance  float32
}

// Graph is the layered DP table: layers[k][i] is the best cell for a
// strictly-increasing path of k+1 legs (k+2 fixes) starting at fix i.
// Every layer has one Cell per fix; a cell with no forward candidate
// (e.g. i too close to the end of the route) holds a negative-infinity
// Distance so it can never win an argmax but still reconstructs safely.
type Graph struct {
	layers [][]Cell // layers[k] has N() cells; layers[k][i] describes a path starting at fix i.
	n      int      // number of fixes the graph was built over.
}

// Legs returns the number of legs (layers) the graph was built for.
func (g *Graph) Legs() int { return len(g.layers) }

// N returns the number of fixes the graph was built over.
func (g *Graph) N() int { return g.n }

// PenaltyMagnitude is the soft altitude-rule penalty subtracted from a
// non-compliant bottom-layer cell during a start-constrained build. It
// is larger than any attainable positive planar distance over Earth, so
// any compliant alternative wins the argmax while the cell remains
// walkable via its back-pointer if no compliant alternative exists.
const PenaltyMagnitude float32 = 100_000
