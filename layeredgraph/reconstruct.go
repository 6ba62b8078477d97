package layeredgraph

// Reconstruct walks the back-pointers from a chosen start index in the
// top layer down to the bottom layer, returning the legs+1 fix indices
// of the path, reversed into increasing order if necessary. O(legs) per
// call — the DP never materializes a full path per cell.
func (g *Graph) Reconstruct(start int) []int {
	legs := len(g.layers)
	path := make([]int, 0, legs+1)

	index := start
	for layer := legs - 1; layer >= 0; layer-- {
		path = append(path, index)
		index = g.layers[layer][index].PrevIndex
	}
	path = append(path, index)

	if path[0] > path[len(path)-1] {
		for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
			path[l], path[r] = path[r], path[l]
		}
	}

	return path
}
