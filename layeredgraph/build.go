package layeredgraph

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/flightscore/freedist/distmatrix"
	"github.com/flightscore/freedist/geo"
)

// BuildUnconstrained builds the layered DP graph ignoring the altitude
// rule entirely. Layer k (0-indexed) holds, for every fix i, the best
// total planar distance achievable over a strictly-increasing path of
// k+2 fixes starting at i (i.e. k+1 legs), with the back-pointer to the
// next turnpoint chosen.
func BuildUnconstrained(ctx context.Context, dm *distmatrix.Matrix, legs int) (*Graph, error) {
	return build(ctx, dm, legs, nil, 0)
}

// BuildStartConstrained builds the layered DP graph assuming a fixed
// start altitude: any bottom-layer cell whose finish altitude drops more
// than geo.AltitudeLossLimit below startAltitude is penalized by
// PenaltyMagnitude. The cell remains walkable via its back-pointer (so
// reconstruction never fails), but loses any argmax it would otherwise
// have won unless every alternative is also non-compliant.
func BuildStartConstrained(ctx context.Context, dm *distmatrix.Matrix, legs int, route geo.PointSource, startAltitude int16) (*Graph, error) {
	return build(ctx, dm, legs, route, startAltitude)
}

func build(ctx context.Context, dm *distmatrix.Matrix, legs int, route geo.PointSource, startAltitude int16) (*Graph, error) {
	n := dm.N()
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	if legs <= 0 {
		return nil, ErrTooFewLegs
	}
	if n < legs+1 {
		return nil, ErrRouteTooShort
	}

	constrained := route != nil
	layers := make([][]Cell, legs)

	bottom, err := buildBottomLayer(ctx, dm, n, constrained, route, startAltitude)
	if err != nil {
		return nil, err
	}
	layers[0] = bottom

	for k := 1; k < legs; k++ {
		layer, err := buildNextLayer(ctx, dm, n, layers[k-1])
		if err != nil {
			return nil, err
		}
		layers[k] = layer
	}

	return &Graph{layers: layers, n: n}, nil
}

// buildBottomLayer computes, for each start index i, the best single-leg
// hop distance/(target index), with one goroutine per row. A leg must
// connect two distinct turnpoints, so the self-hop (target == i) is never
// a candidate; a cell with no forward candidate (i is the last fix) is
// given distance negative-infinity so it can never win a later argmax but
// still reconstructs without a panic.
func buildBottomLayer(ctx context.Context, dm *distmatrix.Matrix, n int, constrained bool, route geo.PointSource, startAltitude int16) ([]Cell, error) {
	cells := make([]Cell, n)
	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			row := dm.Row(i)
			best := Cell{PrevIndex: i, Distance: float32(math.Inf(-1))}
			for k := 1; k < len(row); k++ {
				finish := i + k
				d := row[k]
				if constrained && int32(startAltitude)-int32(route.Altitude(finish)) > geo.AltitudeLossLimit {
					d -= PenaltyMagnitude
				}
				if betterDistance(d, best.Distance) {
					best = Cell{PrevIndex: finish, Distance: d}
				}
			}
			cells[i] = best

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return cells, nil
}

// buildNextLayer computes, for each start index i, the best one-leg hop
// to some m > i followed by the previous layer's best path starting at
// m, with one goroutine per row.
func buildNextLayer(ctx context.Context, dm *distmatrix.Matrix, n int, prev []Cell) ([]Cell, error) {
	cells := make([]Cell, n)
	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			row := dm.Row(i)
			best := Cell{PrevIndex: i, Distance: float32(math.Inf(-1))}
			for k := 1; k < len(row); k++ {
				m := i + k
				d := row[k] + prev[m].Distance
				if betterDistance(d, best.Distance) {
					best = Cell{PrevIndex: m, Distance: d}
				}
			}
			cells[i] = best

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return cells, nil
}

// betterDistance implements the total ordering spec.md §9 requires for
// max-by-distance reductions: NaN sorts below every number, and a
// strictly-greater candidate wins ties by first-seen (so callers should
// call this only for a strict improvement check, never for equality).
func betterDistance(candidate, current float32) bool {
	if candidate != candidate { // candidate is NaN
		return false
	}
	if current != current { // current is NaN, candidate is not
		return true
	}

	return candidate > current
}
