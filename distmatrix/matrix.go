package distmatrix

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/flightscore/freedist/geo"
)

// Matrix is the triangular planar-distance matrix. Invariants:
//
//	At(i, i) == 0
//	At(i, j) >= 0
//	At(i, j) is the total planar distance between fix i and fix j, not a
//	per-leg cost.
type Matrix struct {
	rows [][]float32 // rows[i][k] == distance(i, i+k), so len(rows[i]) == n-i
	n    int
}

// N returns the number of points the matrix was built over.
func (m *Matrix) N() int { return m.n }

// At returns the planar distance between fix i and fix j. The caller
// must ensure 0 <= i <= j < N(); this mirrors the DP's own triangular
// iteration order and is never violated by the kernel itself, so no
// bounds error is returned (a violation is a programmer error).
func (m *Matrix) At(i, j int) float32 {
	return m.rows[i][j-i]
}

// Row returns the backing slice for row i: Row(i)[k] is the distance from
// fix i to fix i+k. Exposed for the DP layer builders, which iterate a
// whole row at a time rather than calling At repeatedly.
func (m *Matrix) Row(i int) []float32 {
	return m.rows[i]
}

// Build constructs the triangular distance matrix over points, computing
// each row in its own goroutine (fork-join, joined before returning) —
// safe because each row only reads points and writes its own slice.
func Build(ctx context.Context, points []geo.PlanarPoint) (*Matrix, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	rows := make([][]float32, n)
	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			row := make([]float32, n-i)
			p1 := points[i]
			for k := range row {
				row[k] = p1.Distance(points[i+k])
			}
			rows[i] = row

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Matrix{rows: rows, n: n}, nil
}
