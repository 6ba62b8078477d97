// Package distmatrix builds the triangular planar-distance matrix the
// optimization kernel's dynamic-programming layers read from.
//
// Conceptually a symmetric n×n matrix of planar distances in kilometers,
// it is stored as a ragged triangular structure: row i holds the
// distances from fix i to fixes i, i+1, ..., n-1, so D.At(i, j) with
// i <= j reads row[i][j-i]. Construction is embarrassingly parallel over
// rows (each row only reads the projected points and writes its own
// slice), and is fanned out with golang.org/x/sync/errgroup — one
// goroutine per row, joined before the matrix is returned.
package distmatrix
