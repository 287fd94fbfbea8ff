// Package linearalgebra is a small toolkit for dense linear algebra over
// float64, centered on Gauss-Jordan elimination to reduced row-echelon
// form (RREF).
//
// Everything is organized under three subpackages plus one binary:
//
//	matrix/ — the dense store: a flat, row-major float64 buffer with
//	          bounds-checked element access and zero-copy row views
//	rref/   — the reducer: per-row pivot search + column elimination with
//	          an injectable absolute tolerance (default 1e-15)
//	render/ — the formatter: aligned 25-character cells, | borders,
//	          fixed 10-digit HALF-UP decimals, negative-zero suppression
//	cmd/gauss-jordan — an interactive console calculator gluing the three
//	          together (prompt, print original, reduce, print result)
//
// Quick example:
//
//	m, _ := matrix.NewDenseFromSlice(2, 2, []float64{2, 4, 1, 3})
//	_ = rref.Reduce(m)             // m is now the 2×2 identity
//	s, _ := render.FormatMatrix(m) // aligned text grid
//
// Design notes:
//
//   - The store is a single contiguous slice addressed as r*cols+c; the
//     reducer mutates it in place and allocates nothing.
//   - The tolerance is absolute, not relative, and the reducer performs no
//     row swaps; both are documented, intentional behavior.
//   - Degenerate shapes (0×N, N×0, rank-deficient) are valid outcomes at
//     every layer, never errors.
package linearalgebra
