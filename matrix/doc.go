// Package matrix provides the dense store used by the Gauss-Jordan
// elimination pipeline.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix backed by a single flat slice
//     (element (r,c) lives at r*cols+c) for cache locality and zero
//     per-row indirection.
//   - Bounds-checked At/Set returning sentinel errors (never panicking on
//     user input), plus zero-copy RowView windows for in-place kernels.
//   - Degenerate shapes as first-class citizens: a 0×N or N×0 matrix is a
//     valid, element-free value, not an error.
//
// All sentinel errors are matched via errors.Is; see errors.go.
package matrix
