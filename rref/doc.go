// Package rref implements Gauss-Jordan elimination: in-place reduction of a
// dense float64 matrix to reduced row-echelon form (RREF).
//
// The package offers:
//
//   - ReduceRowAndColumn — one elimination step: search row startRow for its
//     leading (pivot) element from column startCol rightward, normalize the
//     row so the pivot becomes 1, then zero the pivot column in every other
//     row (above first, then below).
//   - Reduce — the driving loop: one step per row, each restarting its
//     column scan at 0. Columns pivoted by earlier steps read as ≈0 in the
//     current row and are skipped, so repeated per-row invocation builds the
//     overall RREF without any global bookkeeping of used columns.
//   - IsReduced — predicate for the reduced shape (every nonzero row leads
//     with a 1 that is the sole nonzero entry of its column).
//
// Numeric policy: all "effectively zero" and "effectively one" tests use a
// single absolute tolerance (DefaultEpsilon = 1e-15), injectable per call
// via WithEpsilon. The tolerance is absolute, not relative: large-magnitude
// matrices may misclassify near-integer values. This is documented behavior.
//
// The reducer performs no row swaps (no partial pivoting). Consequences,
// both intentional: a pivot that is tiny but above the tolerance can amplify
// rounding error, and zero rows keep their original position instead of
// sinking to the bottom, so the result is row-equivalent to canonical RREF
// but not always identically ordered.
//
// All operations are single-threaded and allocation-free on *matrix.Dense.
package rref
