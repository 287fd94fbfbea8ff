// SPDX-License-Identifier: MIT

package rref

import (
	"fmt"
	"math"

	"github.com/gonum/floats"

	"github.com/rkabealo/linear-algebra/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opReduceStep = "ReduceRowAndColumn"
	opReduce     = "Reduce"
	opIsReduced  = "IsReduced"
)

// rrefErrorf wraps err with an operation tag, preserving the original error
// via %w so callers still match sentinels with errors.Is.
func rrefErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Pivot is the ephemeral position of the leading 1 created (or confirmed) by
// one elimination step. It is returned by value and never persisted; the
// driving loop recomputes it on every call.
type Pivot struct {
	Row, Col int
}

// ReduceRowAndColumn performs one Gauss-Jordan elimination step in place.
// Implementation:
//   - Stage 1 (Validate): m non-nil, startRow within [0,rows), startCol
//     within [0,cols].
//   - Stage 2 (Pivot search): scan columns rightward in row startRow from
//     startCol. |v| ≤ eps ⇒ advance; otherwise v is the leading element:
//     if |v−1| > eps, divide the whole row by v so the pivot becomes 1
//     (modulo rounding); either way record (startRow, col) and stop.
//   - Stage 3 (Eliminate): if a pivot was found, for every other row whose
//     entry in the pivot column is not ≈0, subtract that entry times the
//     pivot row, element-wise. Rows above the pivot are processed first,
//     then rows below; the subtractions are independent, so the order does
//     not affect the result.
//
// Behavior highlights:
//   - A row with no entry above eps is a zero row: found=false and the
//     matrix is untouched (valid outcome, not an error).
//   - No row swaps; deterministic fixed loop orders.
//   - Fast path on *matrix.Dense via RowView slices; interface fallback
//     via At/Set for any other Matrix.
//
// Inputs:
//   - m: matrix to mutate; startRow: row being reduced; startCol: first
//     column of the pivot search (the driving loop always passes 0).
//   - opts: numeric policy (WithEpsilon; default 1e-15, absolute).
//
// Returns:
//   - Pivot: position of the leading 1 (zero value when found=false).
//   - bool: whether a pivot was found and elimination ran.
//
// Errors:
//   - ErrNilMatrix (nil m), ErrOutOfRange (bad startRow/startCol),
//     propagated At/Set errors on the fallback path.
//
// Complexity:
//   - Time O(rows*cols) per call, Space O(1).
func ReduceRowAndColumn(m matrix.Matrix, startRow, startCol int, opts ...Option) (Pivot, bool, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateNotNil(m); err != nil {
		return Pivot{}, false, rrefErrorf(opReduceStep, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if startRow < 0 || startRow >= rows {
		return Pivot{}, false, rrefErrorf(opReduceStep,
			fmt.Errorf("startRow=%d of %d rows: %w", startRow, rows, matrix.ErrOutOfRange))
	}
	// startCol == cols is legal and yields an immediate no-pivot result.
	if startCol < 0 || startCol > cols {
		return Pivot{}, false, rrefErrorf(opReduceStep,
			fmt.Errorf("startCol=%d of %d cols: %w", startCol, cols, matrix.ErrOutOfRange))
	}

	return reduceStep(m, startRow, startCol, o)
}

// Reduce drives the matrix to reduced row-echelon form in place: one
// ReduceRowAndColumn step per row index, top to bottom, each restarting the
// pivot search at column 0.
//
// Because every pass re-scans from column 0, columns pivoted by earlier
// passes read as ≈0 in the current row and are skipped, so the scan
// naturally advances to the next unpivoted column — this is what makes the
// repeated per-row invocation build the overall RREF without bookkeeping of
// which columns are already used.
//
// A 0-row or 0-column matrix is a no-op. Rank-deficient inputs are valid:
// zero rows contribute no pivot and are left unchanged wherever they sit.
//
// Errors: ErrNilMatrix, plus anything a step propagates on the fallback path.
// Complexity: Time O(rows²*cols), Space O(1).
func Reduce(m matrix.Matrix, opts ...Option) error {
	o := gatherOptions(opts...)
	if err := matrix.ValidateNotNil(m); err != nil {
		return rrefErrorf(opReduce, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return nil // empty matrix: nothing to reduce
	}
	for r := 0; r < rows; r++ {
		if _, _, err := reduceStep(m, r, 0, o); err != nil {
			return rrefErrorf(opReduce, err)
		}
	}

	return nil
}

// IsReduced reports whether m is in reduced form under the configured
// tolerance: every row is either a zero row (all entries ≈0) or leads with
// an entry ≈1 that is the only entry above the tolerance in its column.
//
// Note: because Reduce performs no row swaps, it guarantees exactly this
// property — not the canonical ordering (pivot columns strictly increasing,
// zero rows last). IsReduced therefore deliberately does not check ordering.
//
// Errors: ErrNilMatrix, propagated At errors.
// Complexity: Time O(rows*cols + p*rows) for p pivots, Space O(1).
func IsReduced(m matrix.Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateNotNil(m); err != nil {
		return false, rrefErrorf(opIsReduced, err)
	}
	rows, cols := m.Rows(), m.Cols()

	var (
		r, c, rr int     // loop iterators
		v        float64 // current element
		lead     int     // leading column of the current row
		err      error
	)
	for r = 0; r < rows; r++ {
		// Locate the leftmost entry above the tolerance.
		lead = -1
		for c = 0; c < cols; c++ {
			if v, err = m.At(r, c); err != nil {
				return false, rrefErrorf(opIsReduced, err)
			}
			if math.Abs(v) > o.eps {
				lead = c
				break
			}
		}
		if lead < 0 {
			continue // zero row: trivially reduced
		}
		// The leading entry must be ≈1 (v still holds it after the scan).
		if math.Abs(v-1) > o.eps {
			return false, nil
		}
		// ...and the sole above-tolerance entry of its column.
		for rr = 0; rr < rows; rr++ {
			if rr == r {
				continue
			}
			if v, err = m.At(rr, lead); err != nil {
				return false, rrefErrorf(opIsReduced, err)
			}
			if math.Abs(v) > o.eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// reduceStep dispatches one elimination step to the *Dense fast path or the
// generic interface fallback. Inputs are pre-validated by the callers.
func reduceStep(m matrix.Matrix, startRow, startCol int, o Options) (Pivot, bool, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return reduceStepDense(d, startRow, startCol, o)
	}

	return reduceStepGeneric(m, startRow, startCol, o)
}

// reduceStepDense is the flat-slice fast path: the pivot row and every
// eliminated row are RowView windows into the backing storage, so the
// kernels are a plain division loop (normalization) and floats.AddScaled
// (elimination) with no per-element dispatch.
func reduceStepDense(d *matrix.Dense, startRow, startCol int, o Options) (Pivot, bool, error) {
	rows, cols := d.Shape()
	pivotRow, err := d.RowView(startRow)
	if err != nil {
		return Pivot{}, false, rrefErrorf(opReduceStep, err)
	}

	// Pivot search: fixed left-to-right scan within the pivot row.
	var (
		col     int     // scan position
		lead    float64 // candidate leading element
		k       int     // normalization iterator
		reduced bool    // pivot found flag
		pv      Pivot
	)
	for col = startCol; col < cols && !reduced; {
		lead = pivotRow[col]
		if math.Abs(lead) <= o.eps {
			col++ // effectively zero: keep scanning rightward
			continue
		}
		if math.Abs(lead-1) > o.eps {
			// Nonzero and not yet 1: divide the whole row by the leading
			// value, turning it into exactly 1 (lead/lead).
			for k = 0; k < cols; k++ {
				pivotRow[k] /= lead
			}
		}
		pv = Pivot{Row: startRow, Col: col}
		reduced = true
	}
	if !reduced {
		return Pivot{}, false, nil // zero row: phase 2 skipped entirely
	}

	// Elimination: zero the pivot column in every other row. Iterating
	// r=0..rows-1 and skipping the pivot row processes the rows above first,
	// then the rows below.
	var (
		r    int       // row iterator
		row  []float64 // current row window
		mult float64   // entry to eliminate
	)
	for r = 0; r < rows; r++ {
		if r == pv.Row {
			continue
		}
		if row, err = d.RowView(r); err != nil {
			return Pivot{}, false, rrefErrorf(opReduceStep, err)
		}
		mult = row[pv.Col]
		if math.Abs(mult) <= o.eps {
			continue // already ≈0 in the pivot column
		}
		// row ← row − mult·pivotRow
		floats.AddScaled(row, -mult, pivotRow)
	}

	return pv, true, nil
}

// reduceStepGeneric is the interface fallback: identical semantics to the
// fast path expressed through At/Set, with every access error propagated.
func reduceStepGeneric(m matrix.Matrix, startRow, startCol int, o Options) (Pivot, bool, error) {
	rows, cols := m.Rows(), m.Cols()

	var (
		col     int     // scan position
		lead, v float64 // element temporaries
		k       int     // normalization iterator
		reduced bool    // pivot found flag
		pv      Pivot
		err     error
	)
	// Pivot search.
	for col = startCol; col < cols && !reduced; {
		if lead, err = m.At(startRow, col); err != nil {
			return Pivot{}, false, rrefErrorf(opReduceStep, err)
		}
		if math.Abs(lead) <= o.eps {
			col++
			continue
		}
		if math.Abs(lead-1) > o.eps {
			for k = 0; k < cols; k++ {
				if v, err = m.At(startRow, k); err != nil {
					return Pivot{}, false, rrefErrorf(opReduceStep, err)
				}
				if err = m.Set(startRow, k, v/lead); err != nil {
					return Pivot{}, false, rrefErrorf(opReduceStep, err)
				}
			}
		}
		pv = Pivot{Row: startRow, Col: col}
		reduced = true
	}
	if !reduced {
		return Pivot{}, false, nil
	}

	// Elimination, above then below.
	var (
		r        int     // row iterator
		mult, pr float64 // multiplier and pivot-row element
	)
	for r = 0; r < rows; r++ {
		if r == pv.Row {
			continue
		}
		if mult, err = m.At(r, pv.Col); err != nil {
			return Pivot{}, false, rrefErrorf(opReduceStep, err)
		}
		if math.Abs(mult) <= o.eps {
			continue
		}
		for k = 0; k < cols; k++ {
			if pr, err = m.At(pv.Row, k); err != nil {
				return Pivot{}, false, rrefErrorf(opReduceStep, err)
			}
			if v, err = m.At(r, k); err != nil {
				return Pivot{}, false, rrefErrorf(opReduceStep, err)
			}
			if err = m.Set(r, k, v-mult*pr); err != nil {
				return Pivot{}, false, rrefErrorf(opReduceStep, err)
			}
		}
	}

	return pv, true, nil
}
