// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rkabealo/linear-algebra/matrix"
)

const (
	// CellWidth is the left-justified field width of one rendered element,
	// including the single trailing space of multi-column cells.
	CellWidth = 25

	// FracDigits is the fixed number of fractional digits per element.
	FracDigits = 10

	// EmptyNotice is the literal line printed instead of a grid when the
	// matrix has zero rows or zero columns.
	EmptyNotice = "The matrix is empty!"
)

// zeroValue is the rendered form of an exact (or rounded-to) zero; a
// negative sign in front of exactly this string is suppressed.
const zeroValue = "0.0000000000"

// opFormatMatrix tags errors escaping FormatMatrix/Fprint.
const opFormatMatrix = "FormatMatrix"

// renderErrorf wraps err with an operation tag, preserving errors.Is.
func renderErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// FormatValue renders a single element: fixed 10-digit fraction, HALF-UP
// rounding, thousands separators, negative-zero suppression.
//
// The input is expected to be finite (the matrix store enforces this on
// ingestion); NaN/±Inf fall back to their plain Go formatting rather than
// panicking.
//
// Examples: 5 → "5.0000000000", 1234567.891 → "1,234,567.8910000000",
// -1e-20 → "0.0000000000" (rounds to zero, sign dropped).
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}

	// Fixed-point, HALF-UP (round half away from zero) — the decimal
	// package rounds exactly the way the output contract requires, which
	// strconv (ties to even) does not.
	s := decimal.NewFromFloat(v).StringFixed(FracDigits)

	// Split off the sign and the fractional part, group the integer part.
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	out := groupThousands(s[:dot]) + s[dot:]

	// Negative-zero suppression: a sign survives only in front of a value
	// that did not round to zero.
	if neg && out != zeroValue {
		out = "-" + out
	}

	return out
}

// groupThousands inserts comma separators into a bare digit string.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// FormatMatrix renders m as an aligned grid, one line per row, each line
// terminated by '\n'.
//
// Layout:
//   - rows == 0 or cols == 0: the EmptyNotice line.
//   - single column (1×1 included): each line is "|" + padded value + "|".
//   - general: the first cell opens with "|", the last cell closes with
//     "|", and every cell is the value plus one trailing space padded to
//     CellWidth.
//
// Errors: ErrNilMatrix, propagated At errors.
// Complexity: O(rows*cols).
func FormatMatrix(m matrix.Matrix) (string, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return "", renderErrorf(opFormatMatrix, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return EmptyNotice + "\n", nil
	}

	var (
		b    strings.Builder
		i, j int     // loop iterators
		v    float64 // current element
		err  error
	)

	// Single-column matrices (the 1×1 case included) carry no trailing
	// space inside the cell; both borders hug the one padded field.
	if cols == 1 {
		for i = 0; i < rows; i++ {
			if v, err = m.At(i, 0); err != nil {
				return "", renderErrorf(opFormatMatrix, err)
			}
			fmt.Fprintf(&b, "|%-*s|\n", CellWidth, FormatValue(v))
		}

		return b.String(), nil
	}

	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return "", renderErrorf(opFormatMatrix, err)
			}
			cell := FormatValue(v) + " "
			switch {
			case j == 0:
				fmt.Fprintf(&b, "|%-*s", CellWidth, cell)
			case j == cols-1:
				fmt.Fprintf(&b, "%-*s|", CellWidth, cell)
			default:
				fmt.Fprintf(&b, "%-*s", CellWidth, cell)
			}
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// Fprint writes the console block for m to w: a blank line, the grid (or
// the empty-matrix notice), and a closing blank line.
func Fprint(w io.Writer, m matrix.Matrix) error {
	s, err := FormatMatrix(m)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(w, "\n%s\n", s); err != nil {
		return renderErrorf(opFormatMatrix, err)
	}

	return nil
}
