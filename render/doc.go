// Package render turns matrices into the aligned text grids shown on the
// console.
//
// Layout contract (stable, byte-exact — downstream output is compared
// against it):
//
//   - Every element is rendered with a fixed 10-digit fractional part,
//     HALF-UP rounding, and thousands separators on the integer part.
//   - A rounded result of "-0.0000000000" drops its sign; the negative-zero
//     suppression is part of the visible contract, not a cosmetic detail.
//   - Each row is one line of 25-character left-justified cells with '|'
//     delimiters on the outer edges.
//   - A matrix with zero rows or zero columns renders as the literal
//     notice "The matrix is empty!" instead of a grid.
//
// FormatMatrix returns the bare grid; Fprint writes the grid framed by the
// blank lines the console contract expects.
package render
