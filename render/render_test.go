// SPDX-License-Identifier: MIT
// Package render_test pins the byte-exact grid layout and numeric
// formatting contracts.

package render_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkabealo/linear-algebra/matrix"
	"github.com/rkabealo/linear-algebra/render"
)

func TestFormatValue(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0.0000000000"},
		{"integer", 5, "5.0000000000"},
		{"negative", -3.25, "-3.2500000000"},
		{"fraction", 2.5, "2.5000000000"},
		{"grouping", 1234567.891, "1,234,567.8910000000"},
		{"grouping negative", -1234.5, "-1,234.5000000000"},
		{"grouping exact boundary", 1000, "1,000.0000000000"},
		// HALF-UP at the 11th digit: ties round away from zero, where
		// ties-to-even formatting would keep the 0.
		{"half-up tie", 0.12345678905, "0.1234567891"},
		{"half-up tie negative", -0.12345678905, "-0.1234567891"},
		// Below-epsilon negatives round to zero and MUST drop the sign.
		{"negative zero suppression", -1e-20, "0.0000000000"},
		{"signed zero", math.Copysign(0, -1), "0.0000000000"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render.FormatValue(tc.in))
		})
	}
}

func TestFormatMatrix_EmptyShapes(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 0},
		{0, 3},
		{3, 0},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m, err := matrix.NewDense(tc.rows, tc.cols)
			require.NoError(t, err)
			got, err := render.FormatMatrix(m)
			require.NoError(t, err)
			assert.Equal(t, render.EmptyNotice+"\n", got)
		})
	}
}

func TestFormatMatrix_SingleCell(t *testing.T) {
	m, err := matrix.NewDenseFromSlice(1, 1, []float64{5})
	require.NoError(t, err)

	got, err := render.FormatMatrix(m)
	require.NoError(t, err)
	// One bordered 25-char cell, no trailing space inside it.
	assert.Equal(t, fmt.Sprintf("|%-25s|\n", "5.0000000000"), got)
}

func TestFormatMatrix_ColumnVector(t *testing.T) {
	m, err := matrix.NewDenseFromSlice(2, 1, []float64{1, -2})
	require.NoError(t, err)

	got, err := render.FormatMatrix(m)
	require.NoError(t, err)
	want := fmt.Sprintf("|%-25s|\n", "1.0000000000") +
		fmt.Sprintf("|%-25s|\n", "-2.0000000000")
	assert.Equal(t, want, got)
}

func TestFormatMatrix_General(t *testing.T) {
	m, err := matrix.NewDenseFromSlice(2, 3, []float64{
		1, 2.5, -3,
		0, 1234.5, 6,
	})
	require.NoError(t, err)

	got, err := render.FormatMatrix(m)
	require.NoError(t, err)

	// Multi-column cells carry the value plus one trailing space; only the
	// outer edges are bordered.
	row := func(a, b, c string) string {
		return fmt.Sprintf("|%-25s%-25s%-25s|\n", a+" ", b+" ", c+" ")
	}
	want := row("1.0000000000", "2.5000000000", "-3.0000000000") +
		row("0.0000000000", "1,234.5000000000", "6.0000000000")
	assert.Equal(t, want, got)

	// Every line is borders + 3 cells wide.
	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		assert.Len(t, line, 2+3*render.CellWidth)
	}
}

func TestFormatMatrix_NegativeZeroCells(t *testing.T) {
	// A value that is nonzero as a float64 but rounds to zero must render
	// unsigned inside the grid as well.
	m, err := matrix.NewDenseFromSlice(1, 2, []float64{-1e-20, 1})
	require.NoError(t, err)

	got, err := render.FormatMatrix(m)
	require.NoError(t, err)
	assert.Contains(t, got, "|0.0000000000 ")
	assert.NotContains(t, got, "-0.0000000000")
}

func TestFormatMatrix_NilMatrix(t *testing.T) {
	_, err := render.FormatMatrix(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFprint_FramesGridWithBlankLines(t *testing.T) {
	m, err := matrix.NewDenseFromSlice(1, 1, []float64{5})
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, render.Fprint(&b, m))
	want := "\n" + fmt.Sprintf("|%-25s|\n", "5.0000000000") + "\n"
	assert.Equal(t, want, b.String())
}

func TestFprint_EmptyMatrix(t *testing.T) {
	m, err := matrix.NewDense(0, 4)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, render.Fprint(&b, m))
	assert.Equal(t, "\n"+render.EmptyNotice+"\n\n", b.String())
}
