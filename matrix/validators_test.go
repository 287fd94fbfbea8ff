// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the shared validators.

package matrix_test

import (
	"math"
	"testing"

	"github.com/rkabealo/linear-algebra/matrix"
)

func TestValidateNotNil(t *testing.T) {
	AssertErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	if err := matrix.ValidateNotNil(MustDense(t, 1, 1)); err != nil {
		t.Fatalf("ValidateNotNil(non-nil): %v", err)
	}
}

func TestValidateSameShape(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 2, 3)
	if err := matrix.ValidateSameShape(a, b); err != nil {
		t.Fatalf("ValidateSameShape(2x3, 2x3): %v", err)
	}
	AssertErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 3, 3)), matrix.ErrDimensionMismatch)
	AssertErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 2, 2)), matrix.ErrDimensionMismatch)
}

func TestValidateFinite(t *testing.T) {
	for _, v := range []float64{0, -1.5, math.MaxFloat64} {
		if err := matrix.ValidateFinite(v); err != nil {
			t.Fatalf("ValidateFinite(%v): %v", v, err)
		}
	}
	AssertErrorIs(t, matrix.ValidateFinite(math.NaN()), matrix.ErrNaNInf)
	AssertErrorIs(t, matrix.ValidateFinite(math.Inf(1)), matrix.ErrNaNInf)
}
