// SPDX-License-Identifier: MIT

package basis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oneloop/basis"
)

func TestA_Literal(t *testing.T) {
	assertClose(t, -100, basis.A(100, 100), 1e-12)
	assertClose(t, complex(2*math.Log(2)-2, 0), basis.A(2, 1), 1e-14)
}

// TestA_VanishingMass checks A(0) = 0 and the smooth approach to it.
func TestA_VanishingMass(t *testing.T) {
	assert.Equal(t, complex128(0), basis.A(0, 1))
	assert.Equal(t, complex128(0), basis.A(1e-12, 1))
	assert.Less(t, math.Abs(real(basis.A(1e-8, 1))), 1e-6)
}

func TestA_NegativeMass(t *testing.T) {
	// x(ln(-x/qq) - 1 - iπ) with x = -2.
	assertClose(t, complex(0.6137056388801094, 6.283185307179586), basis.A(-2, 1), 1e-13)
}

func TestAp(t *testing.T) {
	ev, rec := recording()

	assertClose(t, complex(math.Log(3), 0), ev.Ap(3, 1), 1e-14)
	assertClose(t, complex(math.Log(2), -math.Pi), ev.Ap(-2, 1), 1e-14)
	require.Zero(t, rec.Len())

	assertUndefined(t, rec, "Ap", ev.Ap(0, 1))
	assertUndefined(t, rec, "Ap", ev.Ap(1e-11, 1))
}

// TestAp_MatchesDerivative compares Ap with a finite difference of A.
func TestAp_MatchesDerivative(t *testing.T) {
	for _, x := range []float64{0.3, 2, 17} {
		fd := centralDiff(func(v float64) complex128 { return basis.A(v, 1.3) }, x, 1e-5)
		assertClose(t, fd, basis.Ap(x, 1.3), 1e-8, "x=%v", x)
	}
}

func TestAeps(t *testing.T) {
	assertClose(t, complex(-2.7390927196465373, 0), basis.Aeps(2, 1), 1e-13)
	assertClose(t, complex(-7.1305116814428215, 1.9280131265723819), basis.Aeps(-2, 1), 1e-12)
	assert.Equal(t, complex128(0), basis.Aeps(0, 1))
}
