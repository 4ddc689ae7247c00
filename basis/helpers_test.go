// SPDX-License-Identifier: MIT

package basis_test

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/oneloop/basis"
	"github.com/katalvlaran/oneloop/diag"
	"github.com/katalvlaran/oneloop/numeric"
)

// quadNodes is the Gauss-Legendre order per integration piece.
const quadNodes = 300

// kin is one kinematic point shared by the table-driven tests.
type kin struct {
	x, y float64
	s    complex128
	qq   float64
}

// sweep covers spacelike, below-threshold, above-threshold and complex
// momenta for several mass patterns.
var sweep = []kin{
	{2, 1, -50, 1.7},
	{2, 1, -3, 1.7},
	{2, 1, 0.1, 1.7},
	{2, 1, 1, 1.7},
	{2, 1, 4, 1.7},
	{2, 1, 8, 1.7},
	{2, 1, 20, 1.7},
	{2, 1, complex(3, 0.5), 1.7},
	{2, 1, complex(-2, 1), 1.7},
	{2, 1, complex(10, -0.5), 1.7},
	{1, 1, -100, 1},
	{1, 1, 1, 1},
	{1, 1, 3.9, 1},
	{1, 1, 5, 1},
	{1, 1, 12, 1},
	{3, 0, 5, 1},
	{3, 0, -2, 1},
	{0, 0, 3, 2},
	{0, 0, -3, 2},
	{5, 0.01, 2, 1},
	{5, 0.01, 30, 1},
}

// recording returns an evaluator whose diagnostics land in the returned recorder.
func recording(opts ...basis.Option) (*basis.Evaluator, *diag.Recorder) {
	rec := &diag.Recorder{}
	return basis.New(append(opts, basis.WithHandler(rec))...), rec
}

// assertClose compares real and imaginary parts with an absolute tolerance.
func assertClose(t *testing.T, want, got complex128, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, real(want), real(got), tol, msgAndArgs...)
	assert.InDelta(t, imag(want), imag(got), tol, msgAndArgs...)
}

// assertUndefined checks the Infinity sentinel and exactly one new diagnostic.
func assertUndefined(t *testing.T, rec *diag.Recorder, fn string, got complex128) {
	t.Helper()
	assert.True(t, numeric.IsInfinite(got), "expected Infinity, got %v", got)
	ds := rec.Diagnostics()
	if assert.Len(t, ds, 1) {
		assert.Equal(t, fn, ds[0].Func)
		assert.NotEmpty(t, ds[0].Message)
		assert.ErrorIs(t, ds[0], diag.ErrUndefined)
	}
	rec.Reset()
}

// feynmanLog integrates ln^pow(D/qq) over t in [0, 1] with
// D = t x + (1-t) y - t(1-t) s - i0. The interval is split at the real
// zeros of D (a double zero at threshold) and every piece is smoothed with t = 3u² - 2u³ so that the
// logarithmic endpoint singularities stay integrable.
func feynmanLog(x, y float64, s complex128, qq float64, pow int) complex128 {
	logD := func(t float64) complex128 {
		d := complex(t*x+(1-t)*y, 0) - complex(t*(1-t), 0)*s
		if d == 0 {
			d = 1e-300
		}
		if imag(s) == 0 && real(d) < 0 {
			return complex(math.Log(-real(d)/qq), -math.Pi)
		}
		return cmplx.Log(d / complex(qq, 0))
	}

	cuts := []float64{0, 1}
	if sr := real(s); imag(s) == 0 && sr != 0 {
		if dd := real(numeric.Delta(s, x, y)); dd >= 0 {
			for _, sg := range []float64{1, -1} {
				if r := (sr - x + y + sg*math.Sqrt(dd)) / (2 * sr); r > 0 && r < 1 {
					cuts = append(cuts, r)
				}
				if dd == 0 {
					break
				}
			}
		}
	}
	sort.Float64s(cuts)

	var total complex128
	for i := 0; i+1 < len(cuts); i++ {
		a, b := cuts[i], cuts[i+1]
		g := func(u float64) complex128 {
			t := a + (b-a)*u*u*(3-2*u)
			l := logD(t)
			if pow == 2 {
				l *= l
			}
			return l * complex((b-a)*6*u*(1-u), 0)
		}
		re := quad.Fixed(func(u float64) float64 { return real(g(u)) }, 0, 1, quadNodes, quad.Legendre{}, 0)
		im := quad.Fixed(func(u float64) float64 { return imag(g(u)) }, 0, 1, quadNodes, quad.Legendre{}, 0)
		total += complex(re, im)
	}
	return total
}

// feynmanB is B as a Feynman-parameter integral.
func feynmanB(k kin) complex128 { return -feynmanLog(k.x, k.y, k.s, k.qq, 1) }

// feynmanBeps is Beps as a Feynman-parameter integral.
func feynmanBeps(k kin) complex128 {
	return complex(0.5*numeric.Zeta2, 0) + 0.5*feynmanLog(k.x, k.y, k.s, k.qq, 2)
}

// centralDiff approximates f'(v) with step h.
func centralDiff(f func(v float64) complex128, v, h float64) complex128 {
	return (f(v+h) - f(v-h)) / complex(2*h, 0)
}
