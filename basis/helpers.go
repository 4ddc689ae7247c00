// SPDX-License-Identifier: MIT

package basis

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/oneloop/numeric"
)

// re lifts a real to complex128.
func re(x float64) complex128 { return complex(x, 0) }

// lnbar is ln(x/qq) for x > 0.
func lnbar(x, qq float64) float64 { return math.Log(x / qq) }

func (e *Evaluator) zero(x float64) bool { return numeric.ZeroWithin(x, e.tol) }

func (e *Evaluator) zeroC(z complex128) bool { return numeric.ZeroWithinC(z, e.tol) }

// near reports |1 - a/b| < k·tol. Nothing is near b = 0.
func (e *Evaluator) near(a, b complex128, k float64) bool {
	if b == 0 {
		return false
	}
	return cmplx.Abs(1-a/b) < k*e.tol
}
