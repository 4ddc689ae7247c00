// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mathext"
)

const (
	// DefaultTolerance is the threshold below which a magnitude is treated as
	// zero and two arguments as coincident.
	DefaultTolerance = 1e-10

	// IEps is the relative size of the imaginary part added by AddIeps.
	IEps = 1e-15
)

// Zeta2 is ζ(2) = π²/6.
var Zeta2 = mathext.Zeta(2, 1)

// Infinity is the sentinel returned where a function has no finite value.
var Infinity = complex(math.Inf(1), 0)

// IsInfinite reports whether either component of z is ±Inf.
func IsInfinite(z complex128) bool {
	return math.IsInf(real(z), 0) || math.IsInf(imag(z), 0)
}

// ZeroWithin reports |x| < tol.
func ZeroWithin(x, tol float64) bool { return math.Abs(x) < tol }

// ZeroWithinC reports |z| < tol.
func ZeroWithinC(z complex128, tol float64) bool { return cmplx.Abs(z) < tol }

// AddIeps continues a momentum argument off the real axis into the upper
// half plane. Values that already carry an imaginary part are returned as is.
func AddIeps(z complex128) complex128 {
	if imag(z) != 0 {
		return z
	}
	return complex(real(z), IEps*math.Max(1, math.Abs(real(z))))
}

// Delta is the Källén function s² + x² + y² - 2(sx + sy + xy).
func Delta(s complex128, x, y float64) complex128 {
	cx, cy := complex(x, 0), complex(y, 0)
	return s*s + cx*cx + cy*cy - 2*(s*cx+s*cy+cx*cy)
}

// Th2 is the two-particle threshold (√x + √y)².
func Th2(x, y float64) float64 {
	return x + y + 2*math.Sqrt(x*y)
}

// Ps2 is the pseudo-threshold (√x - √y)².
func Ps2(x, y float64) float64 {
	return x + y - 2*math.Sqrt(x*y)
}
