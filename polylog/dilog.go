// SPDX-License-Identifier: MIT

package polylog

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/oneloop/numeric"
)

// bernoulli[k-1] = B_{2k}/(2k+1)!, k = 1..10.
var bernoulli = [...]float64{
	1.0 / 36,
	-1.0 / 3600,
	1.0 / 211680,
	-1.0 / 10886400,
	5.0 / 2634508800,
	-691.0 / 16999766784000,
	7.0 / 7846046208000,
	-3617.0 / 181400588328960000,
	43867.0 / 97072790126247936000,
	-174611.0 / 16860010916664115200000,
}

// Li2 returns the dilogarithm of z.
//
// Special cases:
//
//	Li2(0) = 0
//	Li2(1) = ζ(2)
//	Li2(x ± i0) = π²/3 - ½ln²x - Li2(1/x) ± iπ ln x   for real x > 1
func Li2(z complex128) complex128 {
	x, y := real(z), imag(z)
	switch {
	case z == 0:
		return 0
	case z == 1:
		return complex(numeric.Zeta2, 0)
	case y == 0 && x > 1:
		lx := math.Log(x)
		im := math.Pi * lx
		if math.Signbit(y) {
			im = -im
		}
		return complex(2*numeric.Zeta2-0.5*lx*lx-real(li2Unit(complex(1/x, 0))), im)
	}

	if cmplx.Abs(z) > 1 {
		l := cmplx.Log(-z)
		return -li2Unit(1/z) - complex(numeric.Zeta2, 0) - 0.5*l*l
	}
	return li2Unit(z)
}

// Li2Real returns Li2(x) for real x ≤ 1, where the dilogarithm is real.
// For x > 1 it returns the real part.
func Li2Real(x float64) float64 {
	return real(Li2(complex(x, 0)))
}

// li2Unit handles |z| ≤ 1.
func li2Unit(z complex128) complex128 {
	if real(z) <= 0.5 {
		return bernoulliSum(-cmplx.Log(1 - z))
	}
	if z == 1 {
		return complex(numeric.Zeta2, 0)
	}
	lz := cmplx.Log(z)
	return complex(numeric.Zeta2, 0) - lz*cmplx.Log(1-z) - bernoulliSum(-lz)
}

// bernoulliSum evaluates Σ Bₙ u^{n+1}/(n+1)! by Horner's rule in u².
func bernoulliSum(u complex128) complex128 {
	u2 := u * u
	var acc complex128
	for k := len(bernoulli) - 1; k >= 0; k-- {
		acc = acc*u2 + complex(bernoulli[k], 0)
	}
	return u - 0.25*u2 + u*u2*acc
}
