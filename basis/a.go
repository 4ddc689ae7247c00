// SPDX-License-Identifier: MIT

package basis

import (
	"math"

	"github.com/katalvlaran/oneloop/numeric"
)

// A rows: a vanishing mass gives exactly 0; a negative mass is continued
// below the cut with a fixed -iπ.
var aTable = table{
	fn: "A",
	rows: []branch{
		{
			name: "massless",
			when: func(e *Evaluator, p Point) bool { return e.zero(p.X) },
			eval: func(*Evaluator, Point) complex128 { return 0 },
		},
		{
			name: "positive mass",
			when: func(_ *Evaluator, p Point) bool { return p.X > 0 },
			eval: func(_ *Evaluator, p Point) complex128 {
				return re(p.X * (lnbar(p.X, p.QQ) - 1))
			},
		},
		{
			name: "negative mass",
			eval: func(_ *Evaluator, p Point) complex128 {
				return re(p.X) * complex(lnbar(-p.X, p.QQ)-1, -math.Pi)
			},
		},
	},
}

var apTable = table{
	fn: "Ap",
	rows: []branch{
		{
			name:      "massless",
			when:      func(e *Evaluator, p Point) bool { return e.zero(p.X) },
			undefined: "A'(0) is undefined.",
		},
		{
			name: "positive mass",
			when: func(_ *Evaluator, p Point) bool { return p.X > 0 },
			eval: func(_ *Evaluator, p Point) complex128 { return re(lnbar(p.X, p.QQ)) },
		},
		{
			name: "negative mass",
			eval: func(_ *Evaluator, p Point) complex128 {
				return complex(lnbar(-p.X, p.QQ), -math.Pi)
			},
		},
	},
}

var aepsTable = table{
	fn: "Aeps",
	rows: []branch{
		{
			name: "massless",
			when: func(e *Evaluator, p Point) bool { return e.zero(p.X) },
			eval: func(*Evaluator, Point) complex128 { return 0 },
		},
		{
			name: "general",
			eval: func(e *Evaluator, p Point) complex128 {
				l := e.Ap(p.X, p.QQ)
				return re(p.X) * (re(-1-0.5*numeric.Zeta2) + l - 0.5*l*l)
			},
		},
	},
}

// A returns the one-point function x(ln(x/qq) - 1).
//
// A(0) = 0. For x < 0 the value is x(ln(-x/qq) - 1 - iπ).
func (e *Evaluator) A(x, qq float64) complex128 {
	return aTable.run(e, Point{X: x, QQ: qq})
}

// Ap returns dA/dx = ln(x/qq), continued as ln(-x/qq) - iπ for x < 0.
// At x = 0 it is undefined: Infinity plus a diagnostic.
func (e *Evaluator) Ap(x, qq float64) complex128 {
	return apTable.run(e, Point{X: x, QQ: qq})
}

// Aeps returns the O(ε) coefficient of A in dimensional regularization,
// x(-1 - ζ(2)/2 + L - L²/2) with L = Ap(x, qq). Aeps(0) = 0.
func (e *Evaluator) Aeps(x, qq float64) complex128 {
	return aepsTable.run(e, Point{X: x, QQ: qq})
}
