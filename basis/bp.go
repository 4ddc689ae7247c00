// SPDX-License-Identifier: MIT

package basis

import (
	"math"

	"github.com/katalvlaran/oneloop/numeric"
)

var bpTable = table{
	fn: "Bp",
	rows: []branch{
		{
			name:      "massless x",
			when:      func(e *Evaluator, p Point) bool { return p.X < e.tol },
			undefined: "B(x',y) is undefined for x=0.",
		},
		{
			name: "threshold",
			when: func(e *Evaluator, p Point) bool {
				return e.near(p.S, re(numeric.Th2(p.X, p.Y)), 1)
			},
			undefined: "B(x',y) is undefined at s = (sqrt(x) + sqrt(y))^2.",
		},
		{
			name: "zero momentum, equal masses",
			when: func(e *Evaluator, p Point) bool {
				return e.zeroC(p.S) && e.zero(1-p.X/p.Y)
			},
			eval: func(_ *Evaluator, p Point) complex128 { return re(-0.5 / p.X) },
		},
		{
			// y ln(x/y) → 0 as y → 0.
			name: "zero momentum, massless y",
			when: func(e *Evaluator, p Point) bool { return e.zeroC(p.S) && e.zero(p.Y) },
			eval: func(_ *Evaluator, p Point) complex128 { return re(-1 / p.X) },
		},
		{
			name: "zero momentum",
			when: func(e *Evaluator, p Point) bool { return e.zeroC(p.S) },
			eval: func(_ *Evaluator, p Point) complex128 {
				d := p.Y - p.X
				return re(1/d + p.Y*math.Log(p.X/p.Y)/(d*d))
			},
		},
		{
			// Δ vanishes at s = (√x-√y)²; the limit is taken analytically.
			name: "pseudo-threshold",
			when: func(e *Evaluator, p Point) bool {
				return e.near(re(numeric.Ps2(p.X, p.Y)), p.S, 1)
			},
			eval: func(_ *Evaluator, p Point) complex128 {
				r := p.Y / p.X
				return re((1 - math.Sqrt(r) + 0.5*math.Log(r)) / numeric.Ps2(p.X, p.Y))
			},
		},
		{
			name: "general",
			eval: func(e *Evaluator, p Point) complex128 {
				s := p.S
				b := e.B(p.X, p.Y, s, p.QQ)
				num := (re(p.X-p.Y)-s)*b + (re(p.X+p.Y)-s)*re(lnbar(p.X, p.QQ)) -
					2*e.A(p.Y, p.QQ) + 2*(s-re(p.X))
				return num / numeric.Delta(s, p.X, p.Y)
			},
		},
	},
}

// Bp returns ∂B(x, y, s)/∂x.
//
//	Bp = [(x-y-s) B + (x+y-s) ln(x/qq) - 2 A(y) + 2(s-x)] / Δ(s, x, y)
//
// Bp is undefined (Infinity plus a diagnostic) for x = 0 and at the
// threshold s = (√x+√y)². The zero-momentum and pseudo-threshold points
// have dedicated closed forms.
func (e *Evaluator) Bp(x, y float64, s complex128, qq float64) complex128 {
	return bpTable.run(e, Point{X: x, Y: y, S: s, QQ: qq})
}
