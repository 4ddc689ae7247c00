// SPDX-License-Identifier: MIT

package basis

import "math"

var bAtZeroTable = table{
	fn: "BAtZero",
	rows: []branch{
		{
			name: "distinct masses",
			when: func(e *Evaluator, p Point) bool { return math.Abs(p.X-p.Y) > e.tol },
			eval: func(e *Evaluator, p Point) complex128 {
				return (e.A(p.Y, p.QQ) - e.A(p.X, p.QQ)) / re(p.X-p.Y)
			},
		},
		{
			name: "equal masses",
			eval: func(e *Evaluator, p Point) complex128 { return -e.Ap(p.X, p.QQ) },
		},
	},
}

// bprimeSeries[k] multiplies (1 - x/y)^k in 6x·B'(x, y, 0).
var bprimeSeries = [...]float64{
	1,
	-1.0 / 2,
	-1.0 / 5,
	-1.0 / 10,
	-2.0 / 35,
	-1.0 / 28,
	-1.0 / 42,
	-1.0 / 60,
	-2.0 / 165,
	-1.0 / 110,
	-1.0 / 143,
	-1.0 / 182,
	-2.0 / 455,
}

var bprimeAtZeroTable = table{
	fn:    "BprimeAtZero",
	order: swapXY,
	rows: []branch{
		{
			name:      "both massless",
			when:      func(e *Evaluator, p Point) bool { return p.X < e.tol },
			undefined: "B'(0,0) is undefined at s = 0.",
		},
		{
			name: "distinct masses",
			when: func(_ *Evaluator, p Point) bool { return math.Abs(1-p.X/p.Y) > seriesBand },
			eval: func(e *Evaluator, p Point) complex128 {
				x, y := re(p.X), re(p.Y)
				d := p.X - p.Y
				return (x*x - 2*e.A(p.X, p.QQ)*y - y*y + 2*x*e.A(p.Y, p.QQ)) / re(2*d*d*d)
			},
		},
		{
			// Subtracting the nearly equal cubes of the closed form loses
			// every digit as y → x; the expansion keeps full precision.
			name: "near-degenerate series",
			eval: func(_ *Evaluator, p Point) complex128 {
				u := 1 - p.X/p.Y
				var acc float64
				for k := len(bprimeSeries) - 1; k >= 0; k-- {
					acc = acc*u + bprimeSeries[k]
				}
				return re(acc / (6 * p.X))
			},
		},
	},
}

// BAtZero returns B(x, y, 0) = (A(y) - A(x))/(x - y), or -Ap(x) for
// coincident masses.
func (e *Evaluator) BAtZero(x, y, qq float64) complex128 {
	return bAtZeroTable.run(e, Point{X: x, Y: y, QQ: qq})
}

// BprimeAtZero returns ∂B(x, y, s)/∂s at s = 0:
//
//	(x² - 2y A(x) - y² + 2x A(y)) / (2(x - y)³)
//
// For |1 - x/y| ≤ 0.005 a twelfth-order expansion in (1 - x/y) is used.
func (e *Evaluator) BprimeAtZero(x, y, qq float64) complex128 {
	return bprimeAtZeroTable.run(e, Point{X: x, Y: y, QQ: qq})
}
