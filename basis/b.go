// SPDX-License-Identifier: MIT

package basis

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/oneloop/numeric"
)

// B rows. Masses are ordered |X| ≥ |Y| first, so a single vanishing mass
// is always Y.
var bTable = table{
	fn: "B",
	order: func(p Point) Point {
		if math.Abs(p.X) < math.Abs(p.Y) {
			p.X, p.Y = p.Y, p.X
		}
		return p
	},
	rows: []branch{
		{
			name: "both massless",
			when: func(e *Evaluator, p Point) bool { return e.zero(p.X) },
			eval: func(e *Evaluator, p Point) complex128 { return e.B00(p.S, p.QQ) },
		},
		{
			name: "one massless",
			when: func(e *Evaluator, p Point) bool { return e.zero(p.Y) },
			eval: func(e *Evaluator, p Point) complex128 { return e.B0x(p.X, p.S, p.QQ) },
		},
		{
			name: "zero momentum",
			when: func(e *Evaluator, p Point) bool { return e.zeroC(p.S) },
			eval: func(e *Evaluator, p Point) complex128 { return e.BAtZero(p.X, p.Y, p.QQ) },
		},
		{
			// Same closed form with the logarithm taken of the large root over Y,
			// which avoids subtracting two nearly equal logarithms.
			name: "large spacelike",
			when: func(e *Evaluator, p Point) bool {
				return real(p.S) < -spacelikeRatio*(p.X+p.Y) && imag(p.S) < e.tol
			},
			eval: func(_ *Evaluator, p Point) complex128 {
				s, sq, head, mix := bParts(p)
				return head + (sq*cmplx.Log(0.5*(re(p.X+p.Y)-s+sq)/re(p.Y))+mix)/s
			},
		},
		{
			name: "general",
			eval: func(_ *Evaluator, p Point) complex128 {
				s, sq, head, mix := bParts(p)
				return head + (-sq*cmplx.Log(0.5*(re(p.X+p.Y)-s-sq)/re(p.X))+mix)/s
			},
		},
	},
}

// bParts returns the continued momentum, √Δ, and the two terms shared by
// both closed forms of B.
func bParts(p Point) (s, sq, head, mix complex128) {
	s = numeric.AddIeps(p.S)
	sq = cmplx.Sqrt(numeric.Delta(s, p.X, p.Y))
	lx, ly := lnbar(p.X, p.QQ), lnbar(p.Y, p.QQ)
	head = re(2 - 0.5*(lx+ly))
	mix = 0.5 * (re(p.Y-p.X) - sq) * re(lx-ly)
	return s, sq, head, mix
}

var b00Table = table{
	fn: "B00",
	rows: []branch{
		{
			name:      "zero momentum",
			when:      func(e *Evaluator, p Point) bool { return e.zeroC(p.S) },
			undefined: "B(0,0) is undefined when s=0.",
		},
		{
			name: "general",
			eval: func(_ *Evaluator, p Point) complex128 {
				return 2 - cmplx.Log(-numeric.AddIeps(p.S)/re(p.QQ))
			},
		},
	},
}

var b0xTable = table{
	fn: "B0x",
	rows: []branch{
		{
			name: "massless",
			when: func(e *Evaluator, p Point) bool { return e.zero(p.X) },
			eval: func(e *Evaluator, p Point) complex128 { return e.B00(p.S, p.QQ) },
		},
		{
			name: "zero momentum",
			when: func(e *Evaluator, p Point) bool { return e.zeroC(p.S) },
			eval: func(_ *Evaluator, p Point) complex128 { return re(1 - lnbar(p.X, p.QQ)) },
		},
		{
			// s = x: the general form is 0·ln 0 over s.
			name: "threshold",
			when: func(e *Evaluator, p Point) bool { return e.near(p.S, re(p.X), thresholdBand) },
			eval: func(_ *Evaluator, p Point) complex128 { return re(2 - lnbar(p.X, p.QQ)) },
		},
		{
			name: "general",
			eval: func(_ *Evaluator, p Point) complex128 {
				s := numeric.AddIeps(p.S)
				x := re(p.X)
				return 2 + ((x-s)*cmplx.Log((x-s)/re(p.QQ))-x*re(lnbar(p.X, p.QQ)))/s
			},
		},
	},
}

// B returns the two-point function B(x, y, s) at scale qq.
//
// B is symmetric in x and y. Vanishing masses delegate to B00 and B0x,
// vanishing momentum to BAtZero. Otherwise, with s continued to s + i0 and
// Δ = Δ(s, x, y),
//
//	B = 2 - ½(ln x̄ + ln ȳ) + [-√Δ ln((x+y-s-√Δ)/2x) + ½(y-x-√Δ)(ln x̄ - ln ȳ)]/s
//
// where ln x̄ = ln(x/qq). For real s < -10(x+y) an equivalent arrangement
// taking ln((x+y-s+√Δ)/2y) is used for numerical stability.
func (e *Evaluator) B(x, y float64, s complex128, qq float64) complex128 {
	return bTable.run(e, Point{X: x, Y: y, S: s, QQ: qq})
}

// B00 returns B(0, 0, s) = 2 - ln(-(s+i0)/qq). Undefined at s = 0.
func (e *Evaluator) B00(s complex128, qq float64) complex128 {
	return b00Table.run(e, Point{S: s, QQ: qq})
}

// B0x returns B(0, x, s) = 2 + [(x-s) ln((x-s)/qq) - x ln(x/qq)]/s.
//
// B0x(0, s) is B00(s); at s = 0 the value is 1 - ln(x/qq) and at the
// threshold s = x it is 2 - ln(x/qq).
func (e *Evaluator) B0x(x float64, s complex128, qq float64) complex128 {
	return b0xTable.run(e, Point{X: x, S: s, QQ: qq})
}
