// SPDX-License-Identifier: MIT

package basis

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/oneloop/numeric"
)

// Alpha returns √x (ln(x/qq) - 1) = A(x)/√x, the residue building block of
// the threshold poles in DBds. Alpha(0) = 0.
func (e *Evaluator) Alpha(x, qq float64) float64 {
	if x < e.tol {
		return 0
	}
	return math.Sqrt(x) * (lnbar(x, qq) - 1)
}

var dbdsTable = table{
	fn:    "dBds",
	order: swapXY,
	rows: []branch{
		{
			name: "massless, zero momentum",
			when: func(e *Evaluator, p Point) bool {
				return p.X+cmplx.Abs(p.S) < e.tol
			},
			undefined: "dBds(0,0) is undefined when s=0.",
		},
		{
			name: "zero momentum",
			when: func(e *Evaluator, p Point) bool { return cmplx.Abs(p.S) < e.tol*p.X },
			eval: func(e *Evaluator, p Point) complex128 { return e.BprimeAtZero(p.X, p.Y, p.QQ) },
		},
		{
			name: "threshold",
			when: func(e *Evaluator, p Point) bool {
				return e.near(p.S, re(numeric.Th2(p.X, p.Y)), 1)
			},
			undefined: "dBds(x,y) is undefined at threshold.",
		},
		{
			// (√x-√y)³ in the denominator: both poles combine into a finite limit.
			name: "pseudo-threshold",
			when: func(e *Evaluator, p Point) bool {
				return e.near(p.S, re(numeric.Ps2(p.X, p.Y)), 1)
			},
			eval: func(e *Evaluator, p Point) complex128 {
				sx, sy := math.Sqrt(p.X), math.Sqrt(p.Y)
				ax, ay := e.Alpha(p.X, p.QQ), e.Alpha(p.Y, p.QQ)
				d := sx - sy
				return re((0.5*ax*(1+sy/sx) - 0.5*ay*(1+sx/sy) + 2*(sy-sx)) / (d * d * d))
			},
		},
		{
			name: "general",
			eval: func(e *Evaluator, p Point) complex128 {
				s := p.S
				th, ps := re(numeric.Th2(p.X, p.Y)), re(numeric.Ps2(p.X, p.Y))
				sx, sy := math.Sqrt(p.X), math.Sqrt(p.Y)
				ax, ay := e.Alpha(p.X, p.QQ), e.Alpha(p.Y, p.QQ)
				b := e.B(p.X, p.Y, s, p.QQ)
				return 0.5 / s * ((th*b-s+re((sx+sy)*(ax+ay)))/(s-th) +
					(ps*b-s+re((sx-sy)*(ax-ay)))/(s-ps))
			},
		},
	},
}

// DBds returns ∂B(x, y, s)/∂s.
//
// Writing th = (√x+√y)², ps = (√x-√y)² and α = Alpha,
//
//	∂B/∂s = 1/(2s) · { [th·B - s + (√x+√y)(αx+αy)]/(s - th)
//	                 + [ps·B - s + (√x-√y)(αx-αy)]/(s - ps) }
//
// Near s = 0 the value is BprimeAtZero. DBds is undefined at the threshold
// and when both x and s vanish.
func (e *Evaluator) DBds(x, y float64, s complex128, qq float64) complex128 {
	return dbdsTable.run(e, Point{X: x, Y: y, S: s, QQ: qq})
}
