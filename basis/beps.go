// SPDX-License-Identifier: MIT

package basis

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/oneloop/numeric"
	"github.com/katalvlaran/oneloop/polylog"
)

var bepsAtZeroTable = table{
	fn:    "BepsAtZero",
	order: swapXY,
	rows: []branch{
		{
			name:      "both massless",
			when:      func(e *Evaluator, p Point) bool { return p.X < e.tol },
			undefined: "Beps(0,0) is undefined at s = 0.",
		},
		{
			name: "one massless",
			when: func(e *Evaluator, p Point) bool { return p.Y < e.tol },
			eval: func(_ *Evaluator, p Point) complex128 {
				lx := lnbar(p.X, p.QQ)
				return re(1 + 0.5*numeric.Zeta2 - lx + 0.5*lx*lx)
			},
		},
		{
			name: "equal masses",
			when: func(e *Evaluator, p Point) bool { return math.Abs(p.X-p.Y)/(p.X+p.Y) < e.tol },
			eval: func(_ *Evaluator, p Point) complex128 {
				lx := lnbar(p.X, p.QQ)
				return re(0.5 * (numeric.Zeta2 + lx*lx))
			},
		},
		{
			name: "general",
			eval: func(_ *Evaluator, p Point) complex128 {
				lx, ly := lnbar(p.X, p.QQ), lnbar(p.Y, p.QQ)
				return re(1 + 0.5*numeric.Zeta2 +
					(p.X*lx*(0.5*lx-1)-p.Y*ly*(0.5*ly-1))/(p.X-p.Y))
			},
		},
	},
}

var beps0xTable = table{
	fn: "Beps0x",
	rows: []branch{
		{
			name: "zero momentum",
			when: func(e *Evaluator, p Point) bool { return e.zeroC(p.S) },
			eval: func(e *Evaluator, p Point) complex128 { return e.BepsAtZero(0, p.X, p.QQ) },
		},
		{
			name: "massless",
			when: func(e *Evaluator, p Point) bool { return p.X < e.tol },
			eval: func(_ *Evaluator, p Point) complex128 {
				l := cmplx.Log(-numeric.AddIeps(p.S) / re(p.QQ))
				return re(4-0.5*numeric.Zeta2) - 2*l + 0.5*l*l
			},
		},
		{
			name: "threshold",
			when: func(e *Evaluator, p Point) bool { return e.near(p.S, re(p.X), thresholdBand) },
			eval: func(_ *Evaluator, p Point) complex128 {
				lx := lnbar(p.X, p.QQ)
				return re(4 + 0.5*numeric.Zeta2 + 0.5*lx*(lx-4))
			},
		},
		{
			// The dilogarithm argument is built from s + i0 so that above
			// threshold it sits on the physical side of its cut.
			name: "general",
			eval: func(_ *Evaluator, p Point) complex128 {
				s := numeric.AddIeps(p.S)
				x := re(p.X)
				lx := lnbar(p.X, p.QQ)
				l := cmplx.Log(1 - s/x)
				clx := re(lx)
				return re(4+0.5*numeric.Zeta2-2*lx+0.5*lx*lx) +
					(1-x/s)*(clx*l-2*l+0.5*l*l-polylog.Li2(s/(s-x)))
			},
		},
	},
}

var bepsTable = table{
	fn:    "Beps",
	order: swapXY,
	rows: []branch{
		{
			name: "zero momentum",
			when: func(e *Evaluator, p Point) bool { return e.zeroC(p.S) },
			eval: func(e *Evaluator, p Point) complex128 { return e.BepsAtZero(p.X, p.Y, p.QQ) },
		},
		{
			name: "one massless",
			when: func(e *Evaluator, p Point) bool { return p.Y < e.tol },
			eval: func(e *Evaluator, p Point) complex128 { return e.Beps0x(p.X, p.S, p.QQ) },
		},
		{
			name: "threshold",
			when: func(e *Evaluator, p Point) bool {
				return cmplx.Abs(p.S-re(numeric.Th2(p.X, p.Y)))/(p.X+p.Y) < thresholdBand*e.tol
			},
			eval: func(_ *Evaluator, p Point) complex128 {
				sx, sy, kx, ky := bepsEdge(p)
				return re(4 + 0.5*numeric.Zeta2 + (sx*kx+sy*ky)/(2*(sx+sy)))
			},
		},
		{
			// Not used for degenerate masses, where (√x-√y)² = 0 and the
			// closed form below is 0/0; the general form is regular there.
			name: "pseudo-threshold",
			when: func(e *Evaluator, p Point) bool {
				return math.Abs(p.X-p.Y)/(p.X+p.Y) >= e.tol &&
					cmplx.Abs(p.S-re(numeric.Ps2(p.X, p.Y)))/(p.X+p.Y) < thresholdBand*e.tol
			},
			eval: func(_ *Evaluator, p Point) complex128 {
				sx, sy, kx, ky := bepsEdge(p)
				return re(4 + 0.5*numeric.Zeta2 + (sx*kx-sy*ky)/(2*(sx-sy)))
			},
		},
		{
			name: "general",
			eval: bepsGeneral,
		},
	},
}

// bepsEdge returns √x, √y and ln x̄(ln x̄ - 4), ln ȳ(ln ȳ - 4).
func bepsEdge(p Point) (sx, sy, kx, ky float64) {
	lx, ly := lnbar(p.X, p.QQ), lnbar(p.Y, p.QQ)
	return math.Sqrt(p.X), math.Sqrt(p.Y), lx * (lx - 4), ly * (ly - 4)
}

// bepsGeneral is the two-mass closed form in terms of the roots
//
//	t1 = ( s - x + y + √Δ)/2√Δ    t2 = (-s - x + y + √Δ)/2√Δ
//	t3 = (-s + x + y + √Δ)/2x     t4 = (-s + x + y - √Δ)/2x
func bepsGeneral(_ *Evaluator, p Point) complex128 {
	s := numeric.AddIeps(p.S)
	x, y := re(p.X), re(p.Y)
	sq := cmplx.Sqrt(numeric.Delta(s, p.X, p.Y))

	t1 := (s - x + y + sq) / (2 * sq)
	t2 := (-s - x + y + sq) / (2 * sq)
	t3 := (-s + x + y + sq) / (2 * x)
	t4 := (-s + x + y - sq) / (2 * x)

	lt1, lt2 := cmplx.Log(t1), cmplx.Log(t2)
	lt3, lt4 := cmplx.Log(t3), cmplx.Log(t4)
	l1mt1, l1mt2 := cmplx.Log(1-t1), cmplx.Log(1-t2)

	lx, ly := lnbar(p.X, p.QQ), lnbar(p.Y, p.QQ)
	w := re(1 - 0.25*lx - 0.25*ly)

	head := re(4 + 0.5*numeric.Zeta2 + 0.25*(lx*lx+ly*ly) - lx - ly)
	body := sq*(polylog.Li2(t2)-polylog.Li2(t1)+(lt3-lt4)*w+0.5*(l1mt1+l1mt2)*(lt2-lt1)) +
		(x-y)*re(ly-lx)*w
	return head + body/s
}

// BepsAtZero returns Beps(x, y, 0), the O(ε) part of B at zero momentum.
// Undefined when both masses vanish.
func (e *Evaluator) BepsAtZero(x, y, qq float64) complex128 {
	return bepsAtZeroTable.run(e, Point{X: x, Y: y, QQ: qq})
}

// Beps0x returns Beps(0, x, s):
//
//	4 + ζ(2)/2 - 2 ln x̄ + ½ ln² x̄ + (1 - x/s)[ln x̄ ℓ - 2ℓ + ½ℓ² - Li2(s/(s-x))]
//
// with ℓ = ln(1 - (s+i0)/x). The points s = 0, x = 0 and s = x have their
// own closed forms.
func (e *Evaluator) Beps0x(x float64, s complex128, qq float64) complex128 {
	return beps0xTable.run(e, Point{X: x, S: s, QQ: qq})
}

// Beps returns the O(ε) coefficient of B(x, y, s) in dimensional
// regularization,
//
//	Beps = ζ(2)/2 + ½ ∫₀¹ ln²[(t x + (1-t) y - t(1-t) s - i0)/qq] dt,
//
// evaluated in closed form with two dilogarithms. Symmetric in x and y.
func (e *Evaluator) Beps(x, y float64, s complex128, qq float64) complex128 {
	return bepsTable.run(e, Point{X: x, Y: y, S: s, QQ: qq})
}
