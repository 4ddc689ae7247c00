// SPDX-License-Identifier: MIT

package basis

import (
	"github.com/katalvlaran/oneloop/diag"
	"github.com/katalvlaran/oneloop/numeric"
)

// Evaluator evaluates basis integrals under a fixed tolerance and
// diagnostic handler. The zero value is not usable; call New.
type Evaluator struct {
	tol     float64
	handler diag.Handler
}

// New returns an Evaluator configured by opts on top of the defaults
// (DefaultTolerance, logrus standard logger).
func New(opts ...Option) *Evaluator {
	o := gatherOptions(opts...)
	return &Evaluator{tol: o.tol, handler: o.handler}
}

// std backs the package-level functions.
var std = New()

// Default returns the evaluator used by the package-level functions.
func Default() *Evaluator { return std }

// Tolerance returns the configured tolerance.
func (e *Evaluator) Tolerance() float64 { return e.tol }

// Handler returns the configured diagnostic handler.
func (e *Evaluator) Handler() diag.Handler { return e.handler }

// Point carries the arguments of any basis integral. Functions read only
// the fields they take (see Func.Params); the rest are ignored.
type Point struct {
	X, Y float64
	S    complex128
	QQ   float64
}

// Eval evaluates f at p.
func (e *Evaluator) Eval(f Func, p Point) complex128 {
	t := f.table()
	if t == nil {
		return numeric.Infinity
	}
	return t.run(e, p)
}

// Branch returns the name of the decision-table row f selects at p, after
// argument canonicalisation. Unknown functions yield "".
func (e *Evaluator) Branch(f Func, p Point) string {
	t := f.table()
	if t == nil {
		return ""
	}
	return t.pick(e, t.canonical(p)).name
}
