// SPDX-License-Identifier: MIT

package basis

import (
	"github.com/katalvlaran/oneloop/diag"
	"github.com/katalvlaran/oneloop/numeric"
)

// branch is one row of a decision table. A nil when always matches. A row
// with a non-empty undefined message is a genuine singularity: it reports
// the message and yields numeric.Infinity instead of calling eval.
type branch struct {
	name      string
	when      func(e *Evaluator, p Point) bool
	eval      func(e *Evaluator, p Point) complex128
	undefined string
}

// table is the ordered dispatch of one function. order, when set,
// canonicalises the arguments before any row is consulted.
type table struct {
	fn    string
	order func(p Point) Point
	rows  []branch
}

func (t *table) canonical(p Point) Point {
	if t.order == nil {
		return p
	}
	return t.order(p)
}

// pick returns the first matching row. The last row of every table has a
// nil predicate, so pick never falls off the end.
func (t *table) pick(e *Evaluator, p Point) *branch {
	for i := range t.rows {
		if r := &t.rows[i]; r.when == nil || r.when(e, p) {
			return r
		}
	}
	return &t.rows[len(t.rows)-1]
}

func (t *table) run(e *Evaluator, p Point) complex128 {
	p = t.canonical(p)
	r := t.pick(e, p)
	if r.undefined != "" {
		e.handler.Handle(diag.Diagnostic{Func: t.fn, Message: r.undefined})
		return numeric.Infinity
	}
	return r.eval(e, p)
}

// swapXY orders the masses so that X ≥ Y.
func swapXY(p Point) Point {
	if p.X < p.Y {
		p.X, p.Y = p.Y, p.X
	}
	return p
}
