// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"math/cmplx"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/oneloop/basis"
	"github.com/katalvlaran/oneloop/diag"
	"github.com/katalvlaran/oneloop/numeric"
)

// Result is the outcome of one request entry.
type Result struct {
	Index  int
	Func   basis.Func
	Point  basis.Point
	Value  complex128
	Branch string

	// Undefined is set when Value is numeric.Infinity; Diagnostics then
	// holds what the evaluation reported.
	Undefined   bool
	Diagnostics []diag.Diagnostic

	// Expected echoes the entry's expect value; Match is false only when an
	// expectation exists and Value misses it.
	Expected *complex128
	Match    bool
}

// Evaluate runs every entry of req sequentially. See EvaluateContext.
func Evaluate(ev *basis.Evaluator, req *Request) ([]Result, error) {
	return EvaluateContext(context.Background(), ev, req, 1)
}

// EvaluateContext validates req and evaluates its entries on up to workers
// goroutines (workers < 1 means one). Each entry gets its own diag.Recorder,
// chained in front of ev's handler, so diagnostics are attributed per entry
// and still reach ev's log. Results are in request order.
func EvaluateContext(ctx context.Context, ev *basis.Evaluator, req *Request, workers int) ([]Result, error) {
	if ev == nil {
		ev = basis.Default()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	out := make([]Result, len(req.Points))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range req.Points {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = evaluateOne(ev, req, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func evaluateOne(ev *basis.Evaluator, req *Request, i int) Result {
	f, p, _ := req.Resolve(i) // validated by the caller

	rec := &diag.Recorder{}
	local := basis.New(
		basis.WithTolerance(ev.Tolerance()),
		basis.WithHandler(diag.Multi(rec, ev.Handler())),
	)
	v := local.Eval(f, p)

	r := Result{
		Index:       i,
		Func:        f,
		Point:       p,
		Value:       v,
		Branch:      local.Branch(f, p),
		Undefined:   numeric.IsInfinite(v),
		Diagnostics: rec.Diagnostics(),
		Match:       true,
	}
	if e := req.Points[i].Expect; e != nil {
		want := complex128(*e)
		r.Expected = &want
		r.Match = !r.Undefined && Close(want, v, req.Tolerance)
	}
	return r
}

// Close reports whether both parts of a and b agree within tol, absolute
// or relative.
func Close(a, b complex128, tol float64) bool {
	if cmplx.IsNaN(a) || cmplx.IsNaN(b) {
		return false
	}
	return scalar.EqualWithinAbsOrRel(real(a), real(b), tol, tol) &&
		scalar.EqualWithinAbsOrRel(imag(a), imag(b), tol, tol)
}

// Summary counts results by outcome.
type Summary struct {
	Total      int
	Undefined  int
	Mismatched int
}

// Summarize tallies rs.
func Summarize(rs []Result) Summary {
	s := Summary{Total: len(rs)}
	for _, r := range rs {
		if r.Undefined {
			s.Undefined++
		}
		if !r.Match {
			s.Mismatched++
		}
	}
	return s
}
