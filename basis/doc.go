// SPDX-License-Identifier: MIT

// Package basis evaluates the one-loop self-energy basis integrals
//
//	A(x)           one-point function, with A'(x) and its O(ε) part Aeps(x)
//	B(x,y,s)       two-point function, with the massless specialisations
//	               B00(s), B0x(x,s), the derivatives Bp = ∂B/∂x and
//	               DBds = ∂B/∂s, the O(ε) parts Beps, Beps0x, BepsAtZero and
//	               the zero-momentum limits BAtZero, BprimeAtZero
//
// as functions of real squared masses, a complex squared momentum s and a
// positive renormalization scale squared qq. Conventions follow the usual
// MS-bar normalisation, e.g.
//
//	A(x)   = x (ln(x/qq) - 1)
//	B(x,y) = -∫₀¹ ln[(t x + (1-t) y - t(1-t) s - i0)/qq] dt
//
// 🧭 Branch selection
//
// Every function is an ordered decision table of (predicate, closed form)
// rows; the first row whose predicate holds is evaluated and the last row
// always applies. Rows cover, in order, the degenerate configurations
// (vanishing masses, vanishing momentum, coincident masses) and kinematic
// thresholds s = (√x ± √y)², before the general closed form. Evaluator.Branch
// reports which row a given point selects.
//
// A real momentum is continued to s + i0 (numeric.AddIeps) wherever a closed
// form crosses a cut, which puts results on the physical sheet: above
// threshold Im B > 0.
//
// ⚠️ Singularities
//
//   - Removable (0/0, 0·ln 0): resolved by a dedicated row, silently.
//   - Genuine (pole or divergent branch point): the function returns
//     numeric.Infinity and hands one diag.Diagnostic to the evaluator's
//     handler. Callers must check numeric.IsInfinite before using the value.
//
// ⚙️ Usage
//
//	v := basis.B(1, 2, complex(10, 0), 1)          // default evaluator
//
//	var rec diag.Recorder
//	ev := basis.New(basis.WithTolerance(1e-12), basis.WithHandler(&rec))
//	d := ev.DBds(1, 1, complex(4, 0), 1)            // threshold: Infinity, one diagnostic
//
// Concurrency: an Evaluator is immutable after New; all methods and the
// package-level functions are safe for concurrent use, provided the
// configured diag.Handler is.
//
// Complexity: every evaluation is O(1): a bounded number of logarithms,
// square roots and at most two dilogarithms.
package basis
