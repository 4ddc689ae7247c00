// SPDX-License-Identifier: MIT

// Package oneloop evaluates the analytic one-loop self-energy basis
// integrals of perturbative quantum field theory: the one-point function A,
// the two-point function B with its massless and zero-momentum limits, their
// derivatives, and the O(ε) coefficients Aeps and Beps.
//
// 🚀 What is inside?
//
//	A dependency-light library and a small CLI:
//		• Closed forms for A, Ap, Aeps, B, B00, B0x, Bp, dBds, Beps, Beps0x,
//		  BepsAtZero, BAtZero and BprimeAtZero
//		• Decision-table dispatch over degenerate kinematics and thresholds
//		• A complex dilogarithm good to ~1e-15 everywhere on its principal sheet
//		• Diagnostics for genuine singularities through logrus
//		• YAML batch requests with regression checks
//
// Packages:
//
//	basis/       the integrals, Evaluator, options, branch introspection
//	numeric/     tolerance, Infinity sentinel, s+i0 continuation, Källén Δ, thresholds
//	polylog/     complex dilogarithm Li2
//	diag/        Diagnostic, Handler, logrus handler, Recorder
//	batch/       YAML requests: decode, validate, evaluate, encode
//	cmd/oneloop/ command-line front-end (eval, batch, funcs)
//
// Quick start:
//
//	import "github.com/katalvlaran/oneloop/basis"
//
//	v := basis.B(1, 2, complex(10, 0), 1) // B(x=1, y=2, s=10) at qq=1
//	if numeric.IsInfinite(v) {
//		// genuine singularity: a diagnostic has been logged
//	}
//
// All squared masses are real, the squared momentum is complex and the
// renormalization scale squared qq must be positive. Real momenta are
// continued to s + i0, so results above threshold carry Im B > 0.
package oneloop
