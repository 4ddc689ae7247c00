// SPDX-License-Identifier: MIT

package basis

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/oneloop/diag"
	"github.com/katalvlaran/oneloop/numeric"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the "effectively zero" threshold used by the
	// branch predicates. Bands such as 10×tolerance scale with it.
	DefaultTolerance = numeric.DefaultTolerance

	// seriesBand is the |1 - x/y| below which BprimeAtZero switches to its
	// power series. It does not scale with the tolerance.
	seriesBand = 0.005

	// spacelikeRatio selects the rearranged B closed form for Re s < -spacelikeRatio·(x+y).
	spacelikeRatio = 10.0

	// thresholdBand multiplies the tolerance for the coincidence rows of
	// B0x, Beps0x and Beps.
	thresholdBand = 10.0
)

const (
	panicToleranceInvalid = "basis: WithTolerance: tol must be finite and > 0"
	panicHandlerNil       = "basis: WithHandler: handler must be non-nil"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options is the resolved evaluator configuration.
type Options struct {
	tol     float64
	handler diag.Handler
}

// WithTolerance sets the zero/coincidence tolerance.
//
// Panics when tol is NaN, ±Inf or not strictly positive.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}
	return func(o *Options) { o.tol = tol }
}

// WithHandler routes diagnostics to h.
func WithHandler(h diag.Handler) Option {
	if h == nil {
		panic(panicHandlerNil)
	}
	return func(o *Options) { o.handler = h }
}

// WithLogger routes diagnostics to l as logrus warnings.
// A nil logger means logrus.StandardLogger().
func WithLogger(l *logrus.Logger) Option {
	h := diag.NewLogrusHandler(l)
	return func(o *Options) { o.handler = h }
}

func defaultOptions() Options {
	return Options{tol: DefaultTolerance, handler: diag.Default()}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
