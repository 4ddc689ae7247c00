// SPDX-License-Identifier: MIT

package basis_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oneloop/basis"
	"github.com/katalvlaran/oneloop/diag"
	"github.com/katalvlaran/oneloop/numeric"
)

func TestDefaultOptions_Documented(t *testing.T) {
	o := basis.GatherOptionsSnapshot_TestOnly()
	assert.Equal(t, basis.DefaultTolerance, o.Tol)
	assert.Equal(t, 1e-10, o.Tol)
	assert.NotNil(t, o.Handler)

	assert.Equal(t, 0.005, basis.ExportedSeriesBand)
	assert.Equal(t, 10.0, basis.ExportedSpacelikeRatio)
	assert.Equal(t, 10.0, basis.ExportedThresholdBand)

	assert.Equal(t, basis.DefaultTolerance, basis.Default().Tolerance())
}

func TestOptions_LastWins(t *testing.T) {
	rec := &diag.Recorder{}
	o := basis.GatherOptionsSnapshot_TestOnly(
		basis.WithTolerance(1e-6),
		basis.WithLogger(logrus.New()),
		basis.WithTolerance(1e-8),
		basis.WithHandler(rec),
		nil,
	)
	assert.Equal(t, 1e-8, o.Tol)
	assert.Same(t, rec, o.Handler)
}

func TestWithTolerance_Panics(t *testing.T) {
	for _, tol := range []float64{0, -1e-10, math.NaN(), math.Inf(1)} {
		assert.Panics(t, func() { basis.WithTolerance(tol) }, "tol=%v", tol)
	}
	assert.NotPanics(t, func() { basis.WithTolerance(1e-14) })
}

func TestWithHandler_NilPanics(t *testing.T) {
	assert.PanicsWithValue(t, "basis: WithHandler: handler must be non-nil", func() {
		basis.WithHandler(nil)
	})
}

// TestWithTolerance_MovesBranches checks predicates scale with the tolerance.
func TestWithTolerance_MovesBranches(t *testing.T) {
	p := basis.Point{X: 1e-7, Y: 2, S: 3, QQ: 1}

	assert.Equal(t, "general", basis.Default().Branch(basis.FuncB, p))
	loose := basis.New(basis.WithTolerance(1e-6))
	assert.Equal(t, "one massless", loose.Branch(basis.FuncB, p))
	assert.Equal(t, loose.B0x(2, 3, 1), loose.B(1e-7, 2, 3, 1))
}

func TestWithLogger_WarnsOnSingularity(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})

	ev := basis.New(basis.WithLogger(l))
	v := ev.Ap(0, 1)
	require.True(t, numeric.IsInfinite(v))

	out := buf.String()
	assert.Contains(t, out, `"level":"warning"`)
	assert.Contains(t, out, `"func":"Ap"`)
	assert.Contains(t, out, `"reason":"A'(0) is undefined."`)

	buf.Reset()
	ev.A(2, 1)
	assert.Empty(t, buf.String())
}

func TestEvaluator_Handler(t *testing.T) {
	ev, rec := recording()
	assert.Same(t, rec, ev.Handler())
	assert.NotNil(t, basis.Default().Handler())
}
