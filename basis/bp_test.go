// SPDX-License-Identifier: MIT

package basis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oneloop/basis"
	"github.com/katalvlaran/oneloop/numeric"
)

// derivPoints avoid thresholds; each is far enough from them that a
// central difference with h = 1e-5 is accurate to ~1e-10.
var derivPoints = []kin{
	{2, 1, -50, 1.7},
	{2, 1, -3, 1.7},
	{2, 1, 0.5, 1.7},
	{2, 1, 2, 1.7},
	{2, 1, 8, 1.7},
	{2, 1, complex(3, 0.5), 1.7},
	{1, 4, 3, 1},
	{4, 1, 20, 1},
	{3, 0.5, -1, 1},
}

func TestBp_FiniteDifference(t *testing.T) {
	for _, k := range derivPoints {
		fd := centralDiff(func(v float64) complex128 { return basis.B(v, k.y, k.s, k.qq) }, k.x, 1e-5)
		assertClose(t, fd, basis.Bp(k.x, k.y, k.s, k.qq), 1e-8, "point %+v", k)
	}
}

func TestBp_ZeroMomentum(t *testing.T) {
	ev := basis.Default()
	cases := []struct {
		x, y   float64
		want   float64
		branch string
	}{
		{2, 2, -0.25, "zero momentum, equal masses"},
		{3, 0, -1.0 / 3, "zero momentum, massless y"},
		{3, 0.5, -0.25665924246175564, "zero momentum"},
	}
	for _, c := range cases {
		p := basis.Point{X: c.x, Y: c.y, QQ: 1}
		assert.Equal(t, c.branch, ev.Branch(basis.FuncBp, p))
		assertClose(t, complex(c.want, 0), ev.Bp(c.x, c.y, 0, 1), 1e-12, "x=%v y=%v", c.x, c.y)
	}
}

// TestBp_PseudoThreshold checks the analytic limit in both mass orders.
func TestBp_PseudoThreshold(t *testing.T) {
	ps := numeric.Ps2(4, 1)
	require.InDelta(t, 1.0, ps, 1e-15)

	assertClose(t, complex(-0.1931471805599453, 0), basis.Bp(4, 1, 1, 1), 1e-12)
	assertClose(t, complex(-0.3068528194400547, 0), basis.Bp(1, 4, 1, 1), 1e-12)

	// The general form a little away from the pseudo-threshold agrees.
	assertClose(t, basis.Bp(4, 1, 1, 1), basis.Bp(4, 1, 1+1e-6, 1), 1e-5)
}

func TestBp_Undefined(t *testing.T) {
	ev, rec := recording()

	assertUndefined(t, rec, "Bp", ev.Bp(0, 1, 2, 1))
	assertUndefined(t, rec, "Bp", ev.Bp(-1, 1, 2, 1))

	th := numeric.Th2(4, 1)
	assertUndefined(t, rec, "Bp", ev.Bp(4, 1, complex(th, 0), 1))
	assertUndefined(t, rec, "Bp", ev.Bp(1, 4, complex(th*(1+1e-12), 0), 1))

	got := ev.Bp(4, 1, complex(th*(1+1e-6), 0), 1)
	assert.False(t, numeric.IsInfinite(got))
	assert.False(t, math.IsNaN(real(got)))
	assert.Zero(t, rec.Len())
}
