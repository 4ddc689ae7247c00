// SPDX-License-Identifier: MIT

package basis

import "github.com/katalvlaran/oneloop/diag"

// Test bridge: exposes the resolved options and the private bands to
// basis_test without widening the production API.

// OptionsSnapshot is a read-only view of Options.
type OptionsSnapshot struct {
	Tol     float64
	Handler diag.Handler
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{Tol: o.tol, Handler: o.handler}
}

// GatherOptionsSnapshot_TestOnly resolves opts on top of the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

const (
	ExportedSeriesBand     = seriesBand
	ExportedSpacelikeRatio = spacelikeRatio
	ExportedThresholdBand  = thresholdBand
)

// BranchNames_TestOnly lists the row names of f in dispatch order.
func BranchNames_TestOnly(f Func) []string {
	t := f.table()
	if t == nil {
		return nil
	}
	out := make([]string, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.name
	}
	return out
}
