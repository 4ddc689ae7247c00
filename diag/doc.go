// SPDX-License-Identifier: MIT

// Package diag is the side channel for genuine singularities.
//
// A basis integral that has no finite value at the requested point returns
// numeric.Infinity and emits exactly one Diagnostic naming the function and
// the offending condition. Removable singularities never reach this package.
//
// Handlers:
//   - NewLogrusHandler, Default: structured warning through logrus.
//   - Discard: drop everything.
//   - Recorder: keep diagnostics in memory (tests, batch reports).
//   - Multi: fan out to several handlers.
//
// Every Diagnostic is an error matching ErrUndefined via errors.Is, so outer
// layers can treat it like the rest of their error values.
package diag
