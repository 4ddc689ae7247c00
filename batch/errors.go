// SPDX-License-Identifier: MIT

package batch

import "errors"

// Sentinel errors. Decode and Validate wrap them with the point index,
// e.g. "points[3]: batch: unknown function".
var (
	// ErrDecode wraps malformed YAML or unknown keys.
	ErrDecode = errors.New("batch: cannot decode request")

	// ErrEmpty signals a request without points.
	ErrEmpty = errors.New("batch: no points")

	// ErrUnknownFunc signals a function name ParseFunc does not know.
	ErrUnknownFunc = errors.New("batch: unknown function")

	// ErrNonFinite signals a NaN or ±Inf argument.
	ErrNonFinite = errors.New("batch: NaN or Inf argument")

	// ErrBadScale signals a non-positive renormalization scale.
	ErrBadScale = errors.New("batch: scale must be > 0")

	// ErrBadMomentum signals an s that is neither a number nor [re] / [re, im].
	ErrBadMomentum = errors.New("batch: s must be a number or [re, im]")

	// ErrBadTolerance signals a negative or non-finite comparison tolerance.
	ErrBadTolerance = errors.New("batch: tolerance must be finite and >= 0")
)
