// SPDX-License-Identifier: MIT

// Package batch evaluates many basis integrals described in a YAML request.
//
// A request names a default renormalization scale and a list of points:
//
//	scale: 1.0
//	tolerance: 1e-9        # for expect comparisons, optional
//	points:
//	  - func: B
//	    x: 1
//	    y: 2
//	    s: [10, 0.5]       # [re, im]; a bare number is a real s
//	    qq: 1.5            # optional, defaults to scale
//	    expect: [1.2, 0.3] # optional regression value
//
// Decode parses and validates; Evaluate runs every point through a
// basis.Evaluator, attributing diagnostics to the point that raised them.
// Results encode back to YAML with Encode.
//
// Errors are package sentinels (ErrEmpty, ErrUnknownFunc, ...) wrapped with
// the offending point index; match them with errors.Is.
package batch
