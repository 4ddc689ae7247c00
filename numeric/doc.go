// SPDX-License-Identifier: MIT

// Package numeric holds the small set of primitives every basis integral
// leans on: the "effectively zero" tolerance, the infinity sentinel returned
// at genuine singularities, the infinitesimal-imaginary-part continuation of
// a momentum argument, the Källén function and the two-particle thresholds.
//
// Everything here is immutable after package initialisation. Zeta2 is
// computed once at init from gonum's Hurwitz zeta; all other values are
// constants or pure functions.
//
// ieps convention:
//
//	AddIeps(s) = s + i·IEps·max(1, |Re s|)   when Im s == 0
//	AddIeps(s) = s                           otherwise
//
// i.e. a real momentum is pushed into the upper half plane ("s + i0"), which
// selects the physical Riemann sheet of ln(-s) and of the two-point functions.
package numeric
