// SPDX-License-Identifier: MIT

package basis

// Package-level shorthands evaluated by the Default evaluator.

// A is Default().A.
func A(x, qq float64) complex128 { return std.A(x, qq) }

// Ap is Default().Ap.
func Ap(x, qq float64) complex128 { return std.Ap(x, qq) }

// Aeps is Default().Aeps.
func Aeps(x, qq float64) complex128 { return std.Aeps(x, qq) }

// B is Default().B.
func B(x, y float64, s complex128, qq float64) complex128 { return std.B(x, y, s, qq) }

// B00 is Default().B00.
func B00(s complex128, qq float64) complex128 { return std.B00(s, qq) }

// B0x is Default().B0x.
func B0x(x float64, s complex128, qq float64) complex128 { return std.B0x(x, s, qq) }

// Bp is Default().Bp.
func Bp(x, y float64, s complex128, qq float64) complex128 { return std.Bp(x, y, s, qq) }

// DBds is Default().DBds.
func DBds(x, y float64, s complex128, qq float64) complex128 { return std.DBds(x, y, s, qq) }

// Beps is Default().Beps.
func Beps(x, y float64, s complex128, qq float64) complex128 { return std.Beps(x, y, s, qq) }

// Beps0x is Default().Beps0x.
func Beps0x(x float64, s complex128, qq float64) complex128 { return std.Beps0x(x, s, qq) }

// BepsAtZero is Default().BepsAtZero.
func BepsAtZero(x, y, qq float64) complex128 { return std.BepsAtZero(x, y, qq) }

// BAtZero is Default().BAtZero.
func BAtZero(x, y, qq float64) complex128 { return std.BAtZero(x, y, qq) }

// BprimeAtZero is Default().BprimeAtZero.
func BprimeAtZero(x, y, qq float64) complex128 { return std.BprimeAtZero(x, y, qq) }

// Alpha is Default().Alpha.
func Alpha(x, qq float64) float64 { return std.Alpha(x, qq) }
