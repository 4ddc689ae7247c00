// SPDX-License-Identifier: MIT

// Package polylog implements the complex dilogarithm
//
//	Li2(z) = -∫₀^z ln(1-t)/t dt = Σ_{n≥1} zⁿ/n²   (|z| ≤ 1)
//
// on its principal branch, with the cut along the real axis from 1 to +∞.
// On the cut the side is read from the sign of the imaginary part, signed
// zero included: Li2(x + i0) has imaginary part +π ln x, Li2(x - i0) has -π ln x.
//
// Algorithm:
//  1. Map z into the region |z| ≤ 1, Re z ≤ 1/2 using
//     Li2(z) = -Li2(1/z) - ζ(2) - ½ ln²(-z)
//     Li2(z) = ζ(2) - ln z · ln(1-z) - Li2(1-z)
//  2. Sum the Bernoulli series in u = -ln(1-z),
//     Li2(z) = Σ_{n≥0} Bₙ u^{n+1}/(n+1)!,
//     which converges for |u| < 2π; after step 1 |u| ≲ 1.3 and ten even
//     terms reach double precision.
//
// Complexity: O(1), no allocation.
package polylog
