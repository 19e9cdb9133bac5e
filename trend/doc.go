// SPDX-License-Identifier: MIT

// Package trend fits power-law curves y = A·x^B over derived records for
// charting.
//
// The fit is ordinary least squares on (ln x, ln y):
//
//	B = Σ(ln xᵢ − mean ln x)(ln yᵢ − mean ln y) / Σ(ln xᵢ − mean ln x)²
//	A = exp(mean ln y − B · mean ln x)
//
// x is the volume (cm³); y is the height, upper or lower guide height (mm).
// FitAll selects one shared input set (volume, height and both guides
// strictly positive) so the three curves cover the same volume domain.
//
// Degenerate input is never an error: fewer than two points, a non-positive
// or non-finite coordinate, or identical volumes yield no curve.
package trend
