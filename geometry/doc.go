// SPDX-License-Identifier: MIT

// Package geometry turns a nominal package footprint into usable fill area and
// a product mass into volume and estimated fill height.
//
// Formulas (all constants come from params.Table):
//
//	adjusted = width − FRWidthMargin        (FR-class machines)
//	adjusted = width − StandardWidthMargin  (every other machine)
//
//	flat:        area = adjusted · (length − FlatLengthMargin)
//	bottleneck:  area = adjusted · (length − BottleneckLengthMargin) + BottleneckAreaBonus
//	unknown:     area = adjusted · length
//
//	volume = weight / specific_gravity                     (sg > 0)
//	height = (volume / area) · VolumeScale · PackingCorrection  (area > 0)
//
// Null policy:
//
//	Every input is a *float64. A nil input, a failed guard or a non-finite
//	intermediate yields a nil output. Nothing in this package returns an
//	error or panics for any input combination.
//
// Compute is the one entry point shared by the batch pipeline and the
// simulation engine, so both paths evaluate exactly the same expressions in
// the same order and agree bit for bit.
package geometry
