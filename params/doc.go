// SPDX-License-Identifier: MIT

// Package params holds the single table of tunable business constants used by
// every calculation in packfit.
//
// The numbers below are the actual business logic of the estimator: seal and
// fold allowances, the cm³→mm conversion factor, the empirical packing
// correction and the guide-band ratios. Geometry, bounds and simulation code
// never spell these literals out; they receive a Table.
//
//	tbl := params.Default()
//	tbl.PackingCorrection = 2.0 // what-if
//	if err := tbl.Validate(); err != nil { ... }
package params
