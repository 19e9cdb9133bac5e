// SPDX-License-Identifier: MIT

// Package bounds derives the upper and lower guide heights drawn around each
// estimated package height.
//
// Two policies exist; exactly one is selected per run:
//
//	Ratio (default, row-local):
//	  upper = h + h/UpperBandDivisor
//	  lower = h − h/LowerBandDivisor
//
//	PopulationSpread (dataset-wide, two passes):
//	  σ     = population standard deviation (÷N) of every non-nil height
//	  upper = h − σ − √σ + h/UpperBandDivisor
//	  lower = h − σ − √σ − h/LowerBandDivisor
//
// A nil height yields a nil band. When the batch has no height at all every
// band is nil. Heights are read only; Estimate allocates fresh bound values.
package bounds
