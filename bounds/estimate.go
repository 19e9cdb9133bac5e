// SPDX-License-Identifier: MIT

package bounds

import (
	"math"

	"github.com/katalvlaran/packfit/params"
)

// Estimate returns one Band per height, index-aligned with heights.
//
// Ratio needs only the row itself. PopulationSpread first computes σ over the
// whole slice and then derives every band; callers that parallelize the
// height computation must finish it before calling Estimate. An undeclared
// policy yields nil bands.
func Estimate(heights []*float64, policy Policy, tbl params.Table) []Band {
	bands := make([]Band, len(heights))

	switch policy {
	case PopulationSpread:
		sd, ok := PopulationStdDev(heights)
		if !ok {
			return bands
		}
		for i, h := range heights {
			bands[i] = SpreadBand(h, sd, tbl)
		}
	case Ratio:
		for i, h := range heights {
			bands[i] = RatioBand(h, tbl)
		}
	}

	return bands
}

// RatioBand returns h + h/UpperBandDivisor and h − h/LowerBandDivisor.
func RatioBand(h *float64, tbl params.Table) Band {
	if h == nil {
		return Band{}
	}
	upper := *h + *h/tbl.UpperBandDivisor
	lower := *h - *h/tbl.LowerBandDivisor

	return Band{Upper: &upper, Lower: &lower}
}

// SpreadBand returns the population-spread band for h given the batch
// standard deviation sd.
func SpreadBand(h *float64, sd float64, tbl params.Table) Band {
	if h == nil {
		return Band{}
	}
	root := math.Sqrt(sd)
	upper := *h - sd - root + *h/tbl.UpperBandDivisor
	lower := *h - sd - root - *h/tbl.LowerBandDivisor

	return Band{Upper: &upper, Lower: &lower}
}
