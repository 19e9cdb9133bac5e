// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"github.com/katalvlaran/packfit/params"
)

// Area returns the usable fill area in mm² for a nominal width×length
// footprint, or nil when width or length is nil or the result is not finite.
//
// Negative areas are returned as computed (tiny footprints can be smaller
// than their allowances); Height rejects them through its area > 0 guard.
func Area(width, length *float64, machine MachineClass, seal SealType, tbl params.Table) *float64 {
	if width == nil || length == nil {
		return nil
	}

	adjusted := *width - widthMargin(machine, tbl)

	var area float64
	switch seal {
	case SealFlat:
		area = adjusted * (*length - tbl.FlatLengthMargin)
	case SealBottleneck:
		area = (adjusted * (*length - tbl.BottleneckLengthMargin)) + tbl.BottleneckAreaBonus
	default:
		area = adjusted * *length
	}

	return finiteOrNil(area)
}

// widthMargin is the seal/fold allowance removed from the nominal width.
func widthMargin(machine MachineClass, tbl params.Table) float64 {
	if machine == MachineFR {
		return tbl.FRWidthMargin
	}
	return tbl.StandardWidthMargin
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
