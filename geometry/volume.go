// SPDX-License-Identifier: MIT

package geometry

import "github.com/katalvlaran/packfit/params"

// Volume returns weight / specificGravity in cm³, or nil when either input is
// nil or specificGravity <= 0.
func Volume(weight, specificGravity *float64) *float64 {
	if weight == nil || specificGravity == nil || !(*specificGravity > 0) {
		return nil
	}
	return finiteOrNil(*weight / *specificGravity)
}

// Height returns (volume / area) · VolumeScale · PackingCorrection in mm, or
// nil when either input is nil or area <= 0.
//
// The expression is evaluated left to right; callers that need parity with
// the batch pipeline must go through this function rather than re-deriving it.
func Height(volume, area *float64, tbl params.Table) *float64 {
	if volume == nil || area == nil || !(*area > 0) {
		return nil
	}
	return finiteOrNil((*volume / *area) * tbl.VolumeScale * tbl.PackingCorrection)
}

// Compute chains Area, Volume and Height for one package.
func Compute(in Inputs, tbl params.Table) Outputs {
	area := Area(in.Width, in.Length, in.Machine, in.Seal, tbl)
	volume := Volume(in.Weight, in.SpecificGravity)

	return Outputs{
		Area:   area,
		Volume: volume,
		Height: Height(volume, area, tbl),
	}
}
