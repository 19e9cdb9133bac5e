// SPDX-License-Identifier: MIT

package simulate

import (
	"math"

	"github.com/katalvlaran/packfit/geometry"
	"github.com/katalvlaran/packfit/params"
)

// Suggestion is an ideal pouch footprint for a given fill.
type Suggestion struct {
	Width  float64 `json:"ideal_width"`  // mm, 0.1 precision
	Height float64 `json:"ideal_height"` // mm, 0.1 precision
	Volume float64 `json:"volume"`       // cm³, 0.01 precision
}

// Suggest sizes a near-square three-side-seal pouch for weight grams of a
// product with the given specific gravity.
//
// Algorithm:
//  1. volume = weight / sg (geometry.Volume guards apply).
//  2. area_cm² = volume / AssumedThicknessCM.
//  3. side_mm  = √area_cm² · 10.
//  4. width  = side + 2·SuggestSealMargin
//     height = side·SuggestElongation + 2·SuggestSealMargin
//
// ok is false when volume is undefined or not positive.
func Suggest(weight, specificGravity *float64, tbl params.Table) (Suggestion, bool) {
	v := geometry.Volume(weight, specificGravity)
	if v == nil || *v <= 0 {
		return Suggestion{}, false
	}

	area := *v / tbl.AssumedThicknessCM
	side := math.Sqrt(area) * 10
	margin := tbl.SuggestSealMargin * 2

	return Suggestion{
		Width:  round(side+margin, 1),
		Height: round(side*tbl.SuggestElongation+margin, 1),
		Volume: round(*v, 2),
	}, true
}

// round rounds half to even at the given decimal places.
func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.RoundToEven(v*p) / p
}
