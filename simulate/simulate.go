// SPDX-License-Identifier: MIT

package simulate

import (
	"github.com/katalvlaran/packfit/geometry"
	"github.com/katalvlaran/packfit/params"
	"github.com/katalvlaran/packfit/record"
)

// Input is one hypothetical package. It is never stored.
type Input struct {
	Weight          *float64
	SpecificGravity *float64
	Width           *float64
	Length          *float64
	Machine         geometry.MachineClass
	Seal            geometry.SealType
}

// RawInput is an interactive request before coercion.
type RawInput struct {
	Weight          any
	SpecificGravity any
	Width           any
	Length          any
	Machine         string
	Seal            string
}

// Result is the point overlaid on the batch chart. Area is included for
// display; Volume and Height are the query answer.
type Result struct {
	Area   *float64 `json:"area"`
	Volume *float64 `json:"volume"`
	Height *float64 `json:"height"`
}

// ParseInput coerces raw values with record.CoerceFloat and classifies the
// machine and seal text with c.
func ParseInput(raw RawInput, c record.Classifier) Input {
	seal, _ := c.Seal(raw.Seal)
	return Input{
		Weight:          record.CoerceFloat(raw.Weight),
		SpecificGravity: record.CoerceFloat(raw.SpecificGravity),
		Width:           record.CoerceFloat(raw.Width),
		Length:          record.CoerceFloat(raw.Length),
		Machine:         c.Machine(raw.Machine),
		Seal:            seal,
	}
}

// FromProduct builds the Input that replays a derived record.
func FromProduct(p record.Product) Input {
	return Input(p.GeometryInputs())
}

// Run evaluates in through geometry.Compute.
func Run(in Input, tbl params.Table) Result {
	out := geometry.Compute(geometry.Inputs(in), tbl)
	return Result{Area: out.Area, Volume: out.Volume, Height: out.Height}
}
