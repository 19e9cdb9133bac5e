// SPDX-License-Identifier: MIT

package record

import "github.com/katalvlaran/packfit/geometry"

// Logical column names of the input schema.
const (
	ColProductCode       = "product_code"
	ColName              = "name"
	ColMachineType       = "machine_type"
	ColWeight            = "weight"
	ColShotCount         = "shot_count"
	ColSpecificGravity   = "specific_gravity"
	ColPackagingMaterial = "packaging_material"
	ColCustomerName      = "customer_name"
	ColViscosity         = "viscosity"
	ColSizeDescriptor    = "size_descriptor"
	ColSealType          = "seal_type"
)

// RequiredColumns must all be present in a RawTable header.
var RequiredColumns = []string{
	ColProductCode,
	ColName,
	ColMachineType,
	ColWeight,
	ColSpecificGravity,
	ColSizeDescriptor,
}

// InputColumns is the full logical schema in order of relevance.
var InputColumns = []string{
	ColProductCode,
	ColName,
	ColMachineType,
	ColWeight,
	ColShotCount,
	ColSpecificGravity,
	ColPackagingMaterial,
	ColCustomerName,
	ColViscosity,
	ColSizeDescriptor,
	ColSealType,
}

// RawRecord is one loosely typed row keyed by logical column name. Values may
// be nil, text (possibly a placeholder such as "nan"), or already numeric.
type RawRecord map[string]any

// RawTable is what an ingestion collaborator hands to the pipeline.
type RawTable struct {
	Header []string
	Rows   []RawRecord
}

// Product is one production record with its derived quantities.
// Nil pointers are nulls.
type Product struct {
	ProductCode string
	Name        string

	Machine      string // raw machine text
	MachineClass geometry.MachineClass
	Seal         string // raw seal text
	SealType     geometry.SealType

	Weight          *float64 // g
	SpecificGravity *float64
	Size            string // trimmed "W*L"

	ShotCount         string
	PackagingMaterial string
	CustomerName      string
	Viscosity         string

	Width       *float64 // mm
	Length      *float64 // mm
	Area        *float64 // mm²
	Volume      *float64 // cm³
	Height      *float64 // mm
	UpperHeight *float64 // mm
	LowerHeight *float64 // mm

	IdealWidth  *float64 // mm, suggested footprint
	IdealHeight *float64 // mm, suggested footprint
}

// WithDimensions returns a copy carrying Width and Length parsed from Size.
func (p Product) WithDimensions() Product {
	p.Width, p.Length = ParseSize(p.Size)
	return p
}

// WithDerived returns a copy carrying the geometry outputs.
func (p Product) WithDerived(out geometry.Outputs) Product {
	p.Area, p.Volume, p.Height = out.Area, out.Volume, out.Height
	return p
}

// WithBounds returns a copy carrying the guide heights.
func (p Product) WithBounds(upper, lower *float64) Product {
	p.UpperHeight, p.LowerHeight = upper, lower
	return p
}

// WithSuggestion returns a copy carrying a suggested footprint.
func (p Product) WithSuggestion(width, height *float64) Product {
	p.IdealWidth, p.IdealHeight = width, height
	return p
}

// GeometryInputs projects the fields Compute needs.
func (p Product) GeometryInputs() geometry.Inputs {
	return geometry.Inputs{
		Weight:          p.Weight,
		SpecificGravity: p.SpecificGravity,
		Width:           p.Width,
		Length:          p.Length,
		Machine:         p.MachineClass,
		Seal:            p.SealType,
	}
}

// Report counts the field-level problems absorbed while normalizing.
type Report struct {
	Total           int // rows seen
	Kept            int // rows that produced a Product
	Excluded        int // rows without a usable size descriptor
	ParseFailures   int // weight/specific gravity present but not numeric
	UnknownMachines int // machine text missing
	UnknownSeals    int // seal text present but not recognized
}
