// SPDX-License-Identifier: MIT

package geometry

// MachineClass selects the width allowance of the filling machine.
//
//   - MachineUnknown  — no machine text at all; treated as MachineStandard.
//   - MachineStandard — any non-FR machine (width − StandardWidthMargin).
//   - MachineFR       — FR-class hardware (width − FRWidthMargin).
type MachineClass int

const (
	MachineUnknown MachineClass = iota
	MachineStandard
	MachineFR
)

// String returns the lower-case name of the class.
func (m MachineClass) String() string {
	switch m {
	case MachineStandard:
		return "standard"
	case MachineFR:
		return "fr"
	default:
		return "unknown"
	}
}

// SealType selects the area formula.
//
//   - SealUnknown    — absent or unrecognized seal text; plain adjusted·length.
//   - SealFlat       — flat seal.
//   - SealBottleneck — bottleneck seal.
type SealType int

const (
	SealUnknown SealType = iota
	SealFlat
	SealBottleneck
)

// String returns the canonical seal name used in exports.
func (s SealType) String() string {
	switch s {
	case SealFlat:
		return "flat-seal"
	case SealBottleneck:
		return "bottleneck-seal"
	default:
		return "unknown"
	}
}

// Inputs is everything Compute needs for one package.
type Inputs struct {
	Weight          *float64 // g
	SpecificGravity *float64 // dimensionless
	Width           *float64 // mm
	Length          *float64 // mm
	Machine         MachineClass
	Seal            SealType
}

// Outputs carries the derived quantities; any of them may be nil.
type Outputs struct {
	Area   *float64 // mm²
	Volume *float64 // cm³
	Height *float64 // mm
}
