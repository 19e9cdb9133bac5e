// SPDX-License-Identifier: MIT

package params

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTable is returned by Validate when a constant is non-finite or
// outside its allowed range.
var ErrInvalidTable = errors.New("params: invalid constants table")

// Defaults (single source of truth).
const (
	// DefaultFRWidthMargin is subtracted from the nominal width on FR-class machines (mm).
	DefaultFRWidthMargin = 10.0

	// DefaultStandardWidthMargin is subtracted from the nominal width on all other machines (mm).
	DefaultStandardWidthMargin = 8.0

	// DefaultFlatLengthMargin is the length lost to a flat seal (mm).
	DefaultFlatLengthMargin = 15.0

	// DefaultBottleneckLengthMargin is the length lost to a bottleneck seal (mm).
	DefaultBottleneckLengthMargin = 24.0

	// DefaultBottleneckAreaBonus is the fill area regained by the bottleneck shoulder (mm²).
	DefaultBottleneckAreaBonus = 40.0

	// DefaultVolumeScale reconciles a cm³ volume over a mm² area into mm of height.
	DefaultVolumeScale = 1_000_000.0

	// DefaultPackingCorrection is the empirical packing-density correction.
	DefaultPackingCorrection = 1.9

	// DefaultUpperBandDivisor gives the upper guide rail: h + h/9.
	DefaultUpperBandDivisor = 9.0

	// DefaultLowerBandDivisor gives the lower guide rail: h - h/7.
	DefaultLowerBandDivisor = 7.0

	// DefaultAssumedThicknessCM is the filled pouch thickness assumed by size suggestions.
	DefaultAssumedThicknessCM = 3.0

	// DefaultSuggestSealMargin is the seal width added on each side of a suggested pouch (mm).
	DefaultSuggestSealMargin = 10.0

	// DefaultSuggestElongation stretches the suggested height relative to the width.
	DefaultSuggestElongation = 1.2
)

// Table is the named constants table. The zero value is not usable; start
// from Default.
type Table struct {
	FRWidthMargin          float64 `yaml:"fr_width_margin"`
	StandardWidthMargin    float64 `yaml:"standard_width_margin"`
	FlatLengthMargin       float64 `yaml:"flat_length_margin"`
	BottleneckLengthMargin float64 `yaml:"bottleneck_length_margin"`
	BottleneckAreaBonus    float64 `yaml:"bottleneck_area_bonus"`
	VolumeScale            float64 `yaml:"volume_scale"`
	PackingCorrection      float64 `yaml:"packing_correction"`
	UpperBandDivisor       float64 `yaml:"upper_band_divisor"`
	LowerBandDivisor       float64 `yaml:"lower_band_divisor"`

	AssumedThicknessCM float64 `yaml:"assumed_thickness_cm"`
	SuggestSealMargin  float64 `yaml:"suggest_seal_margin"`
	SuggestElongation  float64 `yaml:"suggest_elongation"`
}

// Default returns the production constants.
func Default() Table {
	return Table{
		FRWidthMargin:          DefaultFRWidthMargin,
		StandardWidthMargin:    DefaultStandardWidthMargin,
		FlatLengthMargin:       DefaultFlatLengthMargin,
		BottleneckLengthMargin: DefaultBottleneckLengthMargin,
		BottleneckAreaBonus:    DefaultBottleneckAreaBonus,
		VolumeScale:            DefaultVolumeScale,
		PackingCorrection:      DefaultPackingCorrection,
		UpperBandDivisor:       DefaultUpperBandDivisor,
		LowerBandDivisor:       DefaultLowerBandDivisor,
		AssumedThicknessCM:     DefaultAssumedThicknessCM,
		SuggestSealMargin:      DefaultSuggestSealMargin,
		SuggestElongation:      DefaultSuggestElongation,
	}
}

// Validate checks that every constant is finite, that margins are
// non-negative, and that scale factors and divisors are strictly positive.
// The first violation is returned wrapped around ErrInvalidTable.
func (t Table) Validate() error {
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"fr_width_margin", t.FRWidthMargin},
		{"standard_width_margin", t.StandardWidthMargin},
		{"flat_length_margin", t.FlatLengthMargin},
		{"bottleneck_length_margin", t.BottleneckLengthMargin},
		{"bottleneck_area_bonus", t.BottleneckAreaBonus},
		{"suggest_seal_margin", t.SuggestSealMargin},
	}
	for _, f := range nonNegative {
		if !finite(f.v) || f.v < 0 {
			return fmt.Errorf("%s=%v must be finite and >= 0: %w", f.name, f.v, ErrInvalidTable)
		}
	}

	positive := []struct {
		name string
		v    float64
	}{
		{"volume_scale", t.VolumeScale},
		{"packing_correction", t.PackingCorrection},
		{"upper_band_divisor", t.UpperBandDivisor},
		{"lower_band_divisor", t.LowerBandDivisor},
		{"assumed_thickness_cm", t.AssumedThicknessCM},
		{"suggest_elongation", t.SuggestElongation},
	}
	for _, f := range positive {
		if !finite(f.v) || f.v <= 0 {
			return fmt.Errorf("%s=%v must be finite and > 0: %w", f.name, f.v, ErrInvalidTable)
		}
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
