// SPDX-License-Identifier: MIT

package bounds_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/packfit/bounds"
	"github.com/katalvlaran/packfit/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-3

func f(v float64) *float64 { return &v }

// TestRatioBand_Height10 checks the ratio band for a height of 10.
func TestRatioBand_Height10(t *testing.T) {
	b := bounds.RatioBand(f(10), params.Default())
	require.NotNil(t, b.Upper)
	require.NotNil(t, b.Lower)
	assert.InDelta(t, 11.111, *b.Upper, tol)
	assert.InDelta(t, 8.571, *b.Lower, tol)
}

// TestEstimate_RatioNilHeights ensures nil heights get nil bands under Ratio.
func TestEstimate_RatioNilHeights(t *testing.T) {
	heights := []*float64{f(10), nil, f(70)}
	bands := bounds.Estimate(heights, bounds.Ratio, params.Default())
	require.Len(t, bands, 3)

	assert.Nil(t, bands[1].Upper)
	assert.Nil(t, bands[1].Lower)
	assert.InDelta(t, 70.0+70.0/9, *bands[2].Upper, 1e-12)
	assert.InDelta(t, 60.0, *bands[2].Lower, 1e-12)
}

// TestEstimate_NoValidHeights verifies that no valid heights means all bands nil.
func TestEstimate_NoValidHeights(t *testing.T) {
	for _, p := range []bounds.Policy{bounds.Ratio, bounds.PopulationSpread} {
		bands := bounds.Estimate([]*float64{nil, nil}, p, params.Default())
		require.Len(t, bands, 2, p.String())
		for _, b := range bands {
			assert.Nil(t, b.Upper, p.String())
			assert.Nil(t, b.Lower, p.String())
		}
	}
	assert.Empty(t, bounds.Estimate(nil, bounds.PopulationSpread, params.Default()))
}

// TestEstimate_PopulationSpread checks both bands against a hand-computed σ.
func TestEstimate_PopulationSpread(t *testing.T) {
	// heights 2, 4, 4, 4, 5, 5, 7, 9 → mean 5, population σ = 2.
	vals := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	heights := make([]*float64, 0, len(vals)+1)
	for _, v := range vals {
		heights = append(heights, f(v))
	}
	heights = append(heights, nil)

	sd, ok := bounds.PopulationStdDev(heights)
	require.True(t, ok)
	assert.InDelta(t, 2.0, sd, 1e-12)

	bands := bounds.Estimate(heights, bounds.PopulationSpread, params.Default())
	require.Len(t, bands, len(heights))

	h := 9.0
	wantUpper := h - 2 - math.Sqrt2 + h/9
	wantLower := h - 2 - math.Sqrt2 - h/7
	assert.InDelta(t, wantUpper, *bands[7].Upper, 1e-12)
	assert.InDelta(t, wantLower, *bands[7].Lower, 1e-12)
	assert.Nil(t, bands[8].Upper)
}

// TestEstimate_DoesNotMutateHeights ensures Estimate leaves its input untouched.
func TestEstimate_DoesNotMutateHeights(t *testing.T) {
	h := f(10)
	heights := []*float64{h}
	for _, p := range []bounds.Policy{bounds.Ratio, bounds.PopulationSpread} {
		bands := bounds.Estimate(heights, p, params.Default())
		assert.Equal(t, 10.0, *h)
		assert.NotSame(t, h, bands[0].Upper)
		assert.NotSame(t, h, bands[0].Lower)
	}
}

// TestPopulationStdDev_Single verifies that one height has zero spread.
func TestPopulationStdDev_Single(t *testing.T) {
	sd, ok := bounds.PopulationStdDev([]*float64{nil, f(42)})
	assert.True(t, ok)
	assert.Equal(t, 0.0, sd)

	_, ok = bounds.PopulationStdDev(nil)
	assert.False(t, ok)
}

// TestParsePolicy covers the accepted policy names and the unknown case.
func TestParsePolicy(t *testing.T) {
	cases := map[string]bounds.Policy{
		"":                  bounds.Ratio,
		"ratio":             bounds.Ratio,
		" RATIO ":           bounds.Ratio,
		"population-spread": bounds.PopulationSpread,
		"stdev":             bounds.PopulationSpread,
	}
	for in, want := range cases {
		got, err := bounds.ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := bounds.ParsePolicy("median")
	assert.ErrorIs(t, err, bounds.ErrUnknownPolicy)
}

// TestPolicyString checks the configuration names of the policies.
func TestPolicyString(t *testing.T) {
	assert.Equal(t, "ratio", bounds.Ratio.String())
	assert.Equal(t, "population-spread", bounds.PopulationSpread.String())
	assert.Equal(t, "Policy(9)", bounds.Policy(9).String())
}

// TestEstimate_UnknownPolicy verifies that an undeclared policy yields nil
// bands instead of silently using Ratio.
func TestEstimate_UnknownPolicy(t *testing.T) {
	bands := bounds.Estimate([]*float64{f(10), f(20)}, bounds.Policy(9), params.Default())
	require.Len(t, bands, 2)
	for _, b := range bands {
		assert.Nil(t, b.Upper)
		assert.Nil(t, b.Lower)
	}
}

// TestPolicyValidate checks the declared policies pass and others fail.
func TestPolicyValidate(t *testing.T) {
	assert.NoError(t, bounds.Ratio.Validate())
	assert.NoError(t, bounds.PopulationSpread.Validate())
	assert.ErrorIs(t, bounds.Policy(9).Validate(), bounds.ErrUnknownPolicy)
}
