// SPDX-License-Identifier: MIT

package record_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/packfit/geometry"
	"github.com/katalvlaran/packfit/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullHeader() []string { return append([]string(nil), record.InputColumns...) }

// TestNormalize_MissingColumns ensures every missing required column is listed.
func TestNormalize_MissingColumns(t *testing.T) {
	tbl := record.RawTable{Header: []string{record.ColProductCode, record.ColName, record.ColWeight}}

	_, _, err := record.Normalize(tbl)
	require.Error(t, err)
	assert.ErrorIs(t, err, record.ErrSourceFormat)

	var sfe *record.SourceFormatError
	require.True(t, errors.As(err, &sfe))
	assert.Equal(t, []string{record.ColMachineType, record.ColSpecificGravity, record.ColSizeDescriptor}, sfe.Missing)
	assert.Contains(t, err.Error(), "size_descriptor")
}

// TestNormalize_SealColumnOptional verifies a table without seal_type is accepted.
func TestNormalize_SealColumnOptional(t *testing.T) {
	tbl := record.RawTable{
		Header: record.RequiredColumns,
		Rows: []record.RawRecord{
			{record.ColProductCode: "P1", record.ColSizeDescriptor: "120*340", record.ColWeight: 10, record.ColSpecificGravity: 1},
		},
	}
	got, rep, err := record.Normalize(tbl)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, geometry.SealUnknown, got[0].SealType)
	assert.Equal(t, 0, rep.UnknownSeals)
}

// TestNormalize_ExcludesAbsentSize ensures rows with an absent size descriptor are excluded and counted.
func TestNormalize_ExcludesAbsentSize(t *testing.T) {
	tbl := record.RawTable{
		Header: fullHeader(),
		Rows: []record.RawRecord{
			{record.ColProductCode: "A", record.ColSizeDescriptor: "120*340"},
			{record.ColProductCode: "B", record.ColSizeDescriptor: "   "},
			{record.ColProductCode: "C", record.ColSizeDescriptor: "nan"},
			{record.ColProductCode: "D"},
			{record.ColProductCode: "E", record.ColSizeDescriptor: " 90*200 "},
		},
	}
	got, rep, err := record.Normalize(tbl)
	require.NoError(t, err)

	codes := make([]string, 0, len(got))
	for _, p := range got {
		codes = append(codes, p.ProductCode)
	}
	assert.Equal(t, []string{"A", "E"}, codes)
	assert.Equal(t, "90*200", got[1].Size)
	assert.Equal(t, record.Report{Total: 5, Kept: 2, Excluded: 3, UnknownMachines: 2}, rep)
}

// TestNormalize_CoercesAndClassifies checks numeric coercion and machine/seal classification.
func TestNormalize_CoercesAndClassifies(t *testing.T) {
	tbl := record.RawTable{
		Header: fullHeader(),
		Rows: []record.RawRecord{{
			record.ColProductCode:       "P-001",
			record.ColName:              "Soup base",
			record.ColMachineType:       "FR-300",
			record.ColWeight:            "40",
			record.ColShotCount:         12.0,
			record.ColSpecificGravity:   0.8,
			record.ColPackagingMaterial: "PET/AL/PE",
			record.ColCustomerName:      "ACME",
			record.ColViscosity:         "high",
			record.ColSizeDescriptor:    "120*340",
			record.ColSealType:          "Flat-Seal",
		}},
	}
	got, rep, err := record.Normalize(tbl)
	require.NoError(t, err)

	want := []record.Product{{
		ProductCode:       "P-001",
		Name:              "Soup base",
		Machine:           "FR-300",
		MachineClass:      geometry.MachineFR,
		Seal:              "Flat-Seal",
		SealType:          geometry.SealFlat,
		Weight:            fp(40),
		SpecificGravity:   fp(0.8),
		Size:              "120*340",
		ShotCount:         "12",
		PackagingMaterial: "PET/AL/PE",
		CustomerName:      "ACME",
		Viscosity:         "high",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Normalize mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, record.Report{Total: 1, Kept: 1}, rep)
}

// TestNormalize_ParseFailuresBecomeNil ensures non-numeric weight or sg becomes nil and is counted.
func TestNormalize_ParseFailuresBecomeNil(t *testing.T) {
	tbl := record.RawTable{
		Header: fullHeader(),
		Rows: []record.RawRecord{{
			record.ColMachineType:     "M-2",
			record.ColWeight:          "about forty",
			record.ColSpecificGravity: "",
			record.ColSizeDescriptor:  "120*340",
			record.ColSealType:        "zipper",
		}},
	}
	got, rep, err := record.Normalize(tbl)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Nil(t, got[0].Weight)
	assert.Nil(t, got[0].SpecificGravity)
	assert.Equal(t, geometry.MachineStandard, got[0].MachineClass)
	assert.Equal(t, geometry.SealUnknown, got[0].SealType)
	assert.Equal(t, 1, rep.ParseFailures, "blank specific gravity is absent, not a failure")
	assert.Equal(t, 1, rep.UnknownSeals)
}

// TestNormalize_DoesNotMutateInput ensures the raw table is left untouched.
func TestNormalize_DoesNotMutateInput(t *testing.T) {
	row := record.RawRecord{record.ColSizeDescriptor: " 120*340 ", record.ColWeight: " 5 "}
	tbl := record.RawTable{Header: fullHeader(), Rows: []record.RawRecord{row}}

	_, _, err := record.Normalize(tbl)
	require.NoError(t, err)
	assert.Equal(t, " 120*340 ", row[record.ColSizeDescriptor])
	assert.Equal(t, " 5 ", row[record.ColWeight])
}

// TestNormalize_CustomClassifier verifies a caller-supplied alias table.
func TestNormalize_CustomClassifier(t *testing.T) {
	c := record.DefaultClassifier()
	c.FRPrefixes = []string{"X9"}
	tbl := record.RawTable{
		Header: fullHeader(),
		Rows: []record.RawRecord{
			{record.ColMachineType: "x9-line", record.ColSizeDescriptor: "1*1"},
			{record.ColMachineType: "FR-300", record.ColSizeDescriptor: "1*1"},
		},
	}
	got, _, err := record.Normalize(tbl, record.WithClassifier(c))
	require.NoError(t, err)
	assert.Equal(t, geometry.MachineFR, got[0].MachineClass)
	assert.Equal(t, geometry.MachineStandard, got[1].MachineClass)
}

// TestProduct_DerivationStepsReturnCopies ensures each With step leaves the receiver unchanged.
func TestProduct_DerivationStepsReturnCopies(t *testing.T) {
	base := record.Product{Size: "120*340"}
	withDims := base.WithDimensions()

	assert.Nil(t, base.Width, "receiver is untouched")
	require.NotNil(t, withDims.Width)
	assert.Equal(t, 120.0, *withDims.Width)

	withDerived := withDims.WithDerived(geometry.Outputs{Area: fp(1), Volume: fp(2), Height: fp(3)})
	assert.Nil(t, withDims.Area)
	assert.Equal(t, 3.0, *withDerived.Height)

	withBounds := withDerived.WithBounds(fp(4), fp(2))
	assert.Nil(t, withDerived.UpperHeight)
	assert.Same(t, withDerived.Height, withBounds.Height, "height carried, not recomputed")
}

// TestClassifier_Seal covers seal aliases, unknown text and empty text.
func TestClassifier_Seal(t *testing.T) {
	c := record.DefaultClassifier()
	cases := []struct {
		in         string
		want       geometry.SealType
		recognized bool
	}{
		{"flat", geometry.SealFlat, true},
		{" FLAT-SEAL ", geometry.SealFlat, true},
		{"平シール", geometry.SealFlat, true},
		{"bottleneck", geometry.SealBottleneck, true},
		{"Bottleneck_Seal", geometry.SealBottleneck, true},
		{"ボトルネック", geometry.SealBottleneck, true},
		{"", geometry.SealUnknown, true},
		{"nan", geometry.SealUnknown, true},
		{"gusset", geometry.SealUnknown, false},
	}
	for _, tc := range cases {
		got, ok := c.Seal(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.recognized, ok, tc.in)
	}
}

// TestClassifier_Machine covers FR prefixes, other text and empty text.
func TestClassifier_Machine(t *testing.T) {
	c := record.DefaultClassifier()
	assert.Equal(t, geometry.MachineFR, c.Machine("FR-300"))
	assert.Equal(t, geometry.MachineFR, c.Machine("fr200"))
	assert.Equal(t, geometry.MachineFR, c.Machine("ＦＲ－１"))
	assert.Equal(t, geometry.MachineStandard, c.Machine("GX-5"))
	assert.Equal(t, geometry.MachineUnknown, c.Machine(""))
}
