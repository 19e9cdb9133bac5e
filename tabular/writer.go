// SPDX-License-Identifier: MIT

package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/packfit/record"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Derived column names appended after the input schema.
const (
	ColWidth       = "width"
	ColLength      = "length"
	ColArea        = "area"
	ColVolume      = "volume"
	ColHeight      = "height"
	ColUpperHeight = "upper_height"
	ColLowerHeight = "lower_height"
	ColIdealWidth  = "ideal_width"
	ColIdealHeight = "ideal_height"
)

// OutputColumns is the export header.
var OutputColumns = append(append([]string(nil), record.InputColumns...),
	ColWidth, ColLength, ColArea, ColVolume, ColHeight, ColUpperHeight, ColLowerHeight,
)

// SuggestionColumns are appended to OutputColumns when any product carries a
// suggested footprint.
var SuggestionColumns = []string{ColIdealWidth, ColIdealHeight}

// Write exports products as BOM-prefixed UTF-8 CSV.
func Write(w io.Writer, products []record.Product) error {
	tw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(tw)

	ideal := hasSuggestions(products)
	header := OutputColumns
	if ideal {
		header = append(append([]string(nil), OutputColumns...), SuggestionColumns...)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("tabular: write header: %w", err)
	}
	for i, p := range products {
		row := rowOf(p)
		if ideal {
			row = append(row, num(p.IdealWidth), num(p.IdealHeight))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("tabular: write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("tabular: flush: %w", err)
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("tabular: flush: %w", err)
	}
	return nil
}

func rowOf(p record.Product) []string {
	return []string{
		p.ProductCode,
		p.Name,
		p.Machine,
		num(p.Weight),
		p.ShotCount,
		num(p.SpecificGravity),
		p.PackagingMaterial,
		p.CustomerName,
		p.Viscosity,
		p.Size,
		p.Seal,
		num(p.Width),
		num(p.Length),
		num(p.Area),
		num(p.Volume),
		num(p.Height),
		num(p.UpperHeight),
		num(p.LowerHeight),
	}
}

func hasSuggestions(products []record.Product) bool {
	for _, p := range products {
		if p.IdealWidth != nil || p.IdealHeight != nil {
			return true
		}
	}
	return false
}

func num(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
