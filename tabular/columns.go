// SPDX-License-Identifier: MIT

package tabular

import (
	"strings"

	"github.com/katalvlaran/packfit/record"
	"golang.org/x/text/width"
)

// Columns maps a logical column name to the header spellings accepted for it.
// The logical name itself is always accepted.
type Columns map[string][]string

// DefaultColumns returns the aliases seen in production spreadsheets.
func DefaultColumns() Columns {
	return Columns{
		record.ColProductCode:       {"品番", "製品コード", "code"},
		record.ColName:              {"品名", "製品名"},
		record.ColMachineType:       {"機械", "機種", "machine"},
		record.ColWeight:            {"重量", "充填量", "weight_g"},
		record.ColShotCount:         {"ショット数", "shots"},
		record.ColSpecificGravity:   {"比重", "sg", "density"},
		record.ColPackagingMaterial: {"包材", "material"},
		record.ColCustomerName:      {"得意先", "customer"},
		record.ColViscosity:         {"粘度"},
		record.ColSizeDescriptor:    {"サイズ", "size"},
		record.ColSealType:          {"シール", "シール形状", "seal"},
	}
}

// resolver maps a normalized header cell to its logical name.
type resolver map[string]string

func (c Columns) resolver() resolver {
	r := make(resolver)
	for logical, aliases := range c {
		r[headerKey(logical)] = logical
		for _, a := range aliases {
			r[headerKey(a)] = logical
		}
	}
	return r
}

// logical returns the logical name for a header cell, or the trimmed cell
// itself when it is not a known column.
func (r resolver) logical(cell string) string {
	if name, ok := r[headerKey(cell)]; ok {
		return name
	}
	return strings.TrimSpace(cell)
}

func headerKey(s string) string {
	return strings.ToLower(strings.TrimSpace(width.Fold.String(s)))
}
