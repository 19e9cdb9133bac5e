// SPDX-License-Identifier: MIT

package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/packfit/record"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrEmptyInput is returned when the stream has no header row.
var ErrEmptyInput = errors.New("tabular: input has no header row")

// Read parses CSV from r. Cells stay text; numeric coercion is the
// normalizer's job. Short rows leave trailing columns absent, extra cells
// are ignored. When several header cells map to the same logical column the
// first non-absent cell of each row wins. A nil cols uses DefaultColumns.
func Read(r io.Reader, cols Columns) (record.RawTable, error) {
	if cols == nil {
		cols = DefaultColumns()
	}
	res := cols.resolver()

	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return record.RawTable{}, ErrEmptyInput
	}
	if err != nil {
		return record.RawTable{}, fmt.Errorf("tabular: read header: %w", err)
	}

	tbl := record.RawTable{Header: make([]string, len(head))}
	for i, h := range head {
		tbl.Header[i] = res.logical(h)
	}

	for line := 2; ; line++ {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return record.RawTable{}, fmt.Errorf("tabular: read line %d: %w", line, err)
		}
		row := make(record.RawRecord, len(tbl.Header))
		for i, name := range tbl.Header {
			if i >= len(cells) {
				continue
			}
			if prev, ok := row[name].(string); ok && !record.IsAbsent(prev) {
				continue
			}
			row[name] = cells[i]
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	return tbl, nil
}
