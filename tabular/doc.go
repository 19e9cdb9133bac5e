// SPDX-License-Identifier: MIT

// Package tabular adapts CSV files to the record model: Read turns a CSV
// stream into a record.RawTable, Write exports derived Products.
//
// Read strips a leading UTF-8 byte-order mark and maps header cells onto
// logical column names through a Columns alias table, so spreadsheets with
// localized headers load without editing. Write emits UTF-8 with a BOM, one
// header row and one row per product; nil numbers are empty cells.
package tabular
