// SPDX-License-Identifier: MIT

package record

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// absentValues are the textual spellings of a missing value produced by the
// spreadsheet tools that feed this system. Compared case-insensitively after
// trimming.
var absentValues = map[string]struct{}{
	"":     {},
	"nan":  {},
	"none": {},
	"null": {},
	"<na>": {},
	"n/a":  {},
	"na":   {},
	"nat":  {},
}

// IsAbsent reports whether s, once trimmed and width-folded, is a missing-value
// sentinel.
func IsAbsent(s string) bool {
	_, ok := absentValues[strings.ToLower(foldText(s))]
	return ok
}

// CoerceFloat converts v to a finite float64, or nil when v is nil, an absent
// sentinel, non-numeric text, NaN or ±Inf. It never panics.
func CoerceFloat(v any) *float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case string:
		return parseFloat(x)
	case fmt.Stringer:
		return parseFloat(x.String())
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func parseFloat(s string) *float64 {
	s = foldText(s)
	if IsAbsent(s) {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Text renders v as trimmed text; numbers use the shortest exact form.
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		if math.IsNaN(x) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		if math.IsNaN(float64(x)) {
			return ""
		}
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}

// isPresent reports whether v carries something other than a missing value.
func isPresent(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return !IsAbsent(x)
	case float64:
		return !math.IsNaN(x)
	case float32:
		return !math.IsNaN(float64(x))
	default:
		return true
	}
}

// foldText trims s and maps full-width digits, letters and symbols to their
// ASCII forms, so "１２０＊３４０" reads as "120*340".
func foldText(s string) string {
	return strings.TrimSpace(width.Fold.String(strings.TrimSpace(s)))
}
