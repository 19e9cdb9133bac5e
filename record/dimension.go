// SPDX-License-Identifier: MIT

package record

import "strings"

// SizeDelimiter separates width from length in a size descriptor.
const SizeDelimiter = "*"

// ParseSize splits a "W*L" descriptor at the first SizeDelimiter only.
//
// Any later delimiter stays in the length token, which then fails numeric
// coercion: "120*340*80" yields width=120, length=nil. Without a delimiter
// the whole descriptor is the width token and length is nil.
func ParseSize(size string) (width, length *float64) {
	w, l, found := strings.Cut(size, SizeDelimiter)
	width = CoerceFloat(w)
	if !found {
		return width, nil
	}
	return width, CoerceFloat(l)
}
