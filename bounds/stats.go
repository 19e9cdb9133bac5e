// SPDX-License-Identifier: MIT

package bounds

import "math"

// PopulationStdDev returns the population standard deviation (divide by N)
// of the non-nil values and ok=false when there are none.
//
// Implementation:
//   - Stage 1: mean over non-nil values in input order.
//   - Stage 2: mean of squared deviations from that mean.
func PopulationStdDev(values []*float64) (sd float64, ok bool) {
	var (
		n   int
		sum float64
	)
	for _, v := range values {
		if v == nil {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return 0, false
	}
	mean := sum / float64(n)

	var sq, d float64
	for _, v := range values {
		if v == nil {
			continue
		}
		d = *v - mean
		sq += d * d
	}

	return math.Sqrt(sq / float64(n)), true
}
