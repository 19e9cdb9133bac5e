// SPDX-License-Identifier: MIT

package trend

import "math"

// Kind names the series a curve was fitted to.
type Kind int

const (
	Height Kind = iota
	UpperHeight
	LowerHeight
)

// Kinds lists every series in chart order.
var Kinds = []Kind{Height, UpperHeight, LowerHeight}

// String returns the record column name of the series.
func (k Kind) String() string {
	switch k {
	case Height:
		return "height"
	case UpperHeight:
		return "upper_height"
	case LowerHeight:
		return "lower_height"
	default:
		return "unknown"
	}
}

// Point is one (volume, value) observation.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve is a fitted y = A·x^B valid over [MinVolume, MaxVolume].
type Curve struct {
	Kind      Kind
	A         float64
	B         float64
	MinVolume float64
	MaxVolume float64
	N         int // points used
}

// Eval returns A·x^B.
func (c Curve) Eval(x float64) float64 {
	return c.A * math.Pow(x, c.B)
}

// Sample returns n evenly spaced points across the curve's domain, suitable
// for drawing a line. n < 2 yields the single point at MinVolume (or nothing
// for n <= 0).
func (c Curve) Sample(n int) []Point {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Point{{X: c.MinVolume, Y: c.Eval(c.MinVolume)}}
	}
	out := make([]Point, n)
	step := (c.MaxVolume - c.MinVolume) / float64(n-1)
	for i := range out {
		x := c.MinVolume + step*float64(i)
		if i == n-1 {
			x = c.MaxVolume
		}
		out[i] = Point{X: x, Y: c.Eval(x)}
	}
	return out
}
