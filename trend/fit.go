// SPDX-License-Identifier: MIT

package trend

import (
	"math"

	"github.com/katalvlaran/packfit/record"
)

// Fit fits y = A·x^B to points. ok is false when there are fewer than two
// points, any coordinate is non-positive or non-finite, or every x is the
// same.
//
// Implementation:
//   - Stage 1: validate and log-transform every point; track the x domain.
//   - Stage 2: means of ln x and ln y.
//   - Stage 3: centered sums Sxx and Sxy; B = Sxy/Sxx, A = exp(ȳ − B·x̄).
//
// Complexity: O(n) time, O(n) extra space.
func Fit(kind Kind, points []Point) (Curve, bool) {
	n := len(points)
	if n < 2 {
		return Curve{}, false
	}

	// Stage 1
	lx := make([]float64, n)
	ly := make([]float64, n)
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		if !positive(p.X) || !positive(p.Y) {
			return Curve{}, false
		}
		lx[i], ly[i] = math.Log(p.X), math.Log(p.Y)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
	}

	// Stage 2
	var mx, my float64
	for i := 0; i < n; i++ {
		mx += lx[i]
		my += ly[i]
	}
	mx /= float64(n)
	my /= float64(n)

	// Stage 3
	var sxx, sxy, dx float64
	for i := 0; i < n; i++ {
		dx = lx[i] - mx
		sxx += dx * dx
		sxy += dx * (ly[i] - my)
	}
	if sxx == 0 {
		return Curve{}, false
	}
	b := sxy / sxx
	a := math.Exp(my - b*mx)
	if !positive(a) || math.IsNaN(b) || math.IsInf(b, 0) {
		return Curve{}, false
	}

	return Curve{Kind: kind, A: a, B: b, MinVolume: minX, MaxVolume: maxX, N: n}, true
}

// FitAll fits height over every product with positive volume and height,
// and fits upper_height and lower_height over the products whose volume,
// height and both guide heights are strictly positive. Curves that cannot be
// fitted are omitted; the result is in Kinds order.
func FitAll(products []record.Product) []Curve {
	var sets [3][]Point
	sets[Height] = Points(products, Height)
	for _, p := range products {
		if !bounded(p) {
			continue
		}
		x := *p.Volume
		sets[UpperHeight] = append(sets[UpperHeight], Point{X: x, Y: *p.UpperHeight})
		sets[LowerHeight] = append(sets[LowerHeight], Point{X: x, Y: *p.LowerHeight})
	}

	var curves []Curve
	for _, k := range Kinds {
		if c, ok := Fit(k, sets[k]); ok {
			curves = append(curves, c)
		}
	}
	return curves
}

// Points extracts the (volume, value) pairs of one series, keeping only
// products where both are strictly positive.
func Points(products []record.Product, kind Kind) []Point {
	var out []Point
	for _, p := range products {
		y := value(p, kind)
		if p.Volume == nil || y == nil || !positive(*p.Volume) || !positive(*y) {
			continue
		}
		out = append(out, Point{X: *p.Volume, Y: *y})
	}
	return out
}

// bounded reports whether both guide curves can use p.
func bounded(p record.Product) bool {
	for _, v := range []*float64{p.Volume, p.Height, p.UpperHeight, p.LowerHeight} {
		if v == nil || !positive(*v) {
			return false
		}
	}
	return true
}

func value(p record.Product, kind Kind) *float64 {
	switch kind {
	case Height:
		return p.Height
	case UpperHeight:
		return p.UpperHeight
	case LowerHeight:
		return p.LowerHeight
	default:
		return nil
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
