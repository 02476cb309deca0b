package geom

import "math"

// PrecisionModel snaps X and Y ordinates as they are decoded.
type PrecisionModel interface {
	MakePrecise(v float64) float64
}

// Floating keeps full float64 precision.
type Floating struct{}

func (Floating) MakePrecise(v float64) float64 {
	return v
}

// Fixed rounds ordinates to a grid of 1/Scale units.
//
// A Scale of 1000 keeps three decimal places. NaN and infinities are returned
// unchanged.
type Fixed struct {
	Scale float64
}

func (f Fixed) MakePrecise(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || f.Scale <= 0 {
		return v
	}

	return math.Round(v*f.Scale) / f.Scale
}
