package flow

import "math"

// Inf is the maximum extent of an unbounded constraint axis.
var Inf = math.Inf(1)

// Size holds a width/height pair in layout units.
type Size struct {
	Width, Height float64
}

// Point is an (X, Y) offset from the container origin.
type Point struct {
	X, Y float64
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Constraints is a (min, max) size interval per axis, supplied anew by
// the host on every pass. Max may be Inf independently per axis; Min is
// always finite.
type Constraints struct {
	Min, Max Size
}

// Tight returns constraints that admit exactly sz.
func Tight(sz Size) Constraints {
	return Constraints{Min: sz, Max: sz}
}

// Loose returns constraints with no minimum and the given maxima.
// Pass Inf for an unbounded axis.
func Loose(maxWidth, maxHeight float64) Constraints {
	return Constraints{Max: Size{Width: maxWidth, Height: maxHeight}}
}

// Unbounded returns constraints with no bound on either axis.
func Unbounded() Constraints {
	return Loose(Inf, Inf)
}

// HasBoundedWidth reports whether the width bound is finite.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(c.Max.Width, 1)
}

// HasBoundedHeight reports whether the height bound is finite.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(c.Max.Height, 1)
}

// Constrain clamps sz into the constraint intervals.
func (c Constraints) Constrain(sz Size) Size {
	return Size{
		Width:  clamp(sz.Width, c.Min.Width, c.Max.Width),
		Height: clamp(sz.Height, c.Min.Height, c.Max.Height),
	}
}

// clamp restricts v to [lo, hi]. If lo > hi, lo wins.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
