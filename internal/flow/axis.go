package flow

// Axis designates the horizontal or vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota // Children laid out left-to-right
	Vertical               // Children laid out top-to-bottom
)

// Cross returns the axis perpendicular to a.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// mainExtent returns the component of sz along a.
func (a Axis) mainExtent(sz Size) float64 {
	if a == Horizontal {
		return sz.Width
	}
	return sz.Height
}

// crossExtent returns the component of sz perpendicular to a.
func (a Axis) crossExtent(sz Size) float64 {
	if a == Horizontal {
		return sz.Height
	}
	return sz.Width
}

// mainConstraint returns the (min, max) interval of cs along a.
func (a Axis) mainConstraint(cs Constraints) (min, max float64) {
	if a == Horizontal {
		return cs.Min.Width, cs.Max.Width
	}
	return cs.Min.Height, cs.Max.Height
}

// crossConstraint returns the (min, max) interval of cs perpendicular to a.
func (a Axis) crossConstraint(cs Constraints) (min, max float64) {
	if a == Horizontal {
		return cs.Min.Height, cs.Max.Height
	}
	return cs.Min.Width, cs.Max.Width
}

// size assembles a Size from main and cross extents.
func (a Axis) size(main, cross float64) Size {
	if a == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// point assembles a Point from main and cross offsets.
func (a Axis) point(main, cross float64) Point {
	if a == Horizontal {
		return Point{X: main, Y: cross}
	}
	return Point{X: cross, Y: main}
}

// constraints assembles Constraints from main and cross intervals.
func (a Axis) constraints(mainMin, mainMax, crossMin, crossMax float64) Constraints {
	if a == Horizontal {
		return Constraints{
			Min: Size{Width: mainMin, Height: crossMin},
			Max: Size{Width: mainMax, Height: crossMax},
		}
	}
	return Constraints{
		Min: Size{Width: crossMin, Height: mainMin},
		Max: Size{Width: crossMax, Height: mainMax},
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		panic("unreachable")
	}
}
