package axisflow

import (
	"fmt"
	"math"
)

var _ Item = (*Box)(nil)

// Box is a leaf child with a preferred size and an optional minimum.
// It takes whatever its constraints allow, clamped toward its
// preferred size, and never trades one axis against the other.
type Box struct {
	preferred Size
	min       Size
	label     string

	offset Point
	size   Size
}

// NewBox creates a Box with the given options.
// A zero Box is valid and collapses to whatever its constraints force.
func NewBox(opts ...BoxOption) *Box {
	b := &Box{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// desired is the size the box asks for before constraints apply.
func (b *Box) desired() Size {
	return Size{
		Width:  math.Max(b.preferred.Width, b.min.Width),
		Height: math.Max(b.preferred.Height, b.min.Height),
	}
}

// Layout sizes the box against cs and commits the result.
func (b *Box) Layout(cs Constraints) Size {
	b.size = cs.Constrain(b.desired())
	return b.size
}

// Measure reports the size Layout would produce under cs without
// committing it.
func (b *Box) Measure(cs Constraints) Size {
	return cs.Constrain(b.desired())
}

// MinIntrinsicWidth returns the smallest width the box tolerates. The
// height hint is ignored; a box never trades axes.
func (b *Box) MinIntrinsicWidth(height float64) float64 {
	if b.min.Width > 0 {
		return b.min.Width
	}
	return b.desired().Width
}

// MaxIntrinsicWidth returns the width beyond which growing no longer
// improves the box.
func (b *Box) MaxIntrinsicWidth(height float64) float64 {
	return b.desired().Width
}

// MinIntrinsicHeight is the height analog of MinIntrinsicWidth.
func (b *Box) MinIntrinsicHeight(width float64) float64 {
	if b.min.Height > 0 {
		return b.min.Height
	}
	return b.desired().Height
}

// MaxIntrinsicHeight is the height analog of MaxIntrinsicWidth.
func (b *Box) MaxIntrinsicHeight(width float64) float64 {
	return b.desired().Height
}

// SetOffset stores the box's position relative to its container.
func (b *Box) SetOffset(p Point) {
	b.offset = p
}

// Offset returns the last stored position.
func (b *Box) Offset() Point {
	return b.offset
}

// Size returns the size committed by the last Layout, or the zero Size
// before any.
func (b *Box) Size() Size {
	return b.size
}

// Label returns the display label used by renderers and dumps.
func (b *Box) Label() string {
	return b.label
}

func (b *Box) String() string {
	if b.label != "" {
		return fmt.Sprintf("box[%s] %gx%g @(%g,%g)", b.label, b.size.Width, b.size.Height, b.offset.X, b.offset.Y)
	}
	return fmt.Sprintf("box %gx%g @(%g,%g)", b.size.Width, b.size.Height, b.offset.X, b.offset.Y)
}
