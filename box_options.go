package axisflow

// BoxOption configures a Box.
type BoxOption func(*Box)

// WithSize sets the preferred width and height.
func WithSize(width, height float64) BoxOption {
	return func(b *Box) {
		b.preferred = Size{Width: width, Height: height}
	}
}

// WithMinSize sets the smallest extents the box tolerates. They also
// floor the preferred size.
func WithMinSize(width, height float64) BoxOption {
	return func(b *Box) {
		b.min = Size{Width: width, Height: height}
	}
}

// WithLabel sets the display label used by renderers and dumps.
func WithLabel(label string) BoxOption {
	return func(b *Box) {
		b.label = label
	}
}
