package axisflow

import "fmt"

// Option configures a Container. Options apply in order; New and
// Update reject the whole set on the first error.
type Option func(*Container) error

// WithPrimary sets the axis attempted first. Changing it through
// Update resets the cached axis decision.
func WithPrimary(axis Axis) Option {
	return func(c *Container) error {
		c.opts.Primary = axis
		return nil
	}
}

// WithSpacing sets the default gap between adjacent children on either
// axis.
func WithSpacing(gap float64) Option {
	return func(c *Container) error {
		if gap < 0 {
			return fmt.Errorf("spacing must be non-negative, got %v", gap)
		}
		c.opts.Spacing = gap
		return nil
	}
}

// WithHorizontalSpacing overrides the gap used while the horizontal
// axis is committed.
func WithHorizontalSpacing(gap float64) Option {
	return func(c *Container) error {
		if gap < 0 {
			return fmt.Errorf("horizontal spacing must be non-negative, got %v", gap)
		}
		c.opts.HorizontalSpacing = &gap
		return nil
	}
}

// WithVerticalSpacing overrides the gap used while the vertical axis
// is committed.
func WithVerticalSpacing(gap float64) Option {
	return func(c *Container) error {
		if gap < 0 {
			return fmt.Errorf("vertical spacing must be non-negative, got %v", gap)
		}
		c.opts.VerticalSpacing = &gap
		return nil
	}
}

// WithJustify sets the main-axis distribution used while axis is
// committed.
func WithJustify(axis Axis, j Justify) Option {
	return func(c *Container) error {
		if axis == Horizontal {
			c.opts.HorizontalJustify = j
		} else {
			c.opts.VerticalJustify = j
		}
		return nil
	}
}

// WithCrossAlign sets the cross-axis alignment used while axis is
// committed.
func WithCrossAlign(axis Axis, a Align) Option {
	return func(c *Container) error {
		if axis == Horizontal {
			c.opts.HorizontalAlign = a
		} else {
			c.opts.VerticalAlign = a
		}
		return nil
	}
}

// WithTextDirection pins the horizontal reading order, opting the
// container out of the package ambient.
func WithTextDirection(d TextDirection) Option {
	return func(c *Container) error {
		c.opts.TextDirection = d
		c.explicitDir = true
		return nil
	}
}

// WithVerticalDirection sets which way vertical stacking proceeds.
func WithVerticalDirection(d VerticalDirection) Option {
	return func(c *Container) error {
		c.opts.VerticalDirection = d
		return nil
	}
}

// WithClip sets how paint steps treat overflowing content.
func WithClip(clip Clip) Option {
	return func(c *Container) error {
		c.opts.Clip = clip
		return nil
	}
}

// WithMaintain freezes the committed axis across passes, even when it
// no longer fits. Turning it off through Update resets the cached
// decision.
func WithMaintain(maintain bool) Option {
	return func(c *Container) error {
		c.opts.Maintain = maintain
		return nil
	}
}

// WithStrategy sets the fit-test measurement strategy.
func WithStrategy(s Strategy) Option {
	return func(c *Container) error {
		c.opts.Strategy = s
		return nil
	}
}

// WithOnAxisChange sets the callback fired after a pass switches away
// from a previously committed axis. It never fires during a pass and
// never on the first one. Pass nil to clear it.
func WithOnAxisChange(fn func(Axis)) Option {
	return func(c *Container) error {
		c.onAxisChange = fn
		return nil
	}
}

// WithChildren replaces the child list.
func WithChildren(items ...Item) Option {
	return func(c *Container) error {
		c.children = append([]Item(nil), items...)
		return nil
	}
}
