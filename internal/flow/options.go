package flow

import "fmt"

// Options carries the full configuration for an Engine. It is an
// immutable value: the host builds a new one and swaps it wholesale via
// [Engine.SetOptions] between passes, never mutating it mid-pass.
type Options struct {
	// Primary is the axis attempted first.
	Primary Axis

	// Spacing is the default gap between adjacent children on either
	// axis. Must be >= 0.
	Spacing float64

	// HorizontalSpacing and VerticalSpacing override Spacing while the
	// corresponding axis is committed. Nil means no override.
	HorizontalSpacing *float64
	VerticalSpacing   *float64

	// HorizontalJustify and VerticalJustify select the main-axis
	// distribution used while that axis is committed.
	HorizontalJustify Justify
	VerticalJustify   Justify

	// HorizontalAlign and VerticalAlign select the cross-axis alignment
	// used while that axis is committed.
	HorizontalAlign Align
	VerticalAlign   Align

	// TextDirection orders children on a horizontal main axis and flips
	// the cross axis on a vertical one.
	TextDirection TextDirection

	// VerticalDirection flips the cross axis on a horizontal main axis.
	VerticalDirection VerticalDirection

	// Clip is handed to the paint step when a pass flags overflow.
	Clip Clip

	// Maintain freezes the committed axis across passes, even when it
	// no longer fits. Suppresses flapping during animated resizes.
	Maintain bool

	// Strategy selects the fit-test measurement strategy.
	Strategy Strategy
}

// DefaultOptions returns the configuration used when the host sets
// nothing: horizontal primary, zero spacing, start alignment, LTR,
// downward stacking, no clip, layout-based fit tests.
func DefaultOptions() Options {
	return Options{Primary: Horizontal}
}

// Validate rejects configurations no layout pass may use. It is called
// by the engine before any option set takes effect.
func (o Options) Validate() error {
	if o.Spacing < 0 {
		return fmt.Errorf("spacing must be non-negative, got %v", o.Spacing)
	}
	if o.HorizontalSpacing != nil && *o.HorizontalSpacing < 0 {
		return fmt.Errorf("horizontal spacing must be non-negative, got %v", *o.HorizontalSpacing)
	}
	if o.VerticalSpacing != nil && *o.VerticalSpacing < 0 {
		return fmt.Errorf("vertical spacing must be non-negative, got %v", *o.VerticalSpacing)
	}
	return nil
}

// SpacingFor resolves the gap used while axis is committed: the
// per-axis override when set, else the default Spacing.
func (o Options) SpacingFor(axis Axis) float64 {
	if axis == Horizontal && o.HorizontalSpacing != nil {
		return *o.HorizontalSpacing
	}
	if axis == Vertical && o.VerticalSpacing != nil {
		return *o.VerticalSpacing
	}
	return o.Spacing
}

// JustifyFor returns the main-axis distribution used while axis is
// committed.
func (o Options) JustifyFor(axis Axis) Justify {
	if axis == Horizontal {
		return o.HorizontalJustify
	}
	return o.VerticalJustify
}

// AlignFor returns the cross-axis alignment used while axis is
// committed.
func (o Options) AlignFor(axis Axis) Align {
	if axis == Horizontal {
		return o.HorizontalAlign
	}
	return o.VerticalAlign
}
