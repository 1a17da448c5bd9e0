package flow

import "math"

// Engine decides the layout axis and arranges children. Between passes
// it retains only its configuration and the committed axis; everything
// else is per-pass scratch. The host drives every call from a single
// goroutine, so the engine takes no locks.
type Engine struct {
	opts      Options
	axis      Axis
	committed bool
}

// NewEngine returns an engine with the given configuration, or an
// error when the configuration fails validation.
func NewEngine(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Engine{opts: opts}, nil
}

// Options returns the current configuration.
func (e *Engine) Options() Options {
	return e.opts
}

// SetOptions validates opts and swaps the configuration wholesale. The
// committed axis resets when the primary axis changes or when Maintain
// transitions from on to off; any other change keeps the cached
// decision, so the next pass re-resolves only if it would anyway.
func (e *Engine) SetOptions(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.Primary != e.opts.Primary || (e.opts.Maintain && !opts.Maintain) {
		e.committed = false
	}
	e.opts = opts
	return nil
}

// Axis returns the committed axis and whether any pass has committed
// one yet.
func (e *Engine) Axis() (Axis, bool) {
	return e.axis, e.committed
}

// Result is the outcome of one layout pass.
type Result struct {
	// Size is the container size committed for this pass.
	Size Size

	// Axis is the axis children were arranged along.
	Axis Axis

	// Overflow is set when the arrangement exceeds the committed size
	// on either axis. The paint step consults it together with Clip.
	Overflow bool

	// Changed reports that this pass switched away from a previously
	// committed axis. It is false on the first pass. The host delivers
	// its change notification after the pass returns, never during it,
	// so a handler can never re-enter an in-flight pass.
	Changed bool
}

// Layout runs one full pass: reuse or resolve the axis, lay out every
// child, write child offsets, and compute the container size.
func (e *Engine) Layout(cs Constraints, items []Item) Result {
	axis, changed := e.resolve(cs, items)
	e.axis, e.committed = axis, true
	size, overflow := e.arrange(axis, cs, items, true)
	return Result{Size: size, Axis: axis, Overflow: overflow, Changed: changed}
}

// DryLayout reports the size Layout would commit under cs without
// mutating engine state or child layouts.
func (e *Engine) DryLayout(cs Constraints, items []Item) Size {
	axis := e.axis
	if !(e.opts.Maintain && e.committed) {
		axis = e.resolveAxis(cs, items)
	}
	size, _ := e.arrange(axis, cs, items, false)
	return size
}

// resolve applies the stability rule, then the decision table. With
// Maintain set and a committed axis, resolution is skipped entirely:
// the frozen axis is arranged even if it would no longer fit, and the
// overflow flag is the only signal for that case.
func (e *Engine) resolve(cs Constraints, items []Item) (axis Axis, changed bool) {
	if e.opts.Maintain && e.committed {
		return e.axis, false
	}
	resolved := e.resolveAxis(cs, items)
	return resolved, e.committed && resolved != e.axis
}

// resolveAxis is the decision table over the primary axis, the
// measurement strategy, and per-axis boundedness. All or nothing: the
// answer is always exactly one axis, no partial wrapping state exists.
func (e *Engine) resolveAxis(cs Constraints, items []Item) Axis {
	if e.opts.Strategy == StrategyPreferPrimary {
		return e.opts.Primary
	}
	boundedW, boundedH := cs.HasBoundedWidth(), cs.HasBoundedHeight()
	switch {
	case !boundedW && !boundedH:
		return e.opts.Primary
	case e.opts.Primary == Horizontal && boundedW:
		if e.fits(Horizontal, cs, items) {
			return Horizontal
		}
		return Vertical
	case e.opts.Primary == Horizontal:
		// Width unbounded, height bounded.
		return Vertical
	case boundedH:
		if e.fits(Vertical, cs, items) {
			return Vertical
		}
		return Horizontal
	default:
		// Primary vertical, height unbounded, width bounded.
		return Horizontal
	}
}

// estimateAxis guesses the axis a pass would choose from constraint
// boundedness alone. Children are unmeasured during intrinsic queries,
// so the fit test is assumed to pass and the primary axis wins whenever
// its own bound allows it.
func (e *Engine) estimateAxis(cs Constraints) Axis {
	if e.committed {
		return e.axis
	}
	if e.opts.Strategy == StrategyPreferPrimary {
		return e.opts.Primary
	}
	_, primaryMax := e.opts.Primary.mainConstraint(cs)
	_, orthoMax := e.opts.Primary.Cross().mainConstraint(cs)
	if math.IsInf(primaryMax, 1) && !math.IsInf(orthoMax, 1) {
		return e.opts.Primary.Cross()
	}
	return e.opts.Primary
}

// MinIntrinsicWidth answers the host's speculative width query given a
// height, consistently with the committed axis when one exists.
func (e *Engine) MinIntrinsicWidth(items []Item, height float64) float64 {
	return e.intrinsic(items, Horizontal, height, false)
}

// MaxIntrinsicWidth answers the host's speculative width query given a
// height, using intrinsic maximum extents.
func (e *Engine) MaxIntrinsicWidth(items []Item, height float64) float64 {
	return e.intrinsic(items, Horizontal, height, true)
}

// MinIntrinsicHeight is the height analog of MinIntrinsicWidth.
func (e *Engine) MinIntrinsicHeight(items []Item, width float64) float64 {
	return e.intrinsic(items, Vertical, width, false)
}

// MaxIntrinsicHeight is the height analog of MaxIntrinsicWidth.
func (e *Engine) MaxIntrinsicHeight(items []Item, width float64) float64 {
	return e.intrinsic(items, Vertical, width, true)
}

// intrinsic computes an intrinsic extent along the queried axis given
// the perpendicular extent, which may be Inf. Along the chosen main
// axis children sum with gaps; across it the largest child wins. Never
// mutates committed state.
func (e *Engine) intrinsic(items []Item, queried Axis, given float64, wantMax bool) float64 {
	// The queried dimension is unbounded by construction; only the
	// given one informs the axis estimate.
	axis := e.estimateAxis(queried.constraints(0, Inf, 0, given))
	if axis == queried {
		total := 0.0
		spacing := e.opts.SpacingFor(axis)
		for i, it := range items {
			if i > 0 {
				total += spacing
			}
			total += intrinsicExtent(it, queried, given, wantMax)
		}
		return total
	}
	// Children stack along the other axis, so each one may claim its
	// own perpendicular extent. Query them unbounded.
	widest := 0.0
	for _, it := range items {
		if v := intrinsicExtent(it, queried, Inf, wantMax); v > widest {
			widest = v
		}
	}
	return widest
}
