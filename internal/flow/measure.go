package flow

import "math"

// childConstraints returns the constraint children are measured and
// laid out against when axis is the candidate main axis: the cross
// dimension is capped at the container's cross bound and the main
// dimension is left free.
func childConstraints(axis Axis, cs Constraints) Constraints {
	_, crossMax := axis.crossConstraint(cs)
	return axis.constraints(0, Inf, 0, crossMax)
}

// fits resolves the bound for axis from cs and applies the configured
// measurement strategy. An infinite bound never fits; the resolver
// falls back to the orthogonal axis instead.
func (e *Engine) fits(axis Axis, cs Constraints, items []Item) bool {
	_, bound := axis.mainConstraint(cs)
	if math.IsInf(bound, 1) {
		return false
	}
	spacing := e.opts.SpacingFor(axis)
	if e.opts.Strategy == StrategyIntrinsic {
		return fitsWithIntrinsics(items, axis, cs, bound, spacing)
	}
	return fitsWithLayout(items, axis, cs, bound, spacing)
}

// fitsWithLayout reports whether every child fits along axis within
// bound, using dry-measured sizes under a cross-capped constraint.
// Returns false the instant the running total overruns the bound.
func fitsWithLayout(items []Item, axis Axis, cs Constraints, bound, spacing float64) bool {
	child := childConstraints(axis, cs)
	total := 0.0
	for i, it := range items {
		if i > 0 {
			total += spacing
		}
		total += axis.mainExtent(it.Measure(child))
		if total > bound {
			return false
		}
	}
	return true
}

// fitsWithIntrinsics is fitsWithLayout with intrinsic maximum extents
// in place of dry layout. Cheaper, less exact when a child's
// cross-capped size differs from its intrinsic answer.
func fitsWithIntrinsics(items []Item, axis Axis, cs Constraints, bound, spacing float64) bool {
	_, crossMax := axis.crossConstraint(cs)
	total := 0.0
	for i, it := range items {
		if i > 0 {
			total += spacing
		}
		total += intrinsicExtent(it, axis, crossMax, true)
		if total > bound {
			return false
		}
	}
	return true
}

// intrinsicExtent queries one child's intrinsic extent along axis given
// the perpendicular extent.
func intrinsicExtent(it Item, axis Axis, cross float64, wantMax bool) float64 {
	switch {
	case axis == Horizontal && wantMax:
		return it.MaxIntrinsicWidth(cross)
	case axis == Horizontal:
		return it.MinIntrinsicWidth(cross)
	case wantMax:
		return it.MaxIntrinsicHeight(cross)
	default:
		return it.MinIntrinsicHeight(cross)
	}
}
