package flow

import "math"

// arrange performs the per-child layout walk for a committed axis and
// returns the container size plus the overflow flag. When commit is
// false it measures without touching child state, for dry layout.
func (e *Engine) arrange(axis Axis, cs Constraints, items []Item, commit bool) (Size, bool) {
	if len(items) == 0 {
		// Degenerate case: collapse to the constraint minimum. No child
		// calls, no overflow.
		return cs.Constrain(Size{}), false
	}

	mainMin, mainMax := axis.mainConstraint(cs)
	crossMin, crossMax := axis.crossConstraint(cs)

	// Size every child with the cross dimension capped and the main
	// dimension free, recording main/cross extents in index order.
	child := childConstraints(axis, cs)
	mains := make([]float64, len(items))
	crosses := make([]float64, len(items))
	totalMain, maxCross := 0.0, 0.0
	for i, it := range items {
		var sz Size
		if commit {
			sz = it.Layout(child)
		} else {
			sz = it.Measure(child)
		}
		mains[i] = axis.mainExtent(sz)
		crosses[i] = axis.crossExtent(sz)
		totalMain += mains[i]
		if crosses[i] > maxCross {
			maxCross = crosses[i]
		}
	}

	spacing := e.opts.SpacingFor(axis)
	content := totalMain + spacing*float64(len(items)-1)
	justify := e.opts.JustifyFor(axis)

	// Container extents. Distributive modes consume the whole main
	// bound; with an unbounded bound there is nothing to distribute, so
	// they degrade to content size. Everything else packs to content,
	// capped at the bound.
	containerMain := math.Min(content, mainMax)
	if justify.distributive() && !math.IsInf(mainMax, 1) {
		containerMain = mainMax
	}
	containerMain = math.Max(containerMain, mainMin)
	containerCross := clamp(maxCross, crossMin, crossMax)

	freeMain := math.Max(0, containerMain-content)
	overflow := containerMain < content || containerCross < maxCross

	if commit {
		leading, between := justifySpaces(justify, freeMain, spacing, len(items))

		// Walk children in index order. RTL on the horizontal axis
		// assigns from the trailing edge backward, so index 0 lands
		// nearest the right edge and start/end meanings swap. One walk
		// with a direction sign covers both orders.
		reversed := axis == Horizontal && e.opts.TextDirection == RTL
		sign, cursor := 1.0, leading
		if reversed {
			sign, cursor = -1.0, containerMain-leading
		}

		align := e.opts.AlignFor(axis)
		flipCross := (axis == Horizontal && e.opts.VerticalDirection == Up) ||
			(axis == Vertical && e.opts.TextDirection == RTL)

		for i, it := range items {
			main := cursor
			if reversed {
				main -= mains[i]
			}
			it.SetOffset(axis.point(main, crossOffset(align, flipCross, containerCross, crosses[i])))
			cursor += sign * (mains[i] + between)
		}
	}

	return axis.size(containerMain, containerCross), overflow
}

// justifySpaces returns the offset before the first child and the gap
// between adjacent children for the given distribution mode. n is the
// child count, always >= 1 here; gap is the configured spacing.
func justifySpaces(j Justify, freeMain, gap float64, n int) (leading, between float64) {
	switch j {
	case JustifyStart:
		return 0, gap
	case JustifyEnd:
		return freeMain, gap
	case JustifyCenter:
		return freeMain / 2, gap
	case JustifySpaceBetween:
		if n > 1 {
			return 0, gap + freeMain/float64(n-1)
		}
		return freeMain / 2, gap
	case JustifySpaceAround:
		around := freeMain / float64(n)
		return around / 2, gap + around
	case JustifySpaceEvenly:
		evenly := freeMain / float64(n+1)
		return evenly, gap + evenly
	default:
		panic("unreachable")
	}
}

// crossOffset positions one child on the cross axis. flipped swaps the
// start/end meanings when the cross axis runs against its natural
// direction; center is unaffected.
func crossOffset(align Align, flipped bool, containerCross, childCross float64) float64 {
	if flipped {
		switch align {
		case AlignStart:
			align = AlignEnd
		case AlignEnd:
			align = AlignStart
		}
	}
	switch align {
	case AlignStart:
		return 0
	case AlignEnd:
		return containerCross - childCross
	case AlignCenter:
		return (containerCross - childCross) / 2
	default:
		panic("unreachable")
	}
}
