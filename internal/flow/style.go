package flow

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// distributive reports whether the mode consumes the whole main bound.
func (j Justify) distributive() bool {
	return j == JustifySpaceBetween || j == JustifySpaceAround || j == JustifySpaceEvenly
}

func (j Justify) String() string {
	switch j {
	case JustifyStart:
		return "start"
	case JustifyEnd:
		return "end"
	case JustifyCenter:
		return "center"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	case JustifySpaceEvenly:
		return "space-evenly"
	default:
		panic("unreachable")
	}
}

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart  Align = iota // Align to start of cross axis
	AlignEnd                 // Align to end of cross axis
	AlignCenter              // Center on cross axis
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	default:
		panic("unreachable")
	}
}

// TextDirection specifies horizontal reading order. It governs child
// order on a horizontal main axis and the cross flip on a vertical one.
type TextDirection uint8

const (
	LTR TextDirection = iota // Left-to-right
	RTL                      // Right-to-left
)

func (d TextDirection) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	default:
		panic("unreachable")
	}
}

// VerticalDirection specifies which way vertical stacking proceeds. It
// governs the cross flip on a horizontal main axis.
type VerticalDirection uint8

const (
	Down VerticalDirection = iota // Top-to-bottom
	Up                            // Bottom-to-top
)

func (d VerticalDirection) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		panic("unreachable")
	}
}

// Clip selects how overflowing content is treated at paint time. It has
// no effect on arrangement; the paint step consults it only when a pass
// flags overflow.
type Clip uint8

const (
	ClipNone     Clip = iota // Paint overflow unclipped
	ClipHardEdge             // Clip to container bounds
	ClipAntiAlias            // Clip to container bounds with smoothed edges
)

func (c Clip) String() string {
	switch c {
	case ClipNone:
		return "none"
	case ClipHardEdge:
		return "hard-edge"
	case ClipAntiAlias:
		return "anti-alias"
	default:
		panic("unreachable")
	}
}

// Strategy selects how fit tests measure children.
type Strategy uint8

const (
	StrategyLayout        Strategy = iota // Dry layout under a cross-capped constraint
	StrategyIntrinsic                     // Intrinsic max extents, cheaper but less exact
	StrategyPreferPrimary                 // Skip fit tests, always use the primary axis
)

func (s Strategy) String() string {
	switch s {
	case StrategyLayout:
		return "layout"
	case StrategyIntrinsic:
		return "intrinsic"
	case StrategyPreferPrimary:
		return "prefer-primary"
	default:
		panic("unreachable")
	}
}
