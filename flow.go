// flow.go re-exports layout types from internal/flow.
// Any changes to internal/flow types must be mirrored here.
package axisflow

import "github.com/grindlemire/axisflow/internal/flow"

// Axis identifies the direction children are laid out along.
type Axis = flow.Axis

const (
	Horizontal = flow.Horizontal
	Vertical   = flow.Vertical
)

// Justify specifies how children are distributed along the main axis.
type Justify = flow.Justify

const (
	JustifyStart        = flow.JustifyStart
	JustifyEnd          = flow.JustifyEnd
	JustifyCenter       = flow.JustifyCenter
	JustifySpaceBetween = flow.JustifySpaceBetween
	JustifySpaceAround  = flow.JustifySpaceAround
	JustifySpaceEvenly  = flow.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = flow.Align

const (
	AlignStart  = flow.AlignStart
	AlignEnd    = flow.AlignEnd
	AlignCenter = flow.AlignCenter
)

// TextDirection specifies horizontal reading order.
type TextDirection = flow.TextDirection

const (
	LTR = flow.LTR
	RTL = flow.RTL
)

// VerticalDirection specifies which way vertical stacking proceeds.
type VerticalDirection = flow.VerticalDirection

const (
	Down = flow.Down
	Up   = flow.Up
)

// Clip selects how overflowing content is treated at paint time.
type Clip = flow.Clip

const (
	ClipNone      = flow.ClipNone
	ClipHardEdge  = flow.ClipHardEdge
	ClipAntiAlias = flow.ClipAntiAlias
)

// Strategy selects how fit tests measure children.
type Strategy = flow.Strategy

const (
	StrategyLayout        = flow.StrategyLayout
	StrategyIntrinsic     = flow.StrategyIntrinsic
	StrategyPreferPrimary = flow.StrategyPreferPrimary
)

// Size holds a width/height pair in layout units.
type Size = flow.Size

// Point is an (X, Y) offset from the container origin.
type Point = flow.Point

// Constraints is a (min, max) size interval per axis.
type Constraints = flow.Constraints

// Options carries the full configuration for a layout engine.
type Options = flow.Options

// Result is the outcome of one layout pass.
type Result = flow.Result

// Item is the child box abstraction containers lay out.
type Item = flow.Item

// Engine decides the layout axis and arranges children. Most hosts use
// Container instead; Engine serves custom child trees.
type Engine = flow.Engine

// Inf is the maximum extent of an unbounded constraint axis.
var Inf = flow.Inf

// Tight returns constraints that admit exactly sz.
func Tight(sz Size) Constraints {
	return flow.Tight(sz)
}

// Loose returns constraints with no minimum and the given maxima.
// Pass Inf for an unbounded axis.
func Loose(maxWidth, maxHeight float64) Constraints {
	return flow.Loose(maxWidth, maxHeight)
}

// Unbounded returns constraints with no bound on either axis.
func Unbounded() Constraints {
	return flow.Unbounded()
}

// DefaultOptions returns the configuration used when nothing is set:
// horizontal primary, zero spacing, start alignment, LTR, downward
// stacking, no clip, layout-based fit tests.
func DefaultOptions() Options {
	return flow.DefaultOptions()
}

// NewEngine returns an engine with the given configuration, or an
// error when the configuration fails validation.
func NewEngine(opts Options) (*Engine, error) {
	return flow.NewEngine(opts)
}
