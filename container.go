package axisflow

import (
	"fmt"
	"strings"

	"github.com/grindlemire/axisflow/internal/flow"
	"github.com/grindlemire/axisflow/pkg/debug"
)

var _ Item = (*Container)(nil)

// Container is the adaptive container node: a layout engine plus the
// ordered children it arranges. Every pass commits exactly one axis
// and the whole arrangement follows it; there is no partial wrapping
// state. All methods must run on a single goroutine.
type Container struct {
	engine   *flow.Engine
	opts     Options
	children []Item

	// explicitDir marks that WithTextDirection pinned the direction,
	// opting this container out of the package ambient.
	explicitDir  bool
	onAxisChange func(Axis)
	pipeline     *Pipeline

	offset Point
	last   Result
}

// New creates a Container from the given options. It fails on the
// first invalid option.
func New(opts ...Option) (*Container, error) {
	c := &Container{opts: DefaultOptions()}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	engine, err := flow.NewEngine(c.opts)
	if err != nil {
		return nil, err
	}
	c.engine = engine
	return c, nil
}

// Update applies opts atomically: either every option takes effect and
// the engine adopts the rebuilt configuration, or the container is
// left exactly as it was. The cached axis decision survives unless the
// primary axis changes or Maintain transitions off.
func (c *Container) Update(opts ...Option) error {
	prev := *c
	for _, opt := range opts {
		if err := opt(c); err != nil {
			*c = prev
			return err
		}
	}
	if err := c.engine.SetOptions(c.opts); err != nil {
		*c = prev
		return err
	}
	if c.pipeline != nil {
		c.attach(c.pipeline)
	}
	return nil
}

// Options returns the configuration the next pass will use, before
// ambient direction resolution.
func (c *Container) Options() Options {
	return c.opts
}

// --- Child management ---

// Append adds items to the end of the child list.
func (c *Container) Append(items ...Item) {
	for _, it := range items {
		c.adopt(it)
	}
	c.children = append(c.children, items...)
}

// Insert places item at index i among the children. The index is
// clamped to the valid range, so Insert(0, x) prepends and any
// i >= Len() appends.
func (c *Container) Insert(i int, item Item) {
	if i < 0 {
		i = 0
	}
	if i > len(c.children) {
		i = len(c.children)
	}
	c.adopt(item)
	c.children = append(c.children, nil)
	copy(c.children[i+1:], c.children[i:])
	c.children[i] = item
}

// RemoveAt removes the child at index i, preserving the order of the
// rest. Returns false when i is out of range.
func (c *Container) RemoveAt(i int) bool {
	if i < 0 || i >= len(c.children) {
		return false
	}
	if child, ok := c.children[i].(*Container); ok {
		child.detach()
	}
	c.children = append(c.children[:i], c.children[i+1:]...)
	return true
}

// Len returns the number of children.
func (c *Container) Len() int {
	return len(c.children)
}

// At returns the child at index i, or nil when i is out of range.
func (c *Container) At(i int) Item {
	if i < 0 || i >= len(c.children) {
		return nil
	}
	return c.children[i]
}

// Children returns the child list. Callers must not mutate it.
func (c *Container) Children() []Item {
	return c.children
}

// adopt wires item into this container's pipeline when it is itself a
// container tree.
func (c *Container) adopt(item Item) {
	if child, ok := item.(*Container); ok && c.pipeline != nil {
		child.attach(c.pipeline)
	}
}

// attach wires this container and every nested one to p.
func (c *Container) attach(p *Pipeline) {
	c.pipeline = p
	for _, it := range c.children {
		if child, ok := it.(*Container); ok {
			child.attach(p)
		}
	}
}

// detach disconnects this container and every nested one from its
// pipeline.
func (c *Container) detach() {
	c.pipeline = nil
	for _, it := range c.children {
		if child, ok := it.(*Container); ok {
			child.detach()
		}
	}
}

// --- Layout pass ---

// Layout runs one full pass over the children and commits the result.
// A container that never pinned a text direction resolves the package
// ambient for this pass. The axis-change callback fires after the
// engine pass completes, through the pipeline when attached, so a
// handler never observes a half-arranged ancestor tree.
func (c *Container) Layout(cs Constraints) Size {
	// Already validated by New or Update; only the direction varies.
	_ = c.engine.SetOptions(c.effectiveOptions())
	res := c.engine.Layout(cs, c.children)
	c.last = res
	if res.Changed {
		debug.Log("axis changed to %s (%gx%g, overflow=%t)", res.Axis, res.Size.Width, res.Size.Height, res.Overflow)
		if c.onAxisChange != nil {
			c.deliverAxisChange(res.Axis)
		}
	}
	return res.Size
}

// effectiveOptions resolves the ambient text direction for this pass.
func (c *Container) effectiveOptions() Options {
	opts := c.opts
	if !c.explicitDir {
		opts.TextDirection = AmbientDirection()
	}
	return opts
}

// deliverAxisChange hands the callback to the pipeline when attached.
// A standalone container delivers synchronously; its own pass has
// already completed.
func (c *Container) deliverAxisChange(axis Axis) {
	fn := c.onAxisChange
	if c.pipeline != nil {
		c.pipeline.Defer(func() { fn(axis) })
		return
	}
	fn(axis)
}

// DryLayout reports the size Layout would commit under cs without
// mutating the container, the engine, or any child.
func (c *Container) DryLayout(cs Constraints) Size {
	return c.engine.DryLayout(cs, c.children)
}

// Measure implements Item so containers nest inside one another.
// Direction only affects offsets, never sizes, so no ambient
// resolution happens on this path.
func (c *Container) Measure(cs Constraints) Size {
	return c.DryLayout(cs)
}

// MinIntrinsicWidth returns the smallest width at which the children
// still arrange correctly given the height, which may be Inf.
func (c *Container) MinIntrinsicWidth(height float64) float64 {
	return c.engine.MinIntrinsicWidth(c.children, height)
}

// MaxIntrinsicWidth returns the width beyond which growing no longer
// changes the arrangement given the height.
func (c *Container) MaxIntrinsicWidth(height float64) float64 {
	return c.engine.MaxIntrinsicWidth(c.children, height)
}

// MinIntrinsicHeight is the height analog of MinIntrinsicWidth.
func (c *Container) MinIntrinsicHeight(width float64) float64 {
	return c.engine.MinIntrinsicHeight(c.children, width)
}

// MaxIntrinsicHeight is the height analog of MaxIntrinsicWidth.
func (c *Container) MaxIntrinsicHeight(width float64) float64 {
	return c.engine.MaxIntrinsicHeight(c.children, width)
}

// SetOffset stores the container's position relative to its parent.
func (c *Container) SetOffset(p Point) {
	c.offset = p
}

// Offset returns the last stored position.
func (c *Container) Offset() Point {
	return c.offset
}

// Size returns the size committed by the last pass, or the zero Size
// before any.
func (c *Container) Size() Size {
	return c.last.Size
}

// Axis returns the committed axis and whether any pass committed one.
func (c *Container) Axis() (Axis, bool) {
	return c.engine.Axis()
}

// Overflow reports whether the last pass flagged overflow. The Clip
// option tells paint steps what to do about it.
func (c *Container) Overflow() bool {
	return c.last.Overflow
}

// String dumps the last arrangement, one line per node.
func (c *Container) String() string {
	var sb strings.Builder
	c.writeTree(&sb, "")
	return strings.TrimSuffix(sb.String(), "\n")
}

func (c *Container) writeTree(sb *strings.Builder, indent string) {
	state := "unresolved"
	if axis, ok := c.engine.Axis(); ok {
		state = axis.String()
	}
	fmt.Fprintf(sb, "%scontainer[%s] %gx%g @(%g,%g)", indent, state, c.last.Size.Width, c.last.Size.Height, c.offset.X, c.offset.Y)
	if c.last.Overflow {
		sb.WriteString(" overflow")
	}
	sb.WriteString("\n")
	for _, it := range c.children {
		if child, ok := it.(*Container); ok {
			child.writeTree(sb, indent+"  ")
			continue
		}
		fmt.Fprintf(sb, "%s  %v\n", indent, it)
	}
}
