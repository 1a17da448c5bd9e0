package axisflow

// Pipeline drives layout passes over a container tree and schedules
// work that must wait until the in-flight pass completes. Containers
// route their axis-change callbacks through it, so a handler can
// reconfigure any node in the tree without re-entering the pass that
// produced the notification.
type Pipeline struct {
	root     *Container
	deferred []func()
}

// NewPipeline attaches every container in root's tree to a new
// pipeline and returns it. Containers added to the tree later attach
// on insertion.
func NewPipeline(root *Container) *Pipeline {
	p := &Pipeline{root: root}
	root.attach(p)
	return p
}

// Root returns the tree's root container.
func (p *Pipeline) Root() *Container {
	return p.root
}

// Defer enqueues fn to run after the current pass. Outside a pass, the
// next FlushLayout drains it before returning.
func (p *Pipeline) Defer(fn func()) {
	p.deferred = append(p.deferred, fn)
}

// FlushLayout runs one synchronous pass over the whole tree, then
// drains the deferred queue in FIFO order, including work the handlers
// themselves defer. Handlers must not call FlushLayout; they
// reconfigure and wait for the driver's next flush.
func (p *Pipeline) FlushLayout(cs Constraints) Size {
	size := p.root.Layout(cs)
	for len(p.deferred) > 0 {
		fn := p.deferred[0]
		p.deferred = p.deferred[1:]
		fn()
	}
	return size
}
