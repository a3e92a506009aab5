package coalesce

import "log/slog"

// Coalescer collapses bursts of mutations into single refresh cycles.
//
// Inside a Begin/End batch mutations only mark the coalescer dirty and the
// outermost End runs the refresh synchronously if anything was marked. Outside
// a batch the first mutation posts one deferred refresh to the Scheduler;
// further mutations before it fires are absorbed.
type Coalescer struct {
	sched   Scheduler
	refresh func()

	depth    int
	dirty    bool
	pending  bool
	enabled  bool
	closed   bool
	flushing bool
	rerun    bool
	cycles   uint64
}

// New creates a coalescer that calls refresh once per cycle
func New(sched Scheduler, refresh func()) *Coalescer {
	if sched == nil {
		sched = Immediate{}
	}
	return &Coalescer{
		sched:   sched,
		refresh: refresh,
		enabled: true,
	}
}

// Begin opens a batch
func (c *Coalescer) Begin() {
	c.depth++
}

// End closes a batch. Closing the outermost batch runs exactly one refresh
// when a mutation was recorded inside it; calls without a matching Begin are
// ignored.
func (c *Coalescer) End() {
	if c.depth == 0 {
		slog.Debug("EndUpdate without matching BeginUpdate ignored")
		return
	}
	c.depth--
	if c.depth > 0 {
		return
	}
	if !c.dirty {
		c.pending = false
		return
	}
	c.flush()
}

// Schedule records a mutation
func (c *Coalescer) Schedule() {
	if c.closed {
		return
	}
	c.dirty = true
	if c.depth > 0 {
		return
	}
	if !c.enabled {
		c.flush()
		return
	}
	if c.pending {
		return
	}
	c.pending = true
	c.sched.Post(c.run)
}

// run is the posted task
func (c *Coalescer) run() {
	if c.closed || !c.pending {
		return
	}
	if c.depth > 0 {
		// An open batch will flush when it ends
		c.pending = false
		return
	}
	c.flush()
}

func (c *Coalescer) flush() {
	if c.closed {
		return
	}
	c.pending = false
	if c.flushing {
		c.rerun = true
		return
	}
	c.flushing = true
	defer func() { c.flushing = false }()
	for {
		c.rerun = false
		c.dirty = false
		c.cycles++
		c.refresh()
		if !c.rerun {
			return
		}
	}
}

// Depth returns the current batch depth
func (c *Coalescer) Depth() int {
	return c.depth
}

// Dirty reports whether a mutation is waiting for a refresh
func (c *Coalescer) Dirty() bool {
	return c.dirty
}

// Pending reports whether a deferred refresh is queued
func (c *Coalescer) Pending() bool {
	return c.pending
}

// Cycles returns how many refresh cycles have run
func (c *Coalescer) Cycles() uint64 {
	return c.cycles
}

// SetEnabled switches deferral on or off. When off, mutations outside a batch
// refresh immediately.
func (c *Coalescer) SetEnabled(enabled bool) {
	c.enabled = enabled
	if !enabled && c.pending && c.depth == 0 {
		c.flush()
	}
}

// Enabled reports whether deferral is on
func (c *Coalescer) Enabled() bool {
	return c.enabled
}

// Close turns every queued and future refresh into a no-op
func (c *Coalescer) Close() {
	c.closed = true
	c.dirty = false
	c.pending = false
}
