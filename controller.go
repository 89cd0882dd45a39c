package pathanim

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// FillTarget identifies the fill opacity value in update callbacks.
const FillTarget = -1

// Controller owns the progress of a fixed set of paths and the fill
// opacity, and is the single point through which their animations are
// scheduled, tracked and cancelled.
//
// Animate methods return immediately. Every scheduled animation runs on its
// own goroutine and is tracked until it finishes or is cancelled.
//
// Path indices must satisfy 0 <= index < PathCount(); out-of-range indices
// panic. Controller methods are safe for concurrent use.
type Controller struct {
	paths []*Value
	fill  *Value

	tasks  *taskGroup
	opts   options
	ctx    context.Context
	cancel context.CancelFunc
	closed atomic.Bool
}

// New creates a controller for pathCount paths. All progress values and the
// fill opacity start at 0.
func New(pathCount int, opts ...Option) *Controller {
	if pathCount < 0 {
		panic(fmt.Sprintf("pathanim: negative path count %d", pathCount))
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(o.parent)
	c := &Controller{
		paths:  make([]*Value, pathCount),
		fill:   new(Value),
		tasks:  newTaskGroup(),
		opts:   o,
		ctx:    ctx,
		cancel: cancel,
	}
	for i := range c.paths {
		c.paths[i] = new(Value)
		if o.onUpdate != nil {
			c.paths[i].Observe(func(v float64) { o.onUpdate(i, v) })
		}
	}
	if o.onUpdate != nil {
		c.fill.Observe(func(v float64) { o.onUpdate(FillTarget, v) })
	}
	return c
}

// PathCount returns the number of paths the controller animates.
func (c *Controller) PathCount() int { return len(c.paths) }

// Progress returns the current progress of path index.
func (c *Controller) Progress(index int) float64 {
	c.checkIndex(index)
	return c.paths[index].Load()
}

// Fill returns the current fill opacity.
func (c *Controller) Fill() float64 { return c.fill.Load() }

// Snapshot returns a copy of every path's current progress.
func (c *Controller) Snapshot() []float64 {
	out := make([]float64, len(c.paths))
	for i, v := range c.paths {
		out[i] = v.Load()
	}
	return out
}

// Running returns the number of tracked tasks that are still active.
func (c *Controller) Running() int { return c.tasks.len() }

// Wait blocks until every goroutine the controller started has returned,
// or ctx is done.
func (c *Controller) Wait(ctx context.Context) error { return c.tasks.wait(ctx) }

// AnimatePath animates path index to 1.0.
// Defaults: DefaultDuration, no delay.
func (c *Controller) AnimatePath(index int, opts ...Timing) {
	c.schedule(step{kind: stepPaths, indices: []int{index}, timing: resolve(pathTiming, opts)})
}

// AnimatePaths animates each listed path to 1.0 with the same timing. Each
// path runs as its own task.
func (c *Controller) AnimatePaths(indices []int, opts ...Timing) {
	c.schedule(step{kind: stepPaths, indices: cloneIndices(indices), timing: resolve(pathTiming, opts)})
}

// AnimatePathsTogether animates every path at once.
func (c *Controller) AnimatePathsTogether(opts ...Timing) {
	c.AnimatePaths(allIndices(len(c.paths)), opts...)
}

// AnimatePathsStaggered animates the listed paths in order, starting the
// path at position i after delay + i*stagger. Defaults: DefaultDuration,
// DefaultStagger, no delay.
func (c *Controller) AnimatePathsStaggered(indices []int, opts ...Timing) {
	c.schedule(step{kind: stepStaggered, indices: cloneIndices(indices), timing: resolve(pathTiming, opts)})
}

// AnimateAllPathsStaggered staggers every path in index order.
func (c *Controller) AnimateAllPathsStaggered(opts ...Timing) {
	c.AnimatePathsStaggered(allIndices(len(c.paths)), opts...)
}

// AnimateFill fades the fill opacity in to 1.0.
// Defaults: DefaultFillDuration, no delay.
func (c *Controller) AnimateFill(opts ...Timing) {
	c.schedule(step{kind: stepFill, timing: resolve(fillTiming, opts)})
}

// StopAll cancels every tracked task and clears the tracked set. Progress
// values keep whatever they reached.
func (c *Controller) StopAll() {
	n := c.tasks.cancelAll()
	Logger().Debug("pathanim: stop all", "cancelled", n)
}

// ResetAll stops every task and sets all progress values and the fill
// opacity to 0.
func (c *Controller) ResetAll() {
	c.StopAll()
	for _, v := range c.paths {
		v.Set(0)
	}
	c.fill.Set(0)
}

// CompleteAll stops every task and sets all progress values to 1. The fill
// opacity is left as is.
func (c *Controller) CompleteAll() {
	c.StopAll()
	for _, v := range c.paths {
		v.Set(1)
	}
}

// Sequence runs define against a fresh Sequence. Steps are scheduled as
// define adds them, each offset to start after the previous ones. It
// returns the nominal length of the sequence.
func (c *Controller) Sequence(define func(s *Sequence)) time.Duration {
	s := newSequence(c)
	define(s)
	return s.Elapsed()
}

// Parallel runs define against a fresh Parallel and then launches every
// sequence it registered as concurrent children of one umbrella task.
// The umbrella task is tracked before Parallel returns; the children
// schedule their path tasks asynchronously, so use the returned Group to
// wait for the whole group.
func (c *Controller) Parallel(define func(p *Parallel)) *Group {
	p := &Parallel{c: c}
	define(p)
	return p.launch()
}

// Close stops every task and detaches the controller from its context.
// Animate calls after Close are ignored.
func (c *Controller) Close() {
	if c.closed.Swap(true) {
		return
	}
	c.StopAll()
	c.cancel()
}

func (c *Controller) pathCount() int { return len(c.paths) }

func (c *Controller) schedule(s step) []*task {
	return c.scheduleIn(c.ctx, s)
}

// scheduleIn validates s and spawns one task per animated value under
// parent. Indices are checked before anything is spawned.
func (c *Controller) scheduleIn(parent context.Context, s step) []*task {
	if s.kind != stepFill {
		for _, i := range s.indices {
			c.checkIndex(i)
		}
	}
	if c.closed.Load() {
		Logger().Warn("pathanim: animate on closed controller")
		return nil
	}

	starts := s.starts()
	if s.kind == stepFill {
		return []*task{c.run(parent, c.fill, FillTarget, s.duration, starts[0])}
	}

	tasks := make([]*task, 0, len(s.indices))
	for pos, i := range s.indices {
		tasks = append(tasks, c.run(parent, c.paths[i], i, s.duration, starts[pos]))
	}
	return tasks
}

// run spawns a tracked task that waits delay and then animates v to 1.
func (c *Controller) run(parent context.Context, v *Value, target int, duration, delay time.Duration) *task {
	Logger().Debug("pathanim: schedule", "target", target, "duration", duration, "delay", delay)

	return c.tasks.spawn(parent, func(ctx context.Context) {
		if !sleep(ctx, delay) {
			return
		}
		// Cancellation is an expected outcome, not a failure.
		_ = v.AnimateTo(ctx, 1, duration, c.opts.frame, c.opts.easing)
	})
}

func (c *Controller) checkIndex(i int) {
	checkIndex(i, len(c.paths))
}

func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("pathanim: path index %d out of range [0, %d)", i, n))
	}
}

// sleep waits for d and reports whether ctx is still live.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func cloneIndices(indices []int) []int {
	return append([]int(nil), indices...)
}
