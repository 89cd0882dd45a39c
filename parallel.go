package pathanim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrSequencePanicked is returned by Group.Wait when a sequence of a
// parallel group panicked while running.
var ErrSequencePanicked = errors.New("pathanim: parallel sequence panicked")

// Parallel collects sequences that run side by side. It is populated inside
// Controller.Parallel and launched when that call's function returns.
type Parallel struct {
	c       *Controller
	defs    []func(*Sequence)
	longest time.Duration
}

// Sequence registers a sequence definition. define runs once right away
// against a planner, which checks every path index and measures the
// sequence without scheduling anything; at launch it runs again inside its
// own child task, where its steps are scheduled for real. Path tasks are
// therefore issued from the child goroutines shortly after
// Controller.Parallel returns, and Running may briefly count only the
// umbrella task. define must issue the same steps on both runs.
func (p *Parallel) Sequence(define func(s *Sequence)) {
	plan := newSequence(planner{n: p.c.PathCount()})
	define(plan)
	p.longest = max(p.longest, plan.Elapsed())
	p.defs = append(p.defs, define)
}

// Duration returns the nominal length of the longest registered sequence.
func (p *Parallel) Duration() time.Duration { return p.longest }

// launch starts one tracked umbrella task with one child per registered
// sequence. A child that panics cancels its siblings.
func (p *Parallel) launch() *Group {
	g := &Group{done: make(chan struct{})}
	if p.c.closed.Load() {
		Logger().Warn("pathanim: parallel on closed controller")
		close(g.done)
		return g
	}

	defs := p.defs
	c := p.c
	c.tasks.spawn(c.ctx, func(ctx context.Context) {
		defer close(g.done)

		eg, egCtx := errgroup.WithContext(ctx)
		for i, define := range defs {
			eg.Go(func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = fmt.Errorf("%w: sequence %d: %v", ErrSequencePanicked, i, r)
					}
				}()

				s := newSequence(scopedAnimator{c: c, ctx: egCtx})
				define(s)
				// Cancellation ends the child quietly.
				_ = s.wait(egCtx)
				return nil
			})
		}

		if err := eg.Wait(); err != nil {
			Logger().Error("pathanim: parallel group failed", "error", err)
			g.err = err
		}
	})
	return g
}

// Group is the handle of a launched parallel group.
type Group struct {
	done chan struct{}
	err  error
}

// Done is closed once every child sequence has finished or been cancelled.
func (g *Group) Done() <-chan struct{} { return g.done }

// Wait blocks until the group finishes or ctx is done. It returns the
// first child failure; a cancelled group returns nil.
func (g *Group) Wait(ctx context.Context) error {
	select {
	case <-g.done:
		return g.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// scopedAnimator schedules on a controller under a narrower context, so the
// tasks of a parallel child die with the child.
type scopedAnimator struct {
	c   *Controller
	ctx context.Context
}

func (a scopedAnimator) pathCount() int { return a.c.pathCount() }

func (a scopedAnimator) schedule(s step) []*task { return a.c.scheduleIn(a.ctx, s) }

// planner checks steps without scheduling them.
type planner struct {
	n int
}

func (p planner) pathCount() int { return p.n }

func (p planner) schedule(s step) []*task {
	if s.kind != stepFill {
		for _, i := range s.indices {
			checkIndex(i, p.n)
		}
	}
	return nil
}
