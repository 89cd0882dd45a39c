package pathanim

import (
	"context"
	"sync"
)

// task is a handle to one in-flight scheduled animation.
type task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// taskGroup tracks running tasks for bulk cancellation.
//
// A task is added to the set when spawned and removed when its function
// returns, so len reports exactly the active tasks. cancelAll empties the
// set at once; goroutines still unwinding remove themselves as a no-op.
type taskGroup struct {
	mu    sync.Mutex
	tasks map[*task]struct{}

	// active counts running goroutines, including cancelled ones that have
	// not returned yet. idle is closed whenever active is zero.
	active int
	idle   chan struct{}
}

func newTaskGroup() *taskGroup {
	idle := make(chan struct{})
	close(idle)
	return &taskGroup{
		tasks: make(map[*task]struct{}),
		idle:  idle,
	}
}

// spawn runs fn on a new goroutine with a context derived from parent.
// It returns immediately.
func (g *taskGroup) spawn(parent context.Context, fn func(ctx context.Context)) *task {
	ctx, cancel := context.WithCancel(parent)
	t := &task{cancel: cancel, done: make(chan struct{})}

	g.mu.Lock()
	g.tasks[t] = struct{}{}
	if g.active == 0 {
		g.idle = make(chan struct{})
	}
	g.active++
	g.mu.Unlock()

	go func() {
		defer g.finish(t)
		fn(ctx)
	}()
	return t
}

func (g *taskGroup) finish(t *task) {
	t.cancel()

	g.mu.Lock()
	delete(g.tasks, t)
	g.active--
	if g.active == 0 {
		close(g.idle)
	}
	g.mu.Unlock()

	close(t.done)
}

// cancelAll requests cancellation of every tracked task and clears the set.
func (g *taskGroup) cancelAll() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.tasks)
	for t := range g.tasks {
		t.cancel()
	}
	clear(g.tasks)
	return n
}

func (g *taskGroup) len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.tasks)
}

// wait blocks until no goroutine is running or ctx is done.
func (g *taskGroup) wait(ctx context.Context) error {
	g.mu.Lock()
	idle := g.idle
	g.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// waitTasks blocks until every task in ts has returned or ctx is done.
func waitTasks(ctx context.Context, ts []*task) error {
	for _, t := range ts {
		select {
		case <-t.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
