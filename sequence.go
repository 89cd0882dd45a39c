package pathanim

import (
	"context"
	"time"
)

// Sequence chains animation steps. It keeps a running delay: each step
// starts after the nominal end of every step added before it, plus the
// step's own Delay.
//
// Steps are scheduled as soon as they are added. A Sequence is bound to one
// Controller.Sequence or Parallel.Sequence call and is not reused.
type Sequence struct {
	target animator
	delay  time.Duration
	tasks  []*task
}

func newSequence(target animator) *Sequence {
	return &Sequence{target: target}
}

// Elapsed returns the delay the next step would start at.
func (s *Sequence) Elapsed() time.Duration { return s.delay }

// Pause reserves d of idle time before the next step.
func (s *Sequence) Pause(d time.Duration) {
	s.delay += max(d, 0)
}

// AnimatePath appends an animation of path index.
func (s *Sequence) AnimatePath(index int, opts ...Timing) {
	s.add(step{kind: stepPaths, indices: []int{index}, timing: resolve(pathTiming, opts)})
}

// AnimatePathsTogether appends an animation of every path at once.
func (s *Sequence) AnimatePathsTogether(opts ...Timing) {
	s.add(step{kind: stepPaths, indices: allIndices(s.target.pathCount()), timing: resolve(pathTiming, opts)})
}

// AnimatePathsStaggered appends a staggered group over indices. The group
// reserves len(indices) * (duration + stagger).
func (s *Sequence) AnimatePathsStaggered(indices []int, opts ...Timing) {
	s.add(step{kind: stepStaggered, indices: cloneIndices(indices), timing: resolve(pathTiming, opts)})
}

// AnimateAllPathsStaggered appends a staggered group over every path.
func (s *Sequence) AnimateAllPathsStaggered(opts ...Timing) {
	s.add(step{kind: stepStaggered, indices: allIndices(s.target.pathCount()), timing: resolve(pathTiming, opts)})
}

// AnimateFill appends the fill fade-in.
func (s *Sequence) AnimateFill(opts ...Timing) {
	s.add(step{kind: stepFill, timing: resolve(fillTiming, opts)})
}

// add forwards st with its start shifted by the running delay, then
// advances the running delay past it.
func (s *Sequence) add(st step) {
	explicit := st.delay
	st.delay = s.delay + explicit
	s.tasks = append(s.tasks, s.target.schedule(st)...)
	s.delay += st.length() + explicit
}

// wait blocks until every task this sequence scheduled has returned.
func (s *Sequence) wait(ctx context.Context) error {
	return waitTasks(ctx, s.tasks)
}
