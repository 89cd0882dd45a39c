package pathanim

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitGroup(t *testing.T, g *Group) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return g.Wait(ctx)
}

func TestParallelRunsSequencesTogether(t *testing.T) {
	var mu sync.Mutex
	finished := map[int]time.Time{}
	c := newTestController(t, 2, WithUpdateFunc(func(target int, v float64) {
		if v == 1 {
			mu.Lock()
			finished[target] = time.Now()
			mu.Unlock()
		}
	}))

	g := c.Parallel(func(p *Parallel) {
		p.Sequence(func(s *Sequence) { s.AnimatePath(0, Duration(ms(100))) })
		p.Sequence(func(s *Sequence) { s.AnimatePath(1, Duration(ms(100))) })
	})
	require.NoError(t, waitGroup(t, g))

	assert.Equal(t, []float64{1, 1}, c.Snapshot())
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, finished, 2)
	gap := finished[0].Sub(finished[1]).Abs()
	assert.Less(t, gap, ms(80), "parallel sequences were serialized")
}

func TestParallelSequencesKeepTheirOwnDelay(t *testing.T) {
	c := newTestController(t, 4)

	var longest time.Duration
	g := c.Parallel(func(p *Parallel) {
		p.Sequence(func(s *Sequence) {
			s.AnimatePath(0, Duration(ms(20)))
			s.AnimatePath(1, Duration(ms(20)))
		})
		p.Sequence(func(s *Sequence) {
			s.AnimatePath(2, Duration(ms(30)))
			s.AnimatePath(3, Duration(ms(30)), Delay(ms(5)))
		})
		longest = p.Duration()
	})
	assert.Equal(t, ms(65), longest)

	require.NoError(t, waitGroup(t, g))
	assert.Equal(t, []float64{1, 1, 1, 1}, c.Snapshot())
	waitIdle(t, c)
	assert.Equal(t, 0, c.Running())
}

func TestParallelEmpty(t *testing.T) {
	c := newTestController(t, 1)
	g := c.Parallel(func(*Parallel) {})
	assert.NoError(t, waitGroup(t, g))
}

func TestParallelPlansBeforeLaunch(t *testing.T) {
	c := newTestController(t, 2)

	var runs atomic.Int32
	assert.Panics(t, func() {
		c.Parallel(func(p *Parallel) {
			p.Sequence(func(s *Sequence) {
				runs.Add(1)
				s.AnimatePath(0)
				s.AnimatePath(2)
			})
		})
	})
	assert.Equal(t, int32(1), runs.Load())
	assert.Equal(t, 0, c.Running(), "a rejected group launched tasks")
}

func TestParallelPanicCancelsSiblings(t *testing.T) {
	c := newTestController(t, 2)

	var runs atomic.Int32
	g := c.Parallel(func(p *Parallel) {
		p.Sequence(func(s *Sequence) {
			s.AnimatePath(0, Duration(time.Hour))
		})
		p.Sequence(func(s *Sequence) {
			// The planning pass runs first; fail only once launched.
			if runs.Add(1) == 2 {
				time.Sleep(ms(10))
				panic("boom")
			}
			s.AnimatePath(1, Duration(ms(10)))
		})
	})

	err := waitGroup(t, g)
	require.ErrorIs(t, err, ErrSequencePanicked)
	assert.Contains(t, err.Error(), "boom")

	waitIdle(t, c)
	assert.Equal(t, 0, c.Running())
	assert.Less(t, c.Progress(0), 1.0, "sibling was not cancelled")
}

func TestStopAllCancelsParallel(t *testing.T) {
	c := newTestController(t, 2)
	g := c.Parallel(func(p *Parallel) {
		p.Sequence(func(s *Sequence) { s.AnimatePath(0, Duration(time.Hour)) })
		p.Sequence(func(s *Sequence) { s.AnimatePath(1, Duration(time.Hour)) })
	})

	// The umbrella is tracked at once; path tasks follow from the children.
	assert.GreaterOrEqual(t, c.Running(), 1)
	require.Eventually(t, func() bool { return c.Running() == 3 }, time.Second, time.Millisecond)
	c.StopAll()
	assert.Equal(t, 0, c.Running())
	assert.NoError(t, waitGroup(t, g), "cancellation is not an error")
}

func TestParallelOnClosedController(t *testing.T) {
	c := New(1)
	c.Close()

	g := c.Parallel(func(p *Parallel) {
		p.Sequence(func(s *Sequence) { s.AnimatePath(0) })
	})
	assert.NoError(t, waitGroup(t, g))
	assert.Equal(t, 0.0, c.Progress(0))
}
