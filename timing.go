package pathanim

import "time"

// Default timings used when a call does not override them.
const (
	// DefaultDuration is the length of a path animation.
	DefaultDuration = 1000 * time.Millisecond

	// DefaultStagger is the interval between starts in a staggered group.
	DefaultStagger = 500 * time.Millisecond

	// DefaultFillDuration is the length of the fill fade-in.
	DefaultFillDuration = 600 * time.Millisecond

	// DefaultFrameInterval is how often a running animation updates.
	DefaultFrameInterval = 16 * time.Millisecond
)

// Timing adjusts the duration, start delay or stagger interval of one
// animate call. Unset fields keep the call's defaults.
type Timing func(*timing)

type timing struct {
	duration time.Duration
	delay    time.Duration
	stagger  time.Duration
}

// Duration sets how long each animation runs.
func Duration(d time.Duration) Timing {
	return func(t *timing) { t.duration = max(d, 0) }
}

// Delay sets how long to wait before the animation starts.
func Delay(d time.Duration) Timing {
	return func(t *timing) { t.delay = max(d, 0) }
}

// Stagger sets the interval between consecutive starts of a staggered group.
func Stagger(d time.Duration) Timing {
	return func(t *timing) { t.stagger = max(d, 0) }
}

var (
	pathTiming = timing{duration: DefaultDuration, stagger: DefaultStagger}
	fillTiming = timing{duration: DefaultFillDuration}
)

func resolve(def timing, opts []Timing) timing {
	t := def
	for _, opt := range opts {
		if opt != nil {
			opt(&t)
		}
	}
	return t
}

type stepKind uint8

const (
	stepPaths stepKind = iota
	stepStaggered
	stepFill
)

// step is one scheduling request issued by a controller method or a
// sequence. delay is the absolute start delay of the request.
type step struct {
	kind    stepKind
	indices []int
	timing
}

// length is the nominal time a sequence reserves for the step, excluding
// its delay.
func (s step) length() time.Duration {
	if s.kind == stepStaggered {
		return time.Duration(len(s.indices)) * (s.duration + s.stagger)
	}
	return s.duration
}

// starts returns the absolute start delay of each animated value of s, in
// the order of s.indices. Position i of a staggered step starts i stagger
// intervals after the step's delay; there is no lead-in before position 0.
func (s step) starts() []time.Duration {
	if s.kind == stepFill {
		return []time.Duration{s.delay}
	}
	out := make([]time.Duration, len(s.indices))
	for pos := range s.indices {
		out[pos] = s.delay
		if s.kind == stepStaggered {
			out[pos] += time.Duration(pos) * s.stagger
		}
	}
	return out
}

// animator is the target of scheduling requests. The Controller schedules
// real tasks; sequences inside a parallel group schedule under the group's
// context; the planner only validates.
type animator interface {
	pathCount() int
	schedule(s step) []*task
}
