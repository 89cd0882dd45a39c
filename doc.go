// Package pathanim drives per-path drawing progress for vector path animations.
//
// # Overview
//
// A [Controller] owns one progress value in [0, 1] per path plus a fill
// opacity value. Animate calls return immediately: each one spawns a
// tracked goroutine that waits for its start delay and then interpolates the
// value to 1.0 frame by frame. A renderer reads the current values on its own
// cadence and draws each path partially revealed (see the drawing package).
//
// # Quick Start
//
//	c := pathanim.New(3)
//	defer c.Close()
//
//	// Outline 0, then outline 1, then fade in fills.
//	c.Sequence(func(s *pathanim.Sequence) {
//	    s.AnimatePath(0, pathanim.Duration(800*time.Millisecond))
//	    s.AnimatePath(1)
//	    s.AnimateFill()
//	})
//
// # Composition
//
// [Sequence] accumulates a delay as steps are added so every step starts
// after the nominal end of the previous one. [Parallel] collects several
// sequences and launches them together as children of one umbrella task.
// Staggered steps start each path a fixed interval after the previous one.
//
// # Cancellation
//
// [Controller.StopAll] cancels every tracked task. Cancellation is
// cooperative: a task stops at its next frame or timer and leaves its value
// wherever it reached. [Controller.ResetAll] and [Controller.CompleteAll]
// stop everything and then snap values to a known state.
//
// # Defaults
//
// Path animations last [DefaultDuration], staggered groups use
// [DefaultStagger] between starts, and fills last [DefaultFillDuration].
// Delays default to zero.
package pathanim
