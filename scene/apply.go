// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"time"

	"github.com/gogpu/pathanim"
)

// Apply schedules the scene's animations on c and returns their nominal
// length. c must animate exactly len(s.Paths) paths.
//
// In every mode the optional fill fade starts once all paths are drawn.
func (s *Scene) Apply(c *pathanim.Controller) (time.Duration, error) {
	n := len(s.Paths)
	if c.PathCount() != n {
		return 0, fmt.Errorf("%w: controller has %d, scene has %d", ErrPathCount, c.PathCount(), n)
	}

	sc := s.Schedule
	dur := pathanim.Duration(time.Duration(sc.Duration))
	delay := pathanim.Delay(time.Duration(sc.Delay))
	stagger := pathanim.Stagger(time.Duration(sc.Stagger))
	fill := pathanim.Duration(time.Duration(sc.FillDuration))

	pathanim.Logger().Debug("scene: apply", "mode", sc.Mode, "paths", n, "fill", sc.Fill)

	if sc.Mode == ModeParallel {
		var total time.Duration
		c.Parallel(func(p *pathanim.Parallel) {
			for i := range n {
				p.Sequence(func(seq *pathanim.Sequence) {
					seq.AnimatePath(i, dur, delay)
				})
			}
			if sc.Fill {
				drawn := p.Duration()
				p.Sequence(func(seq *pathanim.Sequence) {
					seq.Pause(drawn)
					seq.AnimateFill(fill)
				})
			}
			total = p.Duration()
		})
		return total, nil
	}

	return c.Sequence(func(seq *pathanim.Sequence) {
		switch sc.Mode {
		case ModeSequence:
			for i := range n {
				seq.AnimatePath(i, dur, delay)
			}
		case ModeStaggered:
			seq.AnimateAllPathsStaggered(dur, delay, stagger)
		case ModeTogether:
			seq.AnimatePathsTogether(dur, delay)
		}
		if sc.Fill {
			seq.AnimateFill(fill)
		}
	}), nil
}
