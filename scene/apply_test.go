// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"context"
	"testing"
	"time"

	"github.com/gogpu/pathanim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene(mode Mode, fill bool) *Scene {
	s := Default()
	s.Paths = []Path{{D: "M0 0 L10 0"}, {D: "M0 0 L0 10"}, {D: "M0 0 L10 10"}}
	s.Schedule = Schedule{
		Mode:         mode,
		Duration:     Duration(10 * time.Millisecond),
		Stagger:      Duration(5 * time.Millisecond),
		Fill:         fill,
		FillDuration: Duration(5 * time.Millisecond),
	}
	return s
}

func TestApply(t *testing.T) {
	tests := []struct {
		mode  Mode
		fill  bool
		delay time.Duration
		want  time.Duration
	}{
		{ModeSequence, true, 0, 35 * time.Millisecond},
		{ModeSequence, false, 5 * time.Millisecond, 45 * time.Millisecond},
		{ModeStaggered, true, 0, 50 * time.Millisecond},
		{ModeTogether, true, 0, 15 * time.Millisecond},
		{ModeParallel, false, 0, 10 * time.Millisecond},
		{ModeParallel, true, 5 * time.Millisecond, 20 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			s := testScene(tt.mode, tt.fill)
			s.Schedule.Delay = Duration(tt.delay)

			c := pathanim.New(len(s.Paths), pathanim.WithFrameInterval(time.Millisecond))
			t.Cleanup(c.Close)

			got, err := s.Apply(c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			require.NoError(t, c.Wait(ctx))

			assert.Equal(t, []float64{1, 1, 1}, c.Snapshot())
			if tt.fill {
				assert.Equal(t, 1.0, c.Fill())
			} else {
				assert.Zero(t, c.Fill())
			}
		})
	}
}

func TestApplyPathCountMismatch(t *testing.T) {
	s := testScene(ModeSequence, false)
	c := pathanim.New(2)
	t.Cleanup(c.Close)

	_, err := s.Apply(c)
	assert.ErrorIs(t, err, ErrPathCount)
	assert.Zero(t, c.Running())
}
