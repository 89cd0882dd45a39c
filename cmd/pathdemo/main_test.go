// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSample(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frames")
	require.NoError(t, run(context.Background(), config{frames: 3, fps: 60, out: out}))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	f, err := os.Open(filepath.Join(out, "frame-0002.png"))
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 240, cfg.Height)
}

func TestRunSceneFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
width = 64
height = 32

[[paths]]
d = "M4 16 H60"

[schedule]
mode = "together"
duration = "20ms"
`), 0o600))

	out := filepath.Join(dir, "out")
	require.NoError(t, run(context.Background(), config{scene: path, fps: 100, out: out}))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "20ms at 100fps is frames 0, 1 and 2")
}

func TestRunFlagErrors(t *testing.T) {
	out := t.TempDir()
	assert.ErrorContains(t, run(context.Background(), config{fps: 0, out: out}), "fps")
	assert.ErrorContains(t, run(context.Background(), config{fps: 30, out: out, watch: true}), "-watch")
}

func TestDebouncerFiresOnceAfterLastTrigger(t *testing.T) {
	const delay = 50 * time.Millisecond
	d := newDebouncer(delay)
	defer d.stop()

	var last time.Time
	for range 5 {
		last = time.Now()
		d.trigger()
		time.Sleep(delay / 3)
	}

	select {
	case <-d.C:
		assert.GreaterOrEqual(t, time.Since(last), delay, "fired before the writes settled")
	case <-time.After(time.Second):
		t.Fatal("debouncer never fired")
	}

	select {
	case <-d.C:
		t.Fatal("a burst of writes rendered twice")
	case <-time.After(3 * delay):
	}
}
