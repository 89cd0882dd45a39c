// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command pathdemo renders a path animation scene to a sequence of PNG
// frames.
//
// Without -scene a built-in sample is rendered. With -watch the scene file
// is rendered again every time it changes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gogpu/gg"
	"github.com/gogpu/pathanim"
	"github.com/gogpu/pathanim/drawing"
	"github.com/gogpu/pathanim/scene"
)

// sample is rendered when no scene file is given.
const sample = `
width: 320
height: 240
stroke_width: 4
paths:
  - d: "M40 200 L160 40 L280 200 Z"
    color: "#1e88e5"
  - d: "M100 160 A60 60 0 0 1 220 160"
    color: tomato
    style: stroke
  - d: "M60 220 C120 180 200 260 260 220"
    color: seagreen
    style: stroke
schedule:
  mode: staggered
  duration: 900ms
  stagger: 250ms
  fill: true
`

type config struct {
	scene  string
	frames int
	fps    int
	out    string
	watch  bool
}

func main() {
	var (
		cfg     config
		verbose bool
	)
	flag.StringVar(&cfg.scene, "scene", "", "scene file (.yaml, .yml or .toml); built-in sample if empty")
	flag.IntVar(&cfg.frames, "frames", 0, "number of frames; 0 covers the whole animation")
	flag.IntVar(&cfg.fps, "fps", 30, "frames per second")
	flag.StringVar(&cfg.out, "out", "frames", "output directory")
	flag.BoolVar(&cfg.watch, "watch", false, "render again when the scene file changes")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Parse()

	if verbose {
		pathanim.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("pathdemo: %v", err)
	}
}

func run(ctx context.Context, cfg config) error {
	if cfg.fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", cfg.fps)
	}
	if cfg.watch && cfg.scene == "" {
		return errors.New("-watch needs -scene")
	}
	if err := os.MkdirAll(cfg.out, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if cfg.watch {
		return watch(ctx, cfg)
	}
	s, err := loadScene(cfg.scene)
	if err != nil {
		return err
	}
	return render(ctx, s, cfg)
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Parse([]byte(sample), scene.YAML)
	}
	return scene.Load(path)
}

// render plays the scene in real time and saves one frame per tick.
func render(ctx context.Context, s *scene.Scene, cfg config) error {
	d, err := s.Build()
	if err != nil {
		return err
	}
	defer d.Close()

	total, err := s.Apply(d.Controller())
	if err != nil {
		return err
	}

	interval := time.Second / time.Duration(cfg.fps)
	frames := cfg.frames
	if frames <= 0 {
		frames = int(total/interval) + 1
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	began := time.Now()
	for i := range frames {
		name := filepath.Join(cfg.out, fmt.Sprintf("frame-%04d.png", i))
		if err := saveFrame(d, s, name); err != nil {
			return err
		}
		if i == frames-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	log.Printf("rendered %d frames to %s in %v", frames, cfg.out, time.Since(began).Round(time.Millisecond))
	return nil
}

func saveFrame(d *drawing.Drawing, s *scene.Scene, name string) error {
	dc := gg.NewContext(s.Width, s.Height)
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(s.Background.RGBA())
	if err := d.Draw(dc); err != nil {
		return err
	}
	if err := dc.SavePNG(name); err != nil {
		return fmt.Errorf("saving %s: %w", name, err)
	}
	return nil
}

// watch renders the scene and renders it again on every change until ctx
// is done. A render in progress is cancelled when the file changes.
func watch(ctx context.Context, cfg config) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	target, err := filepath.Abs(cfg.scene)
	if err != nil {
		return err
	}
	// Editors often replace the file, so watch its directory.
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", cfg.scene, err)
	}

	r := &renderer{cfg: cfg}
	defer r.stop()
	r.restart(ctx)

	changed := newDebouncer(settleDelay)
	defer changed.stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name, _ := filepath.Abs(ev.Name)
			if name == target && ev.Has(fsnotify.Write|fsnotify.Create) {
				changed.trigger()
			}
		case <-changed.C:
			log.Printf("%s changed", cfg.scene)
			r.restart(ctx)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}

// settleDelay is how long the scene file must stay quiet before it is
// rendered again. Editors often save in several writes.
const settleDelay = 100 * time.Millisecond

// debouncer sends on C once no trigger has happened for its delay.
type debouncer struct {
	C     chan struct{}
	delay time.Duration
	timer *time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	d := &debouncer{C: make(chan struct{}, 1), delay: delay}
	d.timer = time.AfterFunc(delay, func() {
		select {
		case d.C <- struct{}{}:
		default:
		}
	})
	d.timer.Stop()
	return d
}

// trigger restarts the quiet period.
func (d *debouncer) trigger() {
	d.timer.Reset(d.delay)
}

func (d *debouncer) stop() { d.timer.Stop() }

// renderer runs at most one render at a time.
type renderer struct {
	cfg    config
	cancel context.CancelFunc
	done   chan struct{}
}

func (r *renderer) stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	r.cancel = nil
}

func (r *renderer) restart(ctx context.Context) {
	r.stop()

	s, err := scene.Load(r.cfg.scene)
	if err != nil {
		log.Printf("loading scene: %v", err)
		return
	}

	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	go func(done chan struct{}) {
		defer close(done)
		if err := render(ctx, s, r.cfg); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("render: %v", err)
		}
	}(r.done)
}
