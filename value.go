package pathanim

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// Value is an observable scalar in [0, 1] that can be set instantly or
// animated over time. Reads are lock-free so a renderer can sample it on
// every frame while an animation goroutine writes it.
//
// The zero Value is ready to use and holds 0.
type Value struct {
	bits atomic.Uint64

	// mu orders animated writes against immediate ones: an animated write
	// is dropped once its context is cancelled.
	mu sync.Mutex

	// notifyMu is taken before mu is released, so observers see changes in
	// the order they were stored and the last call carries the held value.
	notifyMu sync.Mutex

	observe atomic.Pointer[func(float64)]
}

// Load returns the current value.
func (v *Value) Load() float64 {
	return math.Float64frombits(v.bits.Load())
}

// Set stores x immediately, clamped to [0, 1].
func (v *Value) Set(x float64) {
	v.mu.Lock()
	v.storeAndNotify(x)
}

// Observe registers fn to be called after every change. Passing nil removes
// the observer. fn runs on the goroutine that changed the value, one call at
// a time, and must not change v.
func (v *Value) Observe(fn func(float64)) {
	if fn == nil {
		v.observe.Store(nil)
		return
	}
	v.observe.Store(&fn)
}

// AnimateTo interpolates the value from its current state to target over
// duration, updating it once per frame interval with the given easing.
// A nil easing means Linear; a non-positive frame means DefaultFrameInterval.
//
// AnimateTo blocks until the target is reached or ctx is done. On
// cancellation the value keeps whatever it last reached and ctx.Err() is
// returned. A non-positive duration sets the target at once.
func (v *Value) AnimateTo(ctx context.Context, target float64, duration, frame time.Duration, ease Easing) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if duration <= 0 {
		return v.setLive(ctx, target)
	}
	if ease == nil {
		ease = Linear
	}
	if frame <= 0 {
		frame = DefaultFrameInterval
	}

	start := v.Load()
	began := time.Now()
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			f := float64(now.Sub(began)) / float64(duration)
			if f >= 1 {
				return v.setLive(ctx, target)
			}
			if err := v.setLive(ctx, start+(target-start)*ease(f)); err != nil {
				return err
			}
		}
	}
}

// setLive stores x unless ctx has been cancelled.
func (v *Value) setLive(ctx context.Context, x float64) error {
	v.mu.Lock()
	if err := ctx.Err(); err != nil {
		v.mu.Unlock()
		return err
	}
	v.storeAndNotify(x)
	return nil
}

// storeAndNotify stores x and calls the observer. v.mu must be held; it is
// released before the observer runs.
func (v *Value) storeAndNotify(x float64) {
	x = v.store(x)
	v.notifyMu.Lock()
	v.mu.Unlock()
	defer v.notifyMu.Unlock()
	v.notify(x)
}

func (v *Value) store(x float64) float64 {
	x = clamp01(x)
	v.bits.Store(math.Float64bits(x))
	return x
}

func (v *Value) notify(x float64) {
	if fn := v.observe.Load(); fn != nil {
		(*fn)(x)
	}
}

func clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
