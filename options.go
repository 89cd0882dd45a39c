package pathanim

import (
	"context"
	"time"
)

// Option configures a Controller during creation.
//
// Example:
//
//	c := pathanim.New(len(paths),
//	    pathanim.WithEasing(pathanim.Linear),
//	    pathanim.WithFrameInterval(time.Second/30),
//	)
type Option func(*options)

// options holds optional configuration for Controller creation.
type options struct {
	easing   Easing
	frame    time.Duration
	parent   context.Context
	onUpdate func(target int, v float64)
}

// defaultOptions returns the default controller options.
func defaultOptions() options {
	return options{
		easing: FastOutSlowIn,
		frame:  DefaultFrameInterval,
		parent: context.Background(),
	}
}

// WithEasing sets the easing curve used by every animation of the
// controller. A nil easing selects Linear.
func WithEasing(e Easing) Option {
	return func(o *options) {
		if e == nil {
			e = Linear
		}
		o.easing = e
	}
}

// WithFrameInterval sets how often running animations update their value.
// Non-positive intervals are ignored.
func WithFrameInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.frame = d
		}
	}
}

// WithContext binds the controller to a parent context. Cancelling the
// parent cancels every task the controller runs, like a UI lifecycle
// ending.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.parent = ctx
		}
	}
}

// WithUpdateFunc registers fn to be called whenever a progress value
// changes. target is the path index, or FillTarget for the fill opacity.
// fn runs on the animating goroutine and must not block; a renderer
// typically uses it to request a redraw.
func WithUpdateFunc(fn func(target int, v float64)) Option {
	return func(o *options) {
		o.onUpdate = fn
	}
}
