package pathanim

import (
	"context"
	"testing"
	"time"
)

// TestDefaultOptions tests the options a plain New uses.
func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()

	if o.frame != DefaultFrameInterval {
		t.Errorf("frame = %v, want %v", o.frame, DefaultFrameInterval)
	}
	if o.parent == nil {
		t.Error("parent context is nil")
	}
	if o.onUpdate != nil {
		t.Error("onUpdate should be unset")
	}
	if got := o.easing(0.5); got != FastOutSlowIn(0.5) {
		t.Errorf("easing(0.5) = %v, want FastOutSlowIn", got)
	}
}

// TestOptionsIgnoreInvalid tests that invalid arguments keep the defaults.
func TestOptionsIgnoreInvalid(t *testing.T) {
	o := defaultOptions()
	//nolint:staticcheck // nil context on purpose
	for _, opt := range []Option{WithFrameInterval(0), WithFrameInterval(-time.Second), WithContext(nil)} {
		opt(&o)
	}

	if o.frame != DefaultFrameInterval {
		t.Errorf("frame = %v, want %v", o.frame, DefaultFrameInterval)
	}
	if o.parent != context.Background() {
		t.Error("parent context was replaced")
	}
}

// TestWithEasingNil tests that a nil easing selects Linear.
func TestWithEasingNil(t *testing.T) {
	o := defaultOptions()
	WithEasing(nil)(&o)

	if got := o.easing(0.25); got != 0.25 {
		t.Errorf("easing(0.25) = %v, want 0.25", got)
	}
}
