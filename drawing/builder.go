// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawing

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/pathanim"
)

// Common errors returned by Build.
var (
	// ErrNoPaths is returned when a Drawing would have no paths.
	ErrNoPaths = errors.New("drawing: no paths")

	// ErrColorCount is returned when more than one color is given and the
	// count differs from the path count.
	ErrColorCount = errors.New("drawing: color count does not match path count")

	// ErrStyleCount is returned when more than one style is given and the
	// count differs from the path count.
	ErrStyleCount = errors.New("drawing: style count does not match path count")

	// ErrNilPath is returned when a path is nil.
	ErrNilPath = errors.New("drawing: nil path")

	// ErrUnknownStyle is returned by ParseStyle.
	ErrUnknownStyle = errors.New("drawing: unknown style")
)

// DefaultStrokeWidth is the outline width used when none is configured.
const DefaultStrokeWidth = 2.0

// Builder collects the static configuration of a Drawing.
// The zero value is not usable; call New.
type Builder struct {
	paths       []*gg.Path
	colors      []gg.RGBA
	styles      []Style
	scale       gg.Point
	pivot       gg.Point
	translate   gg.Point
	strokeWidth float64
	opts        []pathanim.Option
}

// New starts a Builder for the given paths. Defaults: one black color for
// every path, scale 1, pivot and translation at the origin, Fill style.
func New(paths ...*gg.Path) *Builder {
	return &Builder{
		paths:       append([]*gg.Path(nil), paths...),
		colors:      []gg.RGBA{gg.Black},
		styles:      []Style{Fill},
		scale:       gg.Pt(1, 1),
		strokeWidth: DefaultStrokeWidth,
	}
}

// Add appends more paths.
func (b *Builder) Add(paths ...*gg.Path) *Builder {
	b.paths = append(b.paths, paths...)
	return b
}

// Color uses c for every path.
func (b *Builder) Color(c gg.RGBA) *Builder {
	b.colors = []gg.RGBA{c}
	return b
}

// Colors sets one color per path. A single color applies to all paths.
func (b *Builder) Colors(colors ...gg.RGBA) *Builder {
	b.colors = append([]gg.RGBA(nil), colors...)
	return b
}

// Scale scales uniformly about the pivot.
func (b *Builder) Scale(s float64) *Builder {
	return b.ScaleXY(s, s)
}

// ScaleXY scales each axis about the pivot.
func (b *Builder) ScaleXY(x, y float64) *Builder {
	b.scale = gg.Pt(x, y)
	return b
}

// Pivot sets the point, in path coordinates, that scaling is relative to.
func (b *Builder) Pivot(x, y float64) *Builder {
	b.pivot = gg.Pt(x, y)
	return b
}

// Translate offsets the drawing after scaling.
func (b *Builder) Translate(x, y float64) *Builder {
	b.translate = gg.Pt(x, y)
	return b
}

// Style uses s for every path.
func (b *Builder) Style(s Style) *Builder {
	b.styles = []Style{s}
	return b
}

// Styles sets one style per path. A single style applies to all paths.
func (b *Builder) Styles(styles ...Style) *Builder {
	b.styles = append([]Style(nil), styles...)
	return b
}

// StrokeWidth sets the outline width in path units. Non-positive widths
// are ignored.
func (b *Builder) StrokeWidth(w float64) *Builder {
	if w > 0 {
		b.strokeWidth = w
	}
	return b
}

// ControllerOptions passes options to the controller created by Build.
func (b *Builder) ControllerOptions(opts ...pathanim.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

// Build validates the configuration and creates the Drawing together with
// a controller sized to its path count.
func (b *Builder) Build() (*Drawing, error) {
	n := len(b.paths)
	if n == 0 {
		return nil, ErrNoPaths
	}
	for i, p := range b.paths {
		if p == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilPath, i)
		}
	}

	colors, ok := expand(b.colors, n, gg.Black)
	if !ok {
		return nil, fmt.Errorf("%w: %d colors for %d paths", ErrColorCount, len(b.colors), n)
	}
	styles, ok := expand(b.styles, n, Fill)
	if !ok {
		return nil, fmt.Errorf("%w: %d styles for %d paths", ErrStyleCount, len(b.styles), n)
	}

	m := gg.Translate(b.translate.X+b.pivot.X, b.translate.Y+b.pivot.Y).
		Multiply(gg.Scale(b.scale.X, b.scale.Y)).
		Multiply(gg.Translate(-b.pivot.X, -b.pivot.Y))

	d := &Drawing{
		paths:       append([]*gg.Path(nil), b.paths...),
		colors:      colors,
		styles:      styles,
		transform:   m,
		strokeWidth: b.strokeWidth,
		controller:  pathanim.New(n, b.opts...),
	}
	pathanim.Logger().Debug("drawing: built", "paths", n, "scale", b.scale, "pivot", b.pivot)
	return d, nil
}

// expand returns one value per path: a single value is repeated, an empty
// list uses def, and any other length must equal n.
func expand[T any](vals []T, n int, def T) ([]T, bool) {
	out := make([]T, n)
	switch len(vals) {
	case 0:
		for i := range out {
			out[i] = def
		}
	case 1:
		for i := range out {
			out[i] = vals[0]
		}
	case n:
		copy(out, vals)
	default:
		return nil, false
	}
	return out, true
}
