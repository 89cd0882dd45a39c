// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawing

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/pathanim"
	"github.com/gogpu/pathanim/pathdata"
)

// Drawing is a set of paths bound to the controller that animates them.
// Its configuration is immutable; only the controller's values change.
type Drawing struct {
	paths       []*gg.Path
	colors      []gg.RGBA
	styles      []Style
	transform   gg.Matrix
	strokeWidth float64
	controller  *pathanim.Controller
}

// Controller returns the controller driving the drawing.
func (d *Drawing) Controller() *pathanim.Controller { return d.controller }

// Len returns the number of paths.
func (d *Drawing) Len() int { return len(d.paths) }

// Path returns path i in its own coordinates.
func (d *Drawing) Path(i int) *gg.Path { return d.paths[i] }

// Color returns the color of path i.
func (d *Drawing) Color(i int) gg.RGBA { return d.colors[i] }

// Style returns the draw style of path i.
func (d *Drawing) Style(i int) Style { return d.styles[i] }

// Transform returns the matrix mapping path coordinates to canvas
// coordinates: scale about the pivot, then translate.
func (d *Drawing) Transform() gg.Matrix { return d.transform }

// Draw renders the current frame onto dc. For every path it fills
// fill-style shapes with alpha scaled by the fill opacity, then strokes the
// revealed part of the outline. The context state is restored on return.
func (d *Drawing) Draw(dc *gg.Context) error {
	fill := d.controller.Fill()
	progress := d.controller.Snapshot()

	dc.Push()
	defer dc.Pop()
	dc.Transform(d.transform)
	dc.SetLineWidth(d.strokeWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	for i, p := range d.paths {
		col := d.colors[i]

		if d.styles[i] == Fill && fill > 0 {
			appendPath(dc, p)
			dc.SetRGBA(col.R, col.G, col.B, col.A*fill)
			if err := dc.Fill(); err != nil {
				return fmt.Errorf("drawing: fill path %d: %w", i, err)
			}
		}

		if progress[i] <= 0 {
			continue
		}
		appendPath(dc, pathdata.Trim(p, progress[i]))
		dc.SetRGBA(col.R, col.G, col.B, col.A)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("drawing: stroke path %d: %w", i, err)
		}
	}
	return nil
}

// Close stops the controller.
func (d *Drawing) Close() { d.controller.Close() }

// appendPath replays p onto the current path of dc, so dc's transform
// applies to it.
func appendPath(dc *gg.Context, p *gg.Path) {
	dc.ClearPath()
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dc.ClosePath()
		}
	}
}
