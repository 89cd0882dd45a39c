// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pathdata

import "github.com/gogpu/gg"

// curveSamples is the number of chords used to approximate a curve's length.
const curveSamples = 32

// Measure returns the arc length of p. Unlike gg.Path.Length it includes
// the implicit segment drawn by each closepath.
func Measure(p *gg.Path) float64 {
	var total float64
	walk(p, func(s segment) bool {
		total += s.length()
		return true
	})
	return total
}

// Trim returns the prefix of p that covers fraction of its arc length.
// fraction is clamped to [0, 1]; 0 yields an empty path and 1 a copy of p.
// The cut segment is split exactly with gg's Subsegment at the parameter
// matching the remaining length.
func Trim(p *gg.Path, fraction float64) *gg.Path {
	switch {
	case fraction <= 0:
		return gg.NewPath()
	case fraction >= 1:
		return p.Clone()
	}

	out := gg.NewPath()
	budget := Measure(p) * fraction
	walk(p, func(s segment) bool {
		if s.kind == segMove {
			out.MoveTo(s.to.X, s.to.Y)
			return true
		}
		l := s.length()
		if l <= budget {
			s.appendTo(out)
			budget -= l
			return true
		}
		s.split(s.paramAt(budget)).appendTo(out)
		return false
	})
	return out
}

type segKind uint8

const (
	segMove segKind = iota
	segLine
	segQuad
	segCubic
	segClose
)

// segment is one path element with its start point made explicit.
type segment struct {
	kind         segKind
	from, c1, c2 gg.Point
	to           gg.Point
}

// walk calls fn for every element of p in order until fn returns false.
func walk(p *gg.Path, fn func(segment) bool) {
	var cur, start gg.Point
	for _, el := range p.Elements() {
		var s segment
		switch e := el.(type) {
		case gg.MoveTo:
			s = segment{kind: segMove, from: cur, to: e.Point}
			start = e.Point
		case gg.LineTo:
			s = segment{kind: segLine, from: cur, to: e.Point}
		case gg.QuadTo:
			s = segment{kind: segQuad, from: cur, c1: e.Control, to: e.Point}
		case gg.CubicTo:
			s = segment{kind: segCubic, from: cur, c1: e.Control1, c2: e.Control2, to: e.Point}
		case gg.Close:
			s = segment{kind: segClose, from: cur, to: start}
		default:
			continue
		}
		cur = s.to
		if !fn(s) {
			return
		}
	}
}

func (s segment) line() gg.Line      { return gg.NewLine(s.from, s.to) }
func (s segment) quad() gg.QuadBez   { return gg.NewQuadBez(s.from, s.c1, s.to) }
func (s segment) cubic() gg.CubicBez { return gg.NewCubicBez(s.from, s.c1, s.c2, s.to) }

func (s segment) at(t float64) gg.Point {
	switch s.kind {
	case segQuad:
		return s.quad().Eval(t)
	case segCubic:
		return s.cubic().Eval(t)
	}
	return s.line().Eval(t)
}

func (s segment) curved() bool { return s.kind == segQuad || s.kind == segCubic }

func (s segment) length() float64 {
	switch {
	case s.kind == segMove:
		return 0
	case !s.curved():
		return s.line().Length()
	}
	var l float64
	prev := s.from
	for i := 1; i <= curveSamples; i++ {
		pt := s.at(float64(i) / curveSamples)
		l += prev.Distance(pt)
		prev = pt
	}
	return l
}

// paramAt returns the curve parameter at which the arc length from the
// segment start reaches l.
func (s segment) paramAt(l float64) float64 {
	if !s.curved() {
		total := s.length()
		if total == 0 {
			return 1
		}
		return l / total
	}
	var acc float64
	prev := s.from
	for i := 1; i <= curveSamples; i++ {
		pt := s.at(float64(i) / curveSamples)
		d := prev.Distance(pt)
		if acc+d >= l {
			frac := 0.0
			if d > 0 {
				frac = (l - acc) / d
			}
			return (float64(i-1) + frac) / curveSamples
		}
		acc += d
		prev = pt
	}
	return 1
}

// split returns the part of s from its start to parameter t.
func (s segment) split(t float64) segment {
	switch s.kind {
	case segQuad:
		q := s.quad().Subsegment(0, t)
		return segment{kind: segQuad, from: q.P0, c1: q.P1, to: q.P2}
	case segCubic:
		c := s.cubic().Subsegment(0, t)
		return segment{kind: segCubic, from: c.P0, c1: c.P1, c2: c.P2, to: c.P3}
	}
	// A partially drawn closepath is an open line back to the start.
	l := s.line().Subsegment(0, t)
	return segment{kind: segLine, from: l.P0, to: l.P1}
}

func (s segment) appendTo(p *gg.Path) {
	switch s.kind {
	case segMove:
		p.MoveTo(s.to.X, s.to.Y)
	case segLine:
		p.LineTo(s.to.X, s.to.Y)
	case segQuad:
		p.QuadraticTo(s.c1.X, s.c1.Y, s.to.X, s.to.Y)
	case segCubic:
		p.CubicTo(s.c1.X, s.c1.Y, s.c2.X, s.c2.Y, s.to.X, s.to.Y)
	case segClose:
		p.Close()
	}
}
