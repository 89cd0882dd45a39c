// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pathdata

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want []gg.PathElement
	}{
		{
			name: "empty",
			d:    "  ",
			want: nil,
		},
		{
			name: "absolute lines",
			d:    "M10 20 L30 40 Z",
			want: []gg.PathElement{
				gg.MoveTo{Point: gg.Pt(10, 20)},
				gg.LineTo{Point: gg.Pt(30, 40)},
				gg.Close{},
			},
		},
		{
			name: "relative with implicit lineto",
			d:    "m10,10 5,0 0,5",
			want: []gg.PathElement{
				gg.MoveTo{Point: gg.Pt(10, 10)},
				gg.LineTo{Point: gg.Pt(15, 10)},
				gg.LineTo{Point: gg.Pt(15, 15)},
			},
		},
		{
			name: "horizontal and vertical",
			d:    "M0 0H10V10h-5v-5",
			want: []gg.PathElement{
				gg.MoveTo{Point: gg.Pt(0, 0)},
				gg.LineTo{Point: gg.Pt(10, 0)},
				gg.LineTo{Point: gg.Pt(10, 10)},
				gg.LineTo{Point: gg.Pt(5, 10)},
				gg.LineTo{Point: gg.Pt(5, 5)},
			},
		},
		{
			name: "compact numbers",
			d:    "M-1-2L.5.5 1e1-1",
			want: []gg.PathElement{
				gg.MoveTo{Point: gg.Pt(-1, -2)},
				gg.LineTo{Point: gg.Pt(0.5, 0.5)},
				gg.LineTo{Point: gg.Pt(10, -1)},
			},
		},
		{
			name: "smooth cubic reflects control",
			d:    "M0 0 C0 10 10 10 10 0 S20 -10 20 0",
			want: []gg.PathElement{
				gg.MoveTo{Point: gg.Pt(0, 0)},
				gg.CubicTo{Control1: gg.Pt(0, 10), Control2: gg.Pt(10, 10), Point: gg.Pt(10, 0)},
				gg.CubicTo{Control1: gg.Pt(10, -10), Control2: gg.Pt(20, -10), Point: gg.Pt(20, 0)},
			},
		},
		{
			name: "smooth quadratic",
			d:    "M0 0 Q5 5 10 0 T20 0",
			want: []gg.PathElement{
				gg.MoveTo{Point: gg.Pt(0, 0)},
				gg.QuadTo{Control: gg.Pt(5, 5), Point: gg.Pt(10, 0)},
				gg.QuadTo{Control: gg.Pt(15, -5), Point: gg.Pt(20, 0)},
			},
		},
		{
			name: "smooth cubic without previous curve",
			d:    "M0 0 S10 10 20 0",
			want: []gg.PathElement{
				gg.MoveTo{Point: gg.Pt(0, 0)},
				gg.CubicTo{Control1: gg.Pt(0, 0), Control2: gg.Pt(10, 10), Point: gg.Pt(20, 0)},
			},
		},
		{
			name: "close resets current point",
			d:    "M5 5 l5 0 z l0 5",
			want: []gg.PathElement{
				gg.MoveTo{Point: gg.Pt(5, 5)},
				gg.LineTo{Point: gg.Pt(10, 5)},
				gg.Close{},
				gg.LineTo{Point: gg.Pt(5, 10)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.d)
			require.NoError(t, err)
			assert.Equal(t, tt.want, nilIfEmpty(p.Elements()))
		})
	}
}

func nilIfEmpty(els []gg.PathElement) []gg.PathElement {
	if len(els) == 0 {
		return nil
	}
	return els
}

func TestParseArc(t *testing.T) {
	// Half circle of radius 10 from (0,0) to (20,0).
	p, err := Parse("M0 0 A10 10 0 0 1 20 0")
	require.NoError(t, err)

	els := p.Elements()
	require.Len(t, els, 3, "a half turn is two quarter-turn cubics")
	last, ok := els[2].(gg.CubicTo)
	require.True(t, ok)
	assert.Equal(t, gg.Pt(20, 0), last.Point)

	mid, ok := els[1].(gg.CubicTo)
	require.True(t, ok)
	assert.InDelta(t, 10, mid.Point.X, 1e-9)
	assert.InDelta(t, 10, abs(mid.Point.Y), 1e-9)

	assert.InDelta(t, 3.14159*10, Measure(p), 0.05)
}

func TestParseArcCompactFlags(t *testing.T) {
	p, err := Parse("M0 0a5 5 0 1020 0")
	require.NoError(t, err)
	require.NotEmpty(t, p.Elements())
	end, ok := p.Elements()[len(p.Elements())-1].(gg.CubicTo)
	require.True(t, ok)
	assert.InDelta(t, 20, end.Point.X, 1e-9)
}

func TestParseArcZeroRadius(t *testing.T) {
	p, err := Parse("M0 0 A0 5 0 0 1 10 0")
	require.NoError(t, err)
	assert.Equal(t, gg.LineTo{Point: gg.Pt(10, 0)}, p.Elements()[1])
}

func TestParseErrors(t *testing.T) {
	for _, d := range []string{
		"L10 10",
		"M10",
		"M0 0 X5",
		"M0 0 L1 2 3",
		"M0 0 A1 1 0 2 0 5 5",
		"M0 0 C1 1 2 2",
	} {
		t.Run(d, func(t *testing.T) {
			_, err := Parse(d)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { MustParse("M0 0L1 1") })
	assert.Panics(t, func() { MustParse("nope") })
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
