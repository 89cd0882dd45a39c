// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pathdata

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/gogpu/gg"
)

// ErrSyntax is returned when path data cannot be parsed.
var ErrSyntax = errors.New("pathdata: syntax error")

// Parse converts SVG path data into a path.
func Parse(d string) (*gg.Path, error) {
	p := &parser{s: d, path: gg.NewPath()}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.path, nil
}

// MustParse is like Parse but panics on error.
// Use only for literal path data.
func MustParse(d string) *gg.Path {
	p, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return p
}

type parser struct {
	s    string
	pos  int
	path *gg.Path

	cur, start gg.Point
	// ctrl is the last control point of the previous curve, used by the
	// smooth commands S and T.
	ctrl    gg.Point
	lastCmd byte
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) run() error {
	p.skipSpace()
	if p.pos == len(p.s) {
		return nil
	}
	if c := p.s[p.pos]; c != 'M' && c != 'm' {
		return p.errorf("path must start with moveto, got %q", c)
	}

	for {
		p.skipSpace()
		if p.pos == len(p.s) {
			return nil
		}
		c := p.s[p.pos]
		if !isCommand(c) {
			return p.errorf("unexpected %q", c)
		}
		p.pos++
		if err := p.command(c); err != nil {
			return err
		}
	}
}

// command parses the arguments of cmd, repeating it while more numbers
// follow. Extra coordinate pairs after a moveto are implicit linetos.
func (p *parser) command(cmd byte) error {
	rel := cmd >= 'a'
	upper := cmd &^ 0x20

	if upper == 'Z' {
		p.path.Close()
		p.cur = p.start
		p.lastCmd = 'Z'
		return nil
	}

	first := true
	for first || p.hasNumber() {
		var err error
		switch upper {
		case 'M':
			if first {
				err = p.moveTo(rel)
			} else {
				err = p.lineTo(rel)
			}
		case 'L':
			err = p.lineTo(rel)
		case 'H':
			err = p.horizontal(rel)
		case 'V':
			err = p.vertical(rel)
		case 'C':
			err = p.cubic(rel, false)
		case 'S':
			err = p.cubic(rel, true)
		case 'Q':
			err = p.quad(rel, false)
		case 'T':
			err = p.quad(rel, true)
		case 'A':
			err = p.arc(rel)
		}
		if err != nil {
			return err
		}
		p.lastCmd = upper
		first = false
	}
	return nil
}

func (p *parser) moveTo(rel bool) error {
	pt, err := p.point(rel)
	if err != nil {
		return err
	}
	p.path.MoveTo(pt.X, pt.Y)
	p.cur, p.start = pt, pt
	return nil
}

func (p *parser) lineTo(rel bool) error {
	pt, err := p.point(rel)
	if err != nil {
		return err
	}
	p.line(pt)
	return nil
}

func (p *parser) horizontal(rel bool) error {
	x, err := p.number()
	if err != nil {
		return err
	}
	if rel {
		x += p.cur.X
	}
	p.line(gg.Pt(x, p.cur.Y))
	return nil
}

func (p *parser) vertical(rel bool) error {
	y, err := p.number()
	if err != nil {
		return err
	}
	if rel {
		y += p.cur.Y
	}
	p.line(gg.Pt(p.cur.X, y))
	return nil
}

func (p *parser) line(pt gg.Point) {
	p.path.LineTo(pt.X, pt.Y)
	p.cur = pt
}

func (p *parser) cubic(rel, smooth bool) error {
	var c1 gg.Point
	if smooth {
		c1 = p.reflect('C', 'S')
	} else {
		var err error
		if c1, err = p.point(rel); err != nil {
			return err
		}
	}
	c2, err := p.point(rel)
	if err != nil {
		return err
	}
	end, err := p.point(rel)
	if err != nil {
		return err
	}
	p.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	p.ctrl, p.cur = c2, end
	return nil
}

func (p *parser) quad(rel, smooth bool) error {
	var c gg.Point
	if smooth {
		c = p.reflect('Q', 'T')
	} else {
		var err error
		if c, err = p.point(rel); err != nil {
			return err
		}
	}
	end, err := p.point(rel)
	if err != nil {
		return err
	}
	p.path.QuadraticTo(c.X, c.Y, end.X, end.Y)
	p.ctrl, p.cur = c, end
	return nil
}

// reflect returns the reflection of the previous control point about the
// current point when the previous command was of the same curve family,
// and the current point otherwise.
func (p *parser) reflect(plain, smooth byte) gg.Point {
	if p.lastCmd == plain || p.lastCmd == smooth {
		return p.cur.Mul(2).Sub(p.ctrl)
	}
	return p.cur
}

func (p *parser) arc(rel bool) error {
	var args [3]float64
	for i := range args {
		v, err := p.number()
		if err != nil {
			return err
		}
		args[i] = v
	}
	large, err := p.flag()
	if err != nil {
		return err
	}
	sweep, err := p.flag()
	if err != nil {
		return err
	}
	end, err := p.point(rel)
	if err != nil {
		return err
	}
	arcTo(p.path, p.cur, end, args[0], args[1], args[2], large, sweep)
	p.cur = end
	return nil
}

func (p *parser) point(rel bool) (gg.Point, error) {
	x, err := p.number()
	if err != nil {
		return gg.Point{}, err
	}
	y, err := p.number()
	if err != nil {
		return gg.Point{}, err
	}
	pt := gg.Pt(x, y)
	if rel {
		pt = pt.Add(p.cur)
	}
	return pt, nil
}

// number scans one floating point number. Numbers may be separated by
// whitespace, a comma, a sign, or a second decimal point ("0.5.5").
func (p *parser) number() (float64, error) {
	p.skipSeparator()
	begin := p.pos
	if p.pos < len(p.s) && (p.s[p.pos] == '+' || p.s[p.pos] == '-') {
		p.pos++
	}
	digits := p.digits()
	if p.pos < len(p.s) && p.s[p.pos] == '.' {
		p.pos++
		digits += p.digits()
	}
	if digits == 0 {
		p.pos = begin
		return 0, p.errorf("expected number")
	}
	if p.pos < len(p.s) && (p.s[p.pos] == 'e' || p.s[p.pos] == 'E') {
		mark := p.pos
		p.pos++
		if p.pos < len(p.s) && (p.s[p.pos] == '+' || p.s[p.pos] == '-') {
			p.pos++
		}
		if p.digits() == 0 {
			p.pos = mark
		}
	}
	v, err := strconv.ParseFloat(p.s[begin:p.pos], 64)
	if err != nil {
		return 0, p.errorf("bad number %q", p.s[begin:p.pos])
	}
	return v, nil
}

// flag scans an arc flag, which may be written without a separator.
func (p *parser) flag() (bool, error) {
	p.skipSeparator()
	if p.pos < len(p.s) {
		switch p.s[p.pos] {
		case '0':
			p.pos++
			return false, nil
		case '1':
			p.pos++
			return true, nil
		}
	}
	return false, p.errorf("expected arc flag")
}

func (p *parser) digits() int {
	n := 0
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
		n++
	}
	return n
}

// hasNumber reports whether another argument follows.
func (p *parser) hasNumber() bool {
	p.skipSeparator()
	if p.pos == len(p.s) {
		return false
	}
	c := p.s[p.pos]
	return c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9')
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) && isSpace(p.s[p.pos]) {
		p.pos++
	}
}

func (p *parser) skipSeparator() {
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == ',' {
		p.pos++
		p.skipSpace()
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isCommand(c byte) bool {
	switch c &^ 0x20 {
	case 'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z':
		return true
	}
	return false
}

// arcTo appends an SVG elliptical arc from p0 to p1 as cubic Béziers of at
// most a quarter turn each, following the endpoint-to-center conversion of
// SVG 1.1 appendix F.6.
func arcTo(path *gg.Path, p0, p1 gg.Point, rx, ry, rotation float64, large, sweep bool) {
	if p0 == p1 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		path.LineTo(p1.X, p1.Y)
		return
	}

	phi := rotation * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	dx, dy := (p0.X-p1.X)/2, (p0.Y-p1.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	cx := cosPhi*cx1 - sinPhi*cy1 + (p0.X+p1.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (p0.Y+p1.Y)/2

	theta := angle(1, 0, (x1-cx1)/rx, (y1-cy1)/ry)
	delta := angle((x1-cx1)/rx, (y1-cy1)/ry, (-x1-cx1)/rx, (-y1-cy1)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	segments := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	step := delta / float64(segments)
	k := 4.0 / 3.0 * math.Tan(step/4)

	// toPath maps a point of the unit circle onto the ellipse.
	toPath := func(x, y float64) gg.Point {
		x, y = x*rx, y*ry
		return gg.Pt(cosPhi*x-sinPhi*y+cx, sinPhi*x+cosPhi*y+cy)
	}

	a := theta
	for i := range segments {
		b := a + step
		sinA, cosA := math.Sincos(a)
		sinB, cosB := math.Sincos(b)
		c1 := toPath(cosA-k*sinA, sinA+k*cosA)
		c2 := toPath(cosB+k*sinB, sinB-k*cosB)
		end := toPath(cosB, sinB)
		if i == segments-1 {
			end = p1
		}
		path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
		a = b
	}
}

// angle returns the signed angle from vector u to vector v.
func angle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}
