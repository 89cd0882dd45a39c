package pathanim

import (
	"math"

	"github.com/gogpu/gg"
)

// Easing maps a linear time fraction t in [0, 1] to an output fraction.
// Implementations must return 0 for t = 0 and 1 for t = 1.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// FastOutSlowIn is the standard motion curve: quick acceleration and a long
// deceleration. It is the default easing of a Controller.
var FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)

// CubicBezier returns an easing defined by a unit cubic Bézier with control
// points (x1, y1) and (x2, y2), as in CSS cubic-bezier(). x1 and x2 must lie
// in [0, 1] so the curve is a function of time.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	curve := gg.NewCubicBez(gg.Pt(0, 0), gg.Pt(x1, y1), gg.Pt(x2, y2), gg.Pt(1, 1))

	// x(s) = a*s^3 + b*s^2 + c*s in power form.
	a := snapZero(1 + 3*x1 - 3*x2)
	b := snapZero(3*x2 - 6*x1)
	c := snapZero(3 * x1)

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		s := t
		if roots := gg.SolveCubicInUnitInterval(a, b, c, -t); len(roots) > 0 {
			s = roots[0]
		}
		return curve.Eval(s).Y
	}
}

// snapZero drops rounding noise so degenerate curves are solved as
// quadratics or lines.
func snapZero(v float64) float64 {
	if math.Abs(v) < 1e-12 {
		return 0
	}
	return v
}
