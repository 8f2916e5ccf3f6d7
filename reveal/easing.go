// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package reveal

import "math"

// Curve is a CSS-style cubic-bezier timing function with fixed end points
// (0,0) and (1,1).
type Curve struct {
	X1, Y1, X2, Y2 float64
}

var (
	Linear      = Curve{0, 0, 1, 1}
	EaseOut     = Curve{0.22, 1, 0.36, 1}
	EaseLetters = Curve{0.19, 1, 0.22, 1}
	EaseHero    = Curve{0.34, 1.56, 0.64, 1}
	EaseWords   = Curve{0.25, 0.46, 0.45, 0.94}
	EaseDraw    = Curve{0.2, 0.8, 0.2, 1}
)

// Overshoots reports whether the curve leaves [0,1] on the way.
func (c Curve) Overshoots() bool { return c.Y1 > 1 || c.Y2 > 1 || c.Y1 < 0 || c.Y2 < 0 }

func bezier(a, b, t float64) float64 {
	u := 1 - t
	return 3*u*u*t*a + 3*u*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	u := 1 - t
	return 3*u*u*a + 6*u*t*(b-a) + 3*t*t*(1-b)
}

// At maps input progress x in [0,1] to eased progress.
func (c Curve) At(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	case c == Linear:
		return x
	}

	// Newton first, bisection if the slope flattens out.
	t := x
	for i := 0; i < 8; i++ {
		dx := bezier(c.X1, c.X2, t) - x
		if math.Abs(dx) < 1e-6 {
			return bezier(c.Y1, c.Y2, t)
		}
		d := bezierSlope(c.X1, c.X2, t)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= dx / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 32; i++ {
		v := bezier(c.X1, c.X2, t)
		if math.Abs(v-x) < 1e-6 {
			break
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bezier(c.Y1, c.Y2, t)
}
