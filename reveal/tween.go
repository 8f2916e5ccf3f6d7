// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package reveal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"

	metrixlog "metrix/utils/log"
)

const (
	TweenerSpring = "spring"
	TweenerNative = "native"
)

// Tweener turns elapsed time into eased progress. 0 means not started and 1
// means settled; values in between may overshoot.
type Tweener interface {
	Name() string
	Progress(c Curve, elapsed, duration time.Duration) float64
}

func fraction(elapsed, duration time.Duration) (float64, bool) {
	if duration <= 0 || elapsed >= duration {
		return 1, true
	}
	if elapsed <= 0 {
		return 0, true
	}
	return float64(elapsed) / float64(duration), false
}

// Native evaluates the cubic-bezier curve directly, like a CSS transition.
type Native struct{}

func (Native) Name() string { return TweenerNative }

func (Native) Progress(c Curve, elapsed, duration time.Duration) float64 {
	x, done := fraction(elapsed, duration)
	if done {
		return x
	}
	return c.At(x)
}

const springSteps = 60

// Spring replaces the bezier with a damped spring integrated by harmonica.
// Curves that overshoot get an under-damped spring, the rest a critically
// damped one. Linear curves are left linear.
type Spring struct {
	smooth []float64
	bouncy []float64
}

func NewSpring() (*Spring, error) {
	s := &Spring{
		smooth: springTable(10, 1.0),
		bouncy: springTable(12, 0.45),
	}
	for _, tab := range [][]float64{s.smooth, s.bouncy} {
		for i, v := range tab {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("spring table diverged at step %d", i)
			}
		}
	}
	return s, nil
}

func springTable(frequency, damping float64) []float64 {
	sp := harmonica.NewSpring(1.0/springSteps, frequency, damping)
	tab := make([]float64, springSteps+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= springSteps; i++ {
		pos, vel = sp.Update(pos, vel, 1)
		tab[i] = pos
	}
	tab[springSteps] = 1
	return tab
}

func (*Spring) Name() string { return TweenerSpring }

func (s *Spring) Progress(c Curve, elapsed, duration time.Duration) float64 {
	x, done := fraction(elapsed, duration)
	if done {
		return x
	}
	if c == Linear {
		return x
	}
	tab := s.smooth
	if c.Overshoots() {
		tab = s.bouncy
	}
	pos := x * springSteps
	i := int(pos)
	frac := pos - float64(i)
	return tab[i] + (tab[i+1]-tab[i])*frac
}

// NewTweener picks the tweening capability once. Anything other than a
// working spring falls back to Native.
func NewTweener(name string, log *metrixlog.Logger) Tweener {
	if log == nil {
		log = metrixlog.Nop()
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case TweenerNative:
		return Native{}
	case TweenerSpring, "":
		s, err := NewSpring()
		if err != nil {
			log.Warnw("spring tweener unavailable, using native easing", "error", err)
			return Native{}
		}
		return s
	default:
		log.Warnw("unknown tweener, using native easing", "tweener", name)
		return Native{}
	}
}
