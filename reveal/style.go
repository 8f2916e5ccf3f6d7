// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package reveal

import "time"

// Style is the animated state of an element or piece at the current time.
// DX and DY are in page units (about a pixel), Drawn is the visible share of
// a drawn line.
type Style struct {
	Opacity float64
	DX, DY  float64
	Scale   float64
	Drawn   float64
}

var (
	Shown  = Style{Opacity: 1, Scale: 1, Drawn: 1}
	Hidden = Style{Scale: 1}
)

// Neutral reports full opacity with no transform.
func (s Style) Neutral() bool { return s == Shown }

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func (e *Engine) progress(c Curve, el *Element, delay, length time.Duration) float64 {
	return e.tween.Progress(c, e.now-el.start-delay, length)
}

// Style returns the element-level state.
func (e *Engine) Style(el *Element) Style {
	if e.Reduced() || el.instant {
		return Shown
	}
	if !el.revealed {
		return Hidden
	}

	switch el.Mode {
	case Letters, Lines:
		// The container shows at once; its pieces carry the motion.
		return Shown
	case LineDraw:
		return Style{
			Opacity: clamp01(e.progress(Linear, el, el.base, DrawFadeDuration)),
			Scale:   1,
			Drawn:   clamp01(e.progress(EaseDraw, el, el.base, DrawLength)),
		}
	}

	p := e.progress(EaseOut, el, el.base, DirectionalLength)
	if p == 1 {
		return Shown
	}
	s := Style{Opacity: clamp01(p), Scale: 1, Drawn: 1}
	rest := Distance * (1 - p)
	switch el.Mode {
	case Up:
		s.DY = rest
	case Down:
		s.DY = -rest
	case Left:
		s.DX = rest
	case Right:
		s.DX = -rest
	}
	return s
}

// PieceStyle returns the state of piece i of a Letters or Lines element.
func (e *Engine) PieceStyle(el *Element, i int) Style {
	if i < 0 || i >= len(el.pieces) {
		return Shown
	}
	if e.Reduced() || el.instant || el.pieces[i].Plain {
		return Shown
	}
	if !el.revealed {
		return Hidden
	}

	p := el.pieces[i]
	switch el.Mode {
	case Letters:
		length, dist, curve := LetterLength, LetterDistance, EaseLetters
		if el.Variant == VariantHero {
			length, dist, curve = HeroLength, HeroDistance, EaseHero
		}
		v := e.progress(curve, el, el.base+time.Duration(p.Index)*LetterStep, length)
		if v == 1 {
			return Shown
		}
		s := Style{Opacity: clamp01(v), DY: dist * (1 - v), Scale: 1, Drawn: 1}
		if el.Variant == VariantHero {
			s.Scale = HeroScale - (HeroScale-1)*v
		}
		return s
	case Lines:
		v := e.progress(EaseWords, el, el.base+wordDelay(p), WordLength)
		return Style{Opacity: clamp01(v), DY: WordDistance * (1 - v), Scale: 1, Drawn: 1}
	}
	return e.Style(el)
}
