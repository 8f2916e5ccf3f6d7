// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package reveal drives one-shot entrance animations for page elements as
// they scroll into view. Time is an engine clock advanced by the caller, so
// the engine itself never starts timers.
package reveal

import (
	"time"

	metrixlog "metrix/utils/log"
)

const (
	GroupStep     = 50 * time.Millisecond
	MaxGroupDelay = 400 * time.Millisecond
	LetterStep    = 22 * time.Millisecond
	LineStep      = 120 * time.Millisecond
	WordStep      = 16 * time.Millisecond

	Distance          = 24.0
	DirectionalLength = 700 * time.Millisecond

	LetterLength     = 800 * time.Millisecond
	LetterDistance   = 16.0
	HeroLength       = 900 * time.Millisecond
	HeroDistance     = 24.0
	HeroScale        = 1.08
	WordLength       = 600 * time.Millisecond
	WordDistance     = 6.0
	DrawLength       = 1000 * time.Millisecond
	DrawFadeDuration = 300 * time.Millisecond
)

type Options struct {
	Tweener Tweener
	// PrefersReducedMotion is the platform preference.
	PrefersReducedMotion bool
	// Override inverts the preference when set.
	Override bool
	// NoObserver reveals every element at mount, for rendering without a
	// scrolling viewport.
	NoObserver bool
	Logger     *metrixlog.Logger
}

type Engine struct {
	elements []*Element
	observer *Observer
	viewport Viewport
	mounted  bool

	tween          Tweener
	prefersReduced bool
	override       bool
	noObserver     bool

	now time.Duration
	log *metrixlog.Logger
}

func NewEngine(opts Options) *Engine {
	if opts.Tweener == nil {
		opts.Tweener = Native{}
	}
	if opts.Logger == nil {
		opts.Logger = metrixlog.Nop()
	}
	return &Engine{
		tween:          opts.Tweener,
		prefersReduced: opts.PrefersReducedMotion,
		override:       opts.Override,
		noObserver:     opts.NoObserver,
		log:            opts.Logger.With("component", "reveal"),
	}
}

// Add registers elements in document order.
func (e *Engine) Add(els ...*Element) {
	for _, el := range els {
		el.Mode = ParseMode(string(el.Mode))
		el.layout(el.Width)
		e.elements = append(e.elements, el)
		if e.mounted && e.observer != nil && !el.revealed {
			e.observer.Observe(el)
		}
	}
	e.place()
}

func (e *Engine) Elements() []*Element { return e.elements }
func (e *Engine) Tweener() Tweener     { return e.tween }
func (e *Engine) Now() time.Duration   { return e.now }
func (e *Engine) Override() bool       { return e.override }

// Reduced reports whether animations are skipped.
func (e *Engine) Reduced() bool { return e.prefersReduced && !e.override }

// Layout wraps every element to width and stacks them top to bottom.
func (e *Engine) Layout(width int) {
	for _, el := range e.elements {
		el.layout(width)
	}
	e.place()
}

func (e *Engine) place() {
	row := 0
	for _, el := range e.elements {
		row += el.Gap
		el.Top = row
		row += el.Height
	}
}

// PageHeight is the number of rows the laid out page occupies.
func (e *Engine) PageHeight() int {
	if len(e.elements) == 0 {
		return 0
	}
	return e.elements[len(e.elements)-1].Bottom()
}

// Mount observes every unrevealed element and sweeps the viewport once.
// Without observer support everything is revealed immediately.
func (e *Engine) Mount(v Viewport) {
	e.viewport = v
	e.mounted = true

	if e.noObserver {
		for _, el := range e.elements {
			el.revealed, el.instant = true, true
		}
		e.log.Debugw("no observer, revealed all", "elements", len(e.elements))
		return
	}

	if e.observer != nil {
		e.observer.Disconnect()
	}
	e.observer = NewObserver()
	for _, el := range e.elements {
		if !el.revealed {
			e.observer.Observe(el)
		}
	}

	for _, el := range e.elements {
		if el.revealed || !v.Contains(el) {
			continue
		}
		e.observer.Unobserve(el)
		e.animateOnce(el)
	}
	e.log.Debugw("observer mounted", "elements", len(e.elements), "watching", e.observer.Len())
}

// Scroll moves the viewport and triggers elements entering it.
func (e *Engine) Scroll(v Viewport) {
	e.viewport = v
	if e.observer == nil {
		return
	}
	for _, el := range e.observer.Intersecting(v) {
		e.observer.Unobserve(el)
		e.animateOnce(el)
	}
}

// Advance moves the engine clock forward.
func (e *Engine) Advance(now time.Duration) {
	if now > e.now {
		e.now = now
	}
}

// SetOverride stores the user's motion choice and replays the page.
func (e *Engine) SetOverride(on bool) {
	if e.override == on {
		return
	}
	e.override = on
	e.Reset()
}

// Reset clears every revealed flag and mounts the observer again so the
// animations replay.
func (e *Engine) Reset() {
	for _, el := range e.elements {
		el.revealed, el.instant = false, false
		el.start, el.base = 0, 0
	}
	e.log.Debugw("reveal reset", "reduced", e.Reduced())
	if e.mounted {
		e.Mount(e.viewport)
	}
}

func (e *Engine) animateOnce(el *Element) {
	if el.revealed {
		return
	}
	el.revealed = true
	el.start = e.now
	el.base = e.groupDelay(el)
	el.instant = e.Reduced()
}

func (e *Engine) groupDelay(el *Element) time.Duration {
	if el.Group == "" {
		return 0
	}
	idx := 0
	for _, other := range e.elements {
		if other == el {
			break
		}
		if other.Group == el.Group {
			idx++
		}
	}
	return min(MaxGroupDelay, time.Duration(idx)*GroupStep)
}

// Animating reports whether any revealed element is still moving.
func (e *Engine) Animating() bool {
	for _, el := range e.elements {
		if el.revealed && !el.instant && e.now < el.start+e.finish(el) {
			return true
		}
	}
	return false
}

// finish is the time from reveal until the last piece settles.
func (e *Engine) finish(el *Element) time.Duration {
	switch el.Mode {
	case Letters:
		last := 0
		for _, p := range el.pieces {
			if !p.Plain {
				last = p.Index
			}
		}
		length := LetterLength
		if el.Variant == VariantHero {
			length = HeroLength
		}
		return el.base + time.Duration(last)*LetterStep + length
	case Lines:
		var end time.Duration
		for _, p := range el.pieces {
			if !p.Plain {
				end = max(end, wordDelay(p))
			}
		}
		return el.base + end + WordLength
	case LineDraw:
		return el.base + DrawLength
	default:
		return el.base + DirectionalLength
	}
}

func wordDelay(p Piece) time.Duration {
	return time.Duration(p.Line)*LineStep + time.Duration(p.Word)*WordStep
}
