// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func animated(pieces []Piece) []string {
	var out []string
	for _, p := range pieces {
		if !p.Plain {
			out = append(out, p.Text)
		}
	}
	return out
}

func TestLettersSplitsRunes(t *testing.T) {
	el := &Element{Mode: Letters, Text: "Hi"}
	NewEngine(Options{}).Add(el)
	assert.Equal(t, []string{"H", "i"}, animated(el.Pieces()))
	assert.Len(t, el.Pieces(), 2)
}

func TestLettersKeepsWhitespacePlain(t *testing.T) {
	el := &Element{Mode: Letters, Text: "Hi  you"}
	NewEngine(Options{}).Add(el)

	pieces := el.Pieces()
	require.Len(t, pieces, 6)
	assert.Equal(t, Piece{Text: "  ", Plain: true}, pieces[2])
	assert.Equal(t, 4, pieces[5].Index)
	assert.Equal(t, []string{"Hi  you"}, el.Lines())
}

func TestHardBreakKeepsIndentation(t *testing.T) {
	el := &Element{Mode: Up, Text: "Go\n  • fast\n\n    Rust  1", Width: 40}
	NewEngine(Options{}).Add(el)

	assert.Equal(t, []string{"Go", "  • fast", "", "    Rust  1"}, el.Lines())
	assert.Equal(t, Piece{Text: "  ", Plain: true, Line: 1}, el.Pieces()[1])
}

func TestLinesGroupsWordsByVisualLine(t *testing.T) {
	el := &Element{Mode: Lines, Text: "one two three four", Width: 9}
	NewEngine(Options{}).Add(el)

	assert.Equal(t, []string{"one two", "three", "four"}, el.Lines())
	assert.Equal(t, 3, el.Height)

	var got [][2]int
	for _, p := range el.Pieces() {
		if !p.Plain {
			got = append(got, [2]int{p.Line, p.Word})
		}
	}
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 0}, {2, 0}}, got)
}

func TestHardBreaksStartNewLines(t *testing.T) {
	el := &Element{Mode: Fade, Text: "a\n\nb"}
	NewEngine(Options{}).Add(el)
	assert.Equal(t, []string{"a", "", "b"}, el.Lines())
}

func TestParseModeDefaultsUp(t *testing.T) {
	assert.Equal(t, Up, ParseMode(""))
	assert.Equal(t, Up, ParseMode("sideways"))
	assert.Equal(t, LineDraw, ParseMode("LINE-DRAW"))
}

func page(n int, group string) []*Element {
	els := make([]*Element, n)
	for i := range els {
		els[i] = &Element{Mode: Up, Group: group, Text: "row", Gap: 1}
	}
	return els
}

func TestInitialSweepRevealsVisibleOnly(t *testing.T) {
	e := NewEngine(Options{})
	els := page(10, "")
	e.Add(els...)
	e.Mount(Viewport{Offset: 0, Height: 6})

	assert.True(t, els[0].Revealed())
	assert.True(t, els[2].Revealed())
	assert.False(t, els[3].Revealed())
	assert.Equal(t, Hidden, e.Style(els[3]))
}

func TestScrollTriggersWithInset(t *testing.T) {
	e := NewEngine(Options{})
	els := page(10, "")
	e.Add(els...)
	e.Mount(Viewport{Offset: 0, Height: 4})

	// el[2] sits on row 5, below a 4 row viewport.
	require.False(t, els[2].Revealed())
	e.Scroll(Viewport{Offset: 2, Height: 4})
	assert.True(t, els[2].Revealed())

	// With height 20 the inset is 2 rows: row 18 is outside the trigger area.
	e2 := NewEngine(Options{})
	el := &Element{Mode: Up, Text: "x", Gap: 18}
	e2.Add(el)
	e2.observer = NewObserver()
	e2.observer.Observe(el)
	e2.Scroll(Viewport{Offset: 0, Height: 20})
	assert.False(t, el.Revealed())
	e2.Scroll(Viewport{Offset: 1, Height: 20})
	assert.True(t, el.Revealed())
}

func TestRevealedElementIsNotAnimatedAgain(t *testing.T) {
	e := NewEngine(Options{})
	el := &Element{Mode: Up, Text: "once"}
	e.Add(el)
	e.Mount(Viewport{Height: 5})
	require.True(t, el.Revealed())
	start := el.start

	e.Advance(time.Second)
	e.animateOnce(el)
	e.Scroll(Viewport{Height: 5})
	assert.Equal(t, start, el.start)
	assert.True(t, e.Style(el).Neutral())
}

func TestDirectionalAnimationSettles(t *testing.T) {
	for _, tw := range []Tweener{Native{}, NewTweener(TweenerSpring, nil)} {
		e := NewEngine(Options{Tweener: tw})
		el := &Element{Mode: Left, Text: "slide"}
		e.Add(el)
		e.Mount(Viewport{Height: 5})

		s := e.Style(el)
		assert.Zero(t, s.Opacity, tw.Name())
		assert.Equal(t, Distance, s.DX, tw.Name())
		assert.True(t, e.Animating())

		e.Advance(DirectionalLength / 2)
		mid := e.Style(el)
		assert.Greater(t, mid.Opacity, 0.0, tw.Name())
		assert.Less(t, mid.DX, Distance, tw.Name())

		e.Advance(DirectionalLength)
		assert.True(t, e.Style(el).Neutral(), tw.Name())
		assert.False(t, e.Animating())
	}
}

func TestGroupStaggerIsCapped(t *testing.T) {
	e := NewEngine(Options{})
	els := page(12, "cards")
	e.Add(els...)
	e.Mount(Viewport{Height: 100})

	assert.Equal(t, time.Duration(0), els[0].base)
	assert.Equal(t, 150*time.Millisecond, els[3].base)
	assert.Equal(t, MaxGroupDelay, els[11].base)
}

func TestLettersStagger(t *testing.T) {
	e := NewEngine(Options{})
	el := &Element{Mode: Letters, Text: "Hi"}
	e.Add(el)
	e.Mount(Viewport{Height: 5})

	e.Advance(LetterStep)
	first, second := e.PieceStyle(el, 0), e.PieceStyle(el, 1)
	assert.Greater(t, first.Opacity, 0.0)
	assert.Zero(t, second.Opacity)
	assert.Equal(t, LetterDistance, second.DY)

	e.Advance(LetterStep + LetterLength)
	assert.True(t, e.PieceStyle(el, 1).Neutral())
	assert.False(t, e.Animating())
}

func TestHeroScalesDown(t *testing.T) {
	e := NewEngine(Options{})
	el := &Element{Mode: Letters, Variant: VariantHero, Text: "A"}
	e.Add(el)
	e.Mount(Viewport{Height: 5})

	assert.Equal(t, HeroScale, e.PieceStyle(el, 0).Scale)
	assert.Equal(t, HeroDistance, e.PieceStyle(el, 0).DY)
	e.Advance(HeroLength)
	assert.True(t, e.PieceStyle(el, 0).Neutral())
}

func TestLineDraw(t *testing.T) {
	e := NewEngine(Options{})
	el := &Element{Mode: LineDraw, Width: 10}
	e.Add(el)
	e.Mount(Viewport{Height: 5})

	assert.Zero(t, e.Style(el).Drawn)
	e.Advance(DrawFadeDuration)
	s := e.Style(el)
	assert.Equal(t, 1.0, s.Opacity)
	assert.Less(t, s.Drawn, 1.0)
	e.Advance(DrawLength)
	assert.True(t, e.Style(el).Neutral())
}

func TestReducedMotionShowsEverythingAtOnce(t *testing.T) {
	e := NewEngine(Options{PrefersReducedMotion: true})
	els := []*Element{
		{Mode: Letters, Text: "Hi there"},
		{Mode: Lines, Text: "a b c", Gap: 40},
		{Mode: Right, Text: "card"},
		{Mode: LineDraw, Width: 4},
	}
	e.Add(els...)
	e.Mount(Viewport{Height: 5})

	for _, el := range els {
		assert.True(t, e.Style(el).Neutral())
		for i := range el.Pieces() {
			assert.True(t, e.PieceStyle(el, i).Neutral())
		}
	}
	assert.Len(t, animated(els[0].Pieces()), 7)
	assert.False(t, e.Animating())
}

func TestOverrideResetReplays(t *testing.T) {
	e := NewEngine(Options{PrefersReducedMotion: true})
	el := &Element{Mode: Up, Text: "x"}
	e.Add(el)
	e.Mount(Viewport{Height: 5})
	require.True(t, el.instant)

	e.Advance(time.Second)
	e.SetOverride(true)
	assert.False(t, e.Reduced())
	assert.True(t, el.Revealed())
	assert.False(t, el.instant)
	assert.Equal(t, time.Second, el.start)
	assert.Zero(t, e.Style(el).Opacity)

	e.SetOverride(false)
	assert.True(t, e.Style(el).Neutral())
}

func TestNoObserverRevealsAll(t *testing.T) {
	e := NewEngine(Options{NoObserver: true})
	els := page(50, "")
	e.Add(els...)
	e.Mount(Viewport{Height: 3})
	for _, el := range els {
		assert.True(t, el.Revealed())
		assert.True(t, e.Style(el).Neutral())
	}
}

func TestRenderKeepsHeight(t *testing.T) {
	e := NewEngine(Options{})
	el := &Element{Mode: Up, Text: "alpha beta gamma", Width: 6}
	e.Add(el)
	e.Mount(Viewport{Height: 10})

	rows := e.Render(el, DefaultPalette)
	assert.Len(t, rows, el.Height)

	e.Advance(DirectionalLength)
	rows = e.Render(el, DefaultPalette)
	require.Len(t, rows, 3)
	assert.Contains(t, rows[0], "alpha")
}

func TestCurveEndpoints(t *testing.T) {
	for _, c := range []Curve{Linear, EaseOut, EaseHero, EaseWords, EaseDraw} {
		assert.Zero(t, c.At(0))
		assert.Equal(t, 1.0, c.At(1))
	}
	assert.InDelta(t, 0.5, Linear.At(0.5), 1e-9)
	assert.Greater(t, EaseOut.At(0.3), 0.3)
	assert.True(t, EaseHero.Overshoots())
}

func TestNewTweenerFallsBack(t *testing.T) {
	assert.Equal(t, TweenerSpring, NewTweener("", nil).Name())
	assert.Equal(t, TweenerNative, NewTweener("native", nil).Name())
	assert.Equal(t, TweenerNative, NewTweener("anime", nil).Name())
}
