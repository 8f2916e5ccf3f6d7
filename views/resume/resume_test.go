// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package resumeview

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metrix/profile"
	"metrix/reveal"
	"metrix/storage"
	"metrix/views/view"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time      { return c.now }
func (c *clock) Add(d time.Duration) { c.now = c.now.Add(d) }
func newClock() *clock               { return &clock{now: time.Unix(1700000000, 0)} }
func byID(m *Model, id string) *reveal.Element {
	for _, el := range m.Engine().Elements() {
		if el.ID == id {
			return el
		}
	}
	return nil
}

func TestBuildPageCoversSections(t *testing.T) {
	els := BuildPage(profile.Default())
	ids := map[string]bool{}
	for _, el := range els {
		ids[el.ID] = true
	}
	for _, id := range []string{"name", "summary", "heading-skills", "heading-experience", "heading-projects", "contact", "rule-top"} {
		assert.True(t, ids[id], id)
	}
	assert.Equal(t, reveal.VariantHero, els[0].Variant)
}

func TestEnterRevealsFirstScreenAndAnimates(t *testing.T) {
	c := newClock()
	m := New(Options{Tweener: reveal.Native{}, Clock: c.Now})
	m.SetSize(100, 30)

	require.NotNil(t, m.OnEnter())
	name := byID(m, "name")
	require.True(t, name.Revealed())
	assert.False(t, byID(m, "contact").Revealed())
	assert.True(t, m.Engine().Animating())

	c.Add(5 * time.Second)
	assert.Nil(t, m.Update(frameMsg(c.now)))
	assert.False(t, m.Engine().Animating())
	assert.Contains(t, m.View(), "TypeScript · Angular")
}

func TestScrollingRevealsMore(t *testing.T) {
	c := newClock()
	m := New(Options{Tweener: reveal.Native{}, Clock: c.Now})
	m.SetSize(100, 20)
	m.OnEnter()

	contact := byID(m, "contact")
	require.False(t, contact.Revealed())
	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.True(t, contact.Revealed())
}

func TestResizeRevealsAndAnimatesNewRows(t *testing.T) {
	c := newClock()
	m := New(Options{Tweener: reveal.Native{}, Clock: c.Now})
	m.SetSize(100, 12)
	m.OnEnter()
	c.Add(10 * time.Second)
	require.Nil(t, m.Update(frameMsg(c.now)))

	contact := byID(m, "contact")
	require.False(t, contact.Revealed())

	m.SetSize(100, 200)
	assert.True(t, contact.Revealed())
	require.NotNil(t, m.Update(tea.WindowSizeMsg{Width: 100, Height: 200}))

	c.Add(10 * time.Second)
	assert.Nil(t, m.Update(frameMsg(c.now)))
	assert.False(t, m.Engine().Animating())
	assert.Contains(t, m.View(), "Email  you@email.com")
}

func TestResizeWhileHiddenRevealsNothing(t *testing.T) {
	m := New(Options{Tweener: reveal.Native{}, Clock: newClock().Now})
	m.SetSize(100, 200)
	for _, el := range m.Engine().Elements() {
		assert.False(t, el.Revealed(), el.ID)
	}
	assert.Nil(t, m.Update(tea.WindowSizeMsg{Width: 100, Height: 200}))
}

func TestReducedMotionShowsAll(t *testing.T) {
	m := New(Options{PrefersReducedMotion: true, Clock: newClock().Now})
	m.SetSize(100, 20)
	assert.Nil(t, m.OnEnter())
	for _, el := range m.Engine().Elements() {
		assert.True(t, m.Engine().Style(el).Neutral(), el.ID)
	}
	assert.Contains(t, m.View(), "reduced motion")
}

func TestToggleMotionPersistsAndReplays(t *testing.T) {
	store := storage.NewMemory()
	c := newClock()
	m := New(Options{PrefersReducedMotion: true, Store: store, Tweener: reveal.Native{}, Clock: c.Now})
	m.SetSize(100, 40)
	m.OnEnter()

	c.Add(time.Second)
	require.NotNil(t, m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")}))
	assert.False(t, m.Engine().Reduced())
	assert.True(t, LoadMotionOverride(context.Background(), store))
	assert.Zero(t, m.Engine().PieceStyle(byID(m, "summary"), 0).Opacity)

	again := New(Options{PrefersReducedMotion: true, Store: store, Clock: c.Now})
	assert.True(t, again.Engine().Override())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	assert.True(t, m.Engine().Reduced())
	assert.False(t, LoadMotionOverride(context.Background(), store))
}

func TestSetProfileRebuildsOnChange(t *testing.T) {
	m := New(Options{Clock: newClock().Now})
	m.SetSize(100, 40)
	before := m.Engine()

	assert.Nil(t, m.SetProfile(profile.Default()))
	assert.Same(t, before, m.Engine())

	p, err := profile.Update(profile.Default(), "name", "Jane Doe")
	require.NoError(t, err)
	m.SetProfile(p)
	assert.NotSame(t, before, m.Engine())
	assert.Equal(t, "Jane Doe", byID(m, "name").Text)
}

func TestEscNavigatesBack(t *testing.T) {
	m := New(Options{Clock: newClock().Now})
	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, view.NavigateToMsg{ViewName: view.NameTerminal}, cmd())
}

func TestRenderStaticRevealsWholePage(t *testing.T) {
	out := RenderStatic(profile.Default(), 100)
	assert.Contains(t, out, "Email  you@email.com")
	assert.Contains(t, out, "Based  Bangkok, TH")
	assert.Greater(t, strings.Count(out, "\n"), 40)
}
