// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package resumeview

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"metrix/profile"
	"metrix/reveal"
	"metrix/storage"
	metrixlog "metrix/utils/log"
	"metrix/views/view"
)

const (
	ViewName      = view.NameResume
	FrameInterval = 16 * time.Millisecond
	maxPageWidth  = 90
	margin        = 2
)

type frameMsg time.Time

type Options struct {
	Profile              profile.Profile
	Tweener              reveal.Tweener
	PrefersReducedMotion bool
	// Store keeps the motion override; nil disables persistence.
	Store  storage.Store
	Logger *metrixlog.Logger
	// Clock is time.Now unless a test replaces it.
	Clock func() time.Time
}

type Model struct {
	engine      *reveal.Engine
	vp          viewport.Model
	opts        Options
	profileHash string

	start   time.Time
	ticking bool
	active  bool

	log *metrixlog.Logger
}

func New(opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = metrixlog.Nop()
	}
	if opts.Profile == (profile.Profile{}) {
		opts.Profile = profile.Default()
	}
	m := &Model{
		vp:    viewport.New(80, 20),
		opts:  opts,
		start: opts.Clock(),
		log:   opts.Logger.With("view", ViewName),
	}
	override := LoadMotionOverride(context.Background(), opts.Store)
	m.build(opts.Profile, override)
	return m
}

func (m *Model) build(p profile.Profile, override bool) {
	m.engine = reveal.NewEngine(reveal.Options{
		Tweener:              m.opts.Tweener,
		PrefersReducedMotion: m.opts.PrefersReducedMotion,
		Override:             override,
		Logger:               m.opts.Logger,
	})
	m.engine.Add(BuildPage(p)...)
	m.engine.Layout(m.pageWidth())
	m.profileHash = p.Hash()
}

func (m *Model) Name() string           { return ViewName }
func (m *Model) Engine() *reveal.Engine { return m.engine }

func (m *Model) Init() tea.Cmd { return nil }

// SetProfile rebuilds the page when the profile snapshot changed.
func (m *Model) SetProfile(p profile.Profile) tea.Cmd {
	if !p.ChangedSince(m.profileHash) {
		return nil
	}
	m.build(p, m.engine.Override())
	if m.active {
		m.engine.Mount(m.viewportRect())
		m.render()
		return m.animate()
	}
	return nil
}

// SetSize relays the page out. Only the visible view observes the new
// viewport; a hidden one is swept again by OnEnter.
func (m *Model) SetSize(width, height int) {
	m.vp.Width = width
	m.vp.Height = max(height-1, 1)
	m.engine.Layout(m.pageWidth())
	if m.active {
		m.advance()
		m.engine.Scroll(m.viewportRect())
	}
	m.render()
}

func (m *Model) pageWidth() int { return pageWidthFor(m.vp.Width) }

func pageWidthFor(width int) int {
	return max(min(width-2*margin, maxPageWidth), 10)
}

func (m *Model) viewportRect() reveal.Viewport {
	return reveal.Viewport{Offset: m.vp.YOffset, Height: m.vp.Height}
}

// OnEnter mounts the observer; the initial sweep reveals the first screen.
func (m *Model) OnEnter() tea.Cmd {
	m.active = true
	m.advance()
	m.engine.Mount(m.viewportRect())
	m.render()
	return m.animate()
}

func (m *Model) OnExit() tea.Cmd {
	m.active = false
	return nil
}

func (m *Model) ShortHelpItems() []view.HelpEntry {
	return []view.HelpEntry{
		{Key: "↑/↓", Desc: "scroll"},
		{Key: "m", Desc: "toggle motion"},
		{Key: "r", Desc: "replay"},
		{Key: "esc", Desc: "terminal"},
	}
}

func (m *Model) advance() {
	m.engine.Advance(m.opts.Clock().Sub(m.start))
}

// animate keeps frames coming while anything moves.
func (m *Model) animate() tea.Cmd {
	if m.ticking || !m.active || !m.engine.Animating() {
		return nil
	}
	m.ticking = true
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// ToggleMotion flips the override, persists it and replays the page.
func (m *Model) ToggleMotion() tea.Cmd {
	on := !m.engine.Override()
	if err := SaveMotionOverride(context.Background(), m.opts.Store, on); err != nil {
		m.log.Warnw("failed to persist motion override", "error", err)
	}
	m.advance()
	m.engine.SetOverride(on)
	m.log.Debugw("motion override toggled", "override", on, "reduced", m.engine.Reduced())
	m.render()
	return m.animate()
}
