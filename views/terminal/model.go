// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package terminalview

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"metrix/ambient"
	"metrix/terminal"
	"metrix/ui"
	metrixlog "metrix/utils/log"
	"metrix/views/commandinput"
	"metrix/views/view"
)

const (
	ViewName  = view.NameTerminal
	rainRows  = 3
	inputRows = 2
)

type (
	caretTickMsg time.Time
	rainTickMsg  time.Time
)

type Model struct {
	session *terminal.Session
	sched   *teaScheduler
	input   *commandinput.Model
	vp      viewport.Model
	rain    *ambient.Rain

	width, height int
	reduced       bool
	focused       bool

	caretFrame   int
	caretTicking bool
	rainTicking  bool

	log *metrixlog.Logger
}

// New builds the terminal view. The session is created here so that its
// scheduler is the program loop; opts.Scheduler is ignored.
func New(opts terminal.Options, reducedMotion bool) *Model {
	sched := &teaScheduler{}
	opts.Scheduler = sched
	if opts.SelfTest == nil {
		opts.SelfTest = &terminal.Policy{Charset: ambient.Charset, InitialSpeed: ambient.BaseSpeed}
	}
	log := opts.Logger
	if log == nil {
		log = metrixlog.Nop()
	}

	s := terminal.New(opts)
	m := &Model{
		session: s,
		sched:   sched,
		vp:      viewport.New(80, 20),
		rain:    ambient.New(time.Now().UnixNano()),
		reduced: reducedMotion,
		focused: true,
		log:     log.With("view", ViewName),
	}
	m.input = commandinput.New(func(prefix string) []string {
		return m.session.Registry().Suggest(prefix)
	})
	return m
}

func (m *Model) Name() string               { return ViewName }
func (m *Model) Session() *terminal.Session { return m.session }

func (m *Model) Init() tea.Cmd {
	m.session.Boot()
	m.refresh(true)
	return tea.Batch(m.input.Focus(), m.sched.drain(), m.startCaret(), m.startRain())
}

func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height

	band := m.bandRows()
	m.vp.Width = width
	m.vp.Height = max(height-band-inputRows, 1)
	m.input.SetWidth(width)
	m.rain.Resize(width, band)
	m.refresh(m.vp.AtBottom())
}

func (m *Model) bandRows() int {
	if m.reduced || m.height < 12 {
		return 0
	}
	return rainRows
}

func (m *Model) OnEnter() tea.Cmd {
	m.focused = true
	return tea.Batch(m.input.Focus(), m.startRain())
}

func (m *Model) OnExit() tea.Cmd {
	m.input.Blur()
	m.rain.Stop()
	return nil
}

func (m *Model) ShortHelpItems() []view.HelpEntry {
	return []view.HelpEntry{
		{Key: "enter", Desc: "run"},
		{Key: "tab", Desc: "complete"},
		{Key: "ctrl+c", Desc: "cancel line"},
		{Key: "ctrl+r", Desc: "replay demo"},
		{Key: "ctrl+l", Desc: "clear"},
		{Key: "pgup/pgdn", Desc: "scroll"},
	}
}

func (m *Model) startCaret() tea.Cmd {
	if m.caretTicking || !m.session.Busy() {
		return nil
	}
	m.caretTicking = true
	return tea.Tick(ui.CaretInterval, func(t time.Time) tea.Msg { return caretTickMsg(t) })
}

// startRain resumes the matrix band unless motion is reduced or the
// window is not focused.
func (m *Model) startRain() tea.Cmd {
	if m.reduced || !m.focused {
		m.rain.Stop()
		return nil
	}
	m.rain.Start()
	if m.rainTicking {
		return nil
	}
	m.rainTicking = true
	return tea.Tick(ambient.FrameInterval, func(t time.Time) tea.Msg { return rainTickMsg(t) })
}
