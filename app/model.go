// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"metrix/styles"
	metrixlog "metrix/utils/log"
	resumeview "metrix/views/resume"
	terminalview "metrix/views/terminal"
	"metrix/views/view"
)

// Model holds app state
type Model struct {
	views   map[string]view.View
	order   []string
	current view.View

	version       string
	width, height int

	log *metrixlog.Logger
}

func New(d Deps) *Model {
	if d.Logger == nil {
		d.Logger = metrixlog.Nop()
	}
	if d.Version == "" {
		d.Version = "dev"
	}

	m := &Model{
		views:   map[string]view.View{},
		order:   []string{view.NameTerminal, view.NameResume},
		version: d.Version,
		log:     d.Logger.With("component", "app"),
	}
	factories := registerViews(d)
	for _, name := range m.order {
		m.views[name] = factories[name](80, 20)
	}
	m.current = m.views[view.NameTerminal]
	return m
}

// Init  will be automatically called by Bubble Tea if the model implements the Model interface
// and is passed into the tea.NewProgram function.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("metrix"), m.current.Init(), m.current.OnEnter())
}

func (m *Model) Current() view.View { return m.current }

func (m *Model) terminal() *terminalview.Model {
	t, _ := m.views[view.NameTerminal].(*terminalview.Model)
	return t
}

func (m *Model) resume() *resumeview.Model {
	r, _ := m.views[view.NameResume].(*resumeview.Model)
	return r
}

func (m *Model) switchToView(name string) tea.Cmd {
	next, ok := m.views[name]
	if !ok || next == m.current {
		return nil
	}

	var syncCmd tea.Cmd
	if r := m.resume(); name == view.NameResume && r != nil {
		if t := m.terminal(); t != nil {
			syncCmd = r.SetProfile(t.Session().Profile())
		}
	}

	exitCmd := m.current.OnExit()
	m.current = next
	enterCmd := next.OnEnter()
	m.log.Debugw("switched view", "view", name)

	return tea.Batch(exitCmd, syncCmd, enterCmd)
}

// nextView cycles through the views in order.
func (m *Model) nextView() string {
	for i, name := range m.order {
		if m.views[name] == m.current {
			return m.order[(i+1)%len(m.order)]
		}
	}
	return view.NameTerminal
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.order))
	for _, name := range m.order {
		style := styles.MutedStyle
		if m.views[name] == m.current {
			style = styles.TitleStyle
		}
		parts = append(parts, style.Render(" "+name+" "))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}
