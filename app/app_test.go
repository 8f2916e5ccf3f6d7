// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metrix/commands"
	"metrix/terminal"
	resumeview "metrix/views/resume"
	terminalview "metrix/views/terminal"
	"metrix/views/view"
)

func newApp(t *testing.T) *Model {
	t.Helper()
	m := New(Deps{
		Terminal:      terminal.Options{Builder: commands.Build},
		Resume:        resumeview.Options{PrefersReducedMotion: true},
		ReducedMotion: true,
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func TestStartsOnTerminal(t *testing.T) {
	m := newApp(t)
	assert.Equal(t, view.NameTerminal, m.Current().Name())
	assert.Contains(t, m.View(), "metrix@resume")
}

func TestCtrlPSwitchesViews(t *testing.T) {
	m := newApp(t)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, view.NameResume, m.Current().Name())
	assert.Contains(t, m.View(), "reduced motion")

	m.Update(view.NavigateToMsg{ViewName: view.NameTerminal})
	assert.Equal(t, view.NameTerminal, m.Current().Name())
}

func TestResumeFollowsProfileEdits(t *testing.T) {
	m := newApp(t)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})

	m.terminal().Session().Submit("set name Jane Doe")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, "Jane Doe", m.resume().Engine().Elements()[0].Text)
}

func TestTicksReachBackgroundViews(t *testing.T) {
	m := newApp(t)
	m.terminal().Session().Submit("help")
	require.True(t, m.terminal().Session().Busy())
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})

	for i := 0; i < 5000 && m.terminal().Session().Busy(); i++ {
		m.Update(terminalview.TypeTickMsg{ID: 1})
	}
	assert.False(t, m.terminal().Session().Busy())
}

func TestCtrlDQuits(t *testing.T) {
	m := newApp(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
