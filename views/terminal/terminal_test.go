// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package terminalview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metrix/commands"
	"metrix/output"
	"metrix/terminal"
	"metrix/views/commandinput"
)

func newModel(t *testing.T) *Model {
	t.Helper()
	m := New(terminal.Options{Builder: commands.Build}, true)
	m.SetSize(100, 40)
	return m
}

func TestBootRendersIntoViewport(t *testing.T) {
	m := newModel(t)
	require.NotNil(t, m.Init())
	require.True(t, m.Session().Booting())

	for i := 0; i <= len([]rune(terminal.BootBanner)); i++ {
		m.Update(TypeTickMsg{ID: 1})
	}
	assert.False(t, m.Session().Busy())

	out := m.View()
	assert.Contains(t, out, commandinput.Prompt)
	assert.Contains(t, out, "export")
}

func TestSubmitRunsCommand(t *testing.T) {
	m := newModel(t)
	m.Update(commandinput.SubmitMsg{Line: "nope"})
	assert.Contains(t, m.View(), "nope: command not found")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Zero(t, m.Session().Len())
}

func TestTypingTicksDriveSession(t *testing.T) {
	m := newModel(t)
	m.Update(commandinput.SubmitMsg{Line: "help"})
	require.True(t, m.Session().Busy())

	// The session numbers jobs from 1 and nothing else is typing.
	for m.Session().Busy() {
		m.Update(TypeTickMsg{ID: 1})
	}
	last := m.Session().Entries()[m.Session().Len()-1]
	assert.Equal(t, terminal.EntryText, last.Kind)
}

func TestReducedMotionHasNoRain(t *testing.T) {
	m := newModel(t)
	assert.Zero(t, m.bandRows())
	assert.Nil(t, m.startRain())
	assert.False(t, m.rain.Running())
}

func TestBlurStopsRain(t *testing.T) {
	m := New(terminal.Options{Builder: commands.Build}, false)
	m.SetSize(100, 40)
	require.NotNil(t, m.startRain())
	assert.True(t, m.rain.Running())

	m.Update(tea.BlurMsg{})
	assert.False(t, m.rain.Running())
	assert.Nil(t, m.Update(rainTickMsg{}))

	assert.NotNil(t, m.Update(tea.FocusMsg{}))
	assert.True(t, m.rain.Running())
	assert.Len(t, strings.Split(m.renderRain(), "\n"), rainRows)
}

func TestRenderBlockKinds(t *testing.T) {
	err := RenderBlock(output.Errorf("export: unsupported format %q", "pdf"), 60)
	assert.Contains(t, err, `"pdf"`)

	assert.Empty(t, RenderBlock(output.Spacer(), 60))

	panel := RenderBlock(output.Panel("Contact", output.L("Email", "you@email.com")), 60)
	assert.Contains(t, panel, "Contact")
	assert.Contains(t, panel, "you@email.com")
	for _, line := range strings.Split(panel, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}

	badges := RenderBlock(output.Badges("Stack", []string{"Go", "React", "PostgreSQL", "Docker"}), 20)
	assert.Greater(t, len(strings.Split(badges, "\n")), 2)
}
