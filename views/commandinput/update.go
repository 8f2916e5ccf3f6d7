// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.input.Focused() {
		return nil
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			line := m.input.Value()
			m.remember(strings.TrimSpace(line))
			m.input.Reset()
			m.clearHint()
			return func() tea.Msg { return SubmitMsg{Line: line} }

		case "ctrl+c":
			line := m.input.Value()
			m.input.Reset()
			m.histPos = len(m.history)
			m.clearHint()
			return func() tea.Msg { return CancelMsg{Line: line} }

		case "up":
			if len(m.history) == 0 {
				return nil
			}
			if m.histPos > 0 {
				m.histPos--
			}
			m.input.SetValue(m.history[m.histPos])
			m.input.CursorEnd()
			return nil

		case "down":
			if len(m.history) == 0 {
				return nil
			}
			if m.histPos < len(m.history)-1 {
				m.histPos++
				m.input.SetValue(m.history[m.histPos])
			} else {
				m.histPos = len(m.history)
				m.input.Reset()
			}
			m.input.CursorEnd()
			return nil

		case "tab":
			m.complete()
			return nil

		default:
			// Clear the hint when the user edits
			if msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace {
				m.clearHint()
			}
		}
	}

	m.input, cmd = m.input.Update(msg)
	return cmd
}

// complete fills in a unique command name, or lists the candidates.
func (m *Model) complete() {
	if m.suggest == nil {
		return
	}
	value := m.input.Value()
	if strings.ContainsAny(strings.TrimLeft(value, " "), " \t") {
		return
	}
	prefix := strings.TrimSpace(value)
	matches := m.suggest(prefix)
	switch len(matches) {
	case 0:
		m.hint, m.hintFor = "no matching command", prefix
	case 1:
		m.input.SetValue(matches[0] + " ")
		m.input.CursorEnd()
		m.clearHint()
	default:
		m.input.SetValue(commonPrefix(matches))
		m.input.CursorEnd()
		m.hint, m.hintFor = strings.Join(matches, "  "), prefix
	}
}

func (m *Model) clearHint() { m.hint, m.hintFor = "", "" }

func commonPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}
	p := words[0]
	for _, w := range words[1:] {
		for !strings.HasPrefix(w, p) {
			p = p[:len(p)-1]
		}
	}
	return p
}
