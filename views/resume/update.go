// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package resumeview

import (
	tea "github.com/charmbracelet/bubbletea"

	"metrix/views/view"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		m.ticking = false
		m.advance()
		m.render()
		return m.animate()

	case tea.WindowSizeMsg:
		return m.animate()

	case tea.MouseMsg:
		m.vp, _ = m.vp.Update(msg)
		return m.scrolled()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.vp.LineUp(1)
		case "down", "j":
			m.vp.LineDown(1)
		case "pgup":
			m.vp.HalfPageUp()
		case "pgdown", " ":
			m.vp.HalfPageDown()
		case "home", "g":
			m.vp.GotoTop()
		case "end", "G":
			m.vp.GotoBottom()
		case "m":
			return m.ToggleMotion()
		case "r":
			m.advance()
			m.engine.Reset()
			m.render()
			return m.animate()
		case "esc", "q":
			return view.NavigateTo(view.NameTerminal)
		default:
			return nil
		}
		return m.scrolled()
	}
	return nil
}

func (m *Model) scrolled() tea.Cmd {
	m.advance()
	m.engine.Scroll(m.viewportRect())
	m.render()
	return m.animate()
}
