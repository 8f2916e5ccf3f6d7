// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package terminalview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"metrix/ambient"
	"metrix/styles"
	"metrix/ui"
)

func (m *Model) View() string {
	parts := make([]string, 0, 3)
	if band := m.renderRain(); band != "" {
		parts = append(parts, band)
	}
	parts = append(parts, m.vp.View(), m.input.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// refresh re-renders the log into the viewport.
func (m *Model) refresh(follow bool) {
	caret := ui.CaretAt(m.caretFrame)
	entries := m.session.Entries()
	rows := make([]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, RenderEntry(e, m.vp.Width, caret))
	}
	m.vp.SetContent(strings.Join(rows, "\n"))
	if follow {
		m.vp.GotoBottom()
	}
}

func (m *Model) renderRain() string {
	if m.bandRows() == 0 {
		return ""
	}
	rows := m.rain.Cells()
	if len(rows) == 0 {
		return ""
	}

	levels := styles.RainLevels
	var sb strings.Builder
	for y, row := range rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c.Level == 0 {
				sb.WriteByte(' ')
				continue
			}
			shade := (c.Level - 1) * (len(levels) - 1) / max(ambient.MaxLevel()-1, 1)
			sb.WriteString(lipgloss.NewStyle().Foreground(levels[shade]).Render(string(c.Rune)))
		}
	}
	return sb.String()
}
