// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package helpbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"metrix/views/view"
)

type Model struct {
	globalHelp  []view.HelpEntry
	viewHelp    []view.HelpEntry
	width       int
	minColWidth int
}

const (
	defaultMinColWidth = 18
	rowsPerColumn      = 3
)

func New(width int) *Model {
	return &Model{
		globalHelp:  []view.HelpEntry{{Key: "ctrl+d", Desc: "quit"}},
		width:       width,
		minColWidth: defaultMinColWidth,
	}
}

func (m *Model) WithGlobalHelp(entries []view.HelpEntry) *Model {
	m.globalHelp = entries
	return m
}

func (m *Model) WithViewHelp(entries []view.HelpEntry) *Model {
	m.viewHelp = entries
	return m
}

// View renders the title on the left, the key columns and the logo on the
// right. Columns that do not fit are dropped.
func (m *Model) View(title string) string {
	allHelp := append(append([]view.HelpEntry{}, m.globalHelp...), m.viewHelp...)

	logo := logoStyle.Render(logoText)
	titleWidth := lipgloss.Width(title)
	availableWidth := m.width - titleWidth - lipgloss.Width(logo) - 2
	if availableWidth < m.minColWidth || len(allHelp) == 0 {
		if m.width-titleWidth-2 >= lipgloss.Width(logo) {
			return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", logo)
		}
		return title
	}

	numCols := (len(allHelp) + rowsPerColumn - 1) / rowsPerColumn
	numCols = min(numCols, max(availableWidth/m.minColWidth, 1))

	// Fill columns top-to-bottom
	columns := make([][]view.HelpEntry, numCols)
	for i, entry := range allHelp {
		col := i / rowsPerColumn
		if col >= numCols {
			break
		}
		columns[col] = append(columns[col], entry)
	}

	var renderedCols []string
	for colIdx, col := range columns {
		maxKeyLen := 0
		for _, entry := range col {
			maxKeyLen = max(maxKeyLen, lipgloss.Width("<"+entry.Key+">"))
		}

		lines := make([]string, 0, len(col))
		for _, entry := range col {
			keyText := "<" + entry.Key + ">"
			padding := maxKeyLen - lipgloss.Width(keyText)
			lines = append(lines, keyStyle.Render(keyText)+strings.Repeat(" ", padding+1)+Style.Render(entry.Desc))
		}

		if colIdx > 0 {
			renderedCols = append(renderedCols, "   ")
		}
		renderedCols = append(renderedCols, strings.Join(lines, "\n"))
	}

	helpAligned := lipgloss.NewStyle().
		Width(availableWidth).
		Align(lipgloss.Left).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, renderedCols...))

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", helpAligned, logo)
}
