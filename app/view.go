// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"github.com/charmbracelet/lipgloss"

	"metrix/styles"
	"metrix/views/helpbar"
	"metrix/views/view"
)

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), m.current.View())
}

func (m *Model) header() string {
	title := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		styles.MutedStyle.Render(" "+m.version),
	)
	return helpbar.New(m.width).
		WithGlobalHelp([]view.HelpEntry{{Key: "ctrl+d", Desc: "quit"}, {Key: "ctrl+p", Desc: "switch view"}}).
		WithViewHelp(m.current.ShortHelpItems()).
		View(title)
}
