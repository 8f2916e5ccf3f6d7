// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

import tea "github.com/charmbracelet/bubbletea"

// HelpEntry is one key binding shown in the help bar.
type HelpEntry struct {
	Key  string
	Desc string
}

type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	Name() string

	// SetSize gives the view its content area.
	SetSize(width, height int)
	OnEnter() tea.Cmd
	OnExit() tea.Cmd
	ShortHelpItems() []HelpEntry
}
