// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

import tea "github.com/charmbracelet/bubbletea"

type NavigateToMsg struct {
	ViewName string
}

func NavigateTo(name string) tea.Cmd {
	return func() tea.Msg { return NavigateToMsg{ViewName: name} }
}
