// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"metrix/ui"
	"metrix/views/view"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		spec := ui.ComputeFrameDimensions(msg.Width, msg.Height, m.header(), "")
		for _, v := range m.views {
			v.SetSize(spec.FrameWidth, spec.FrameHeight)
		}
		return m, m.current.Update(msg)

	case view.NavigateToMsg:
		return m, m.switchToView(msg.ViewName)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+d":
			return m, tea.Quit
		case "ctrl+p":
			return m, m.switchToView(m.nextView())
		}
		return m, m.current.Update(msg)

	case tea.MouseMsg:
		return m, m.current.Update(msg)
	}

	// Timers and focus changes belong to whichever view started them, so
	// every view sees them and ignores what is not its own.
	cmds := make([]tea.Cmd, 0, len(m.order))
	for _, name := range m.order {
		cmds = append(cmds, m.views[name].Update(msg))
	}
	return m, tea.Batch(cmds...)
}
