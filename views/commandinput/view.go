// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

import (
	"metrix/styles"
	"metrix/utils"
)

// View renders the input line and the completion hint below it, if any.
func (m *Model) View() string {
	view := m.input.View()
	if m.hint == "" {
		return view
	}
	hint := utils.HighlightMatches(m.hint, m.hintFor, utils.FindAllMatches(m.hint, m.hintFor))
	return view + "\n" + styles.HelpStyle.Render(hint)
}

// Hint is the current completion hint.
func (m *Model) Hint() string { return m.hint }
