// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"metrix/styles"
)

// Prompt is shown in front of the input line.
const Prompt = "metrix@resume:~$ "

const historyLimit = 100

// Model is the always-visible command line at the bottom of the terminal.
type Model struct {
	input   textinput.Model
	suggest Suggester
	history []string
	histPos int
	hint    string
	hintFor string
}

func New(suggest Suggester) *Model {
	ti := textinput.New()
	ti.Prompt = Prompt
	ti.PromptStyle = styles.PromptStyle
	ti.TextStyle = styles.TextStyle
	ti.CharLimit = 256
	ti.Focus() // ensures cursor state initialized properly

	return &Model{input: ti, suggest: suggest}
}

func (m *Model) Value() string { return m.input.Value() }

func (m *Model) SetWidth(width int) { m.input.Width = max(width-len(Prompt)-1, 1) }

func (m *Model) Focus() tea.Cmd {
	m.input.Focus()
	return textinput.Blink
}

func (m *Model) Blur() { m.input.Blur() }

func (m *Model) Focused() bool { return m.input.Focused() }

// History returns submitted lines, oldest first.
func (m *Model) History() []string {
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}

func (m *Model) remember(line string) {
	if line == "" {
		return
	}
	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
	}
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
	m.histPos = len(m.history)
}
