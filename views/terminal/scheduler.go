// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package terminalview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"metrix/terminal"
)

// TypeTickMsg advances one typing effect.
type TypeTickMsg struct {
	ID terminal.JobID
}

// teaScheduler turns scheduled ticks into tea.Tick commands. The commands
// are collected and handed back from Update, so ticks arrive on the
// program loop.
type teaScheduler struct {
	pending []tea.Cmd
}

func (s *teaScheduler) After(d time.Duration, id terminal.JobID) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return TypeTickMsg{ID: id}
	}))
}

func (s *teaScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
