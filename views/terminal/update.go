// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package terminalview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"metrix/ambient"
	"metrix/ui"
	"metrix/views/commandinput"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case TypeTickMsg:
		follow := m.vp.AtBottom()
		m.session.Tick(msg.ID)
		m.refresh(follow)
		return tea.Batch(m.sched.drain(), m.startCaret())

	case commandinput.SubmitMsg:
		m.session.Submit(msg.Line)
		m.refresh(true)
		return tea.Batch(m.sched.drain(), m.startCaret())

	case commandinput.CancelMsg:
		return nil

	case caretTickMsg:
		m.caretFrame++
		if !m.session.Busy() {
			m.caretTicking = false
			m.refresh(m.vp.AtBottom())
			return nil
		}
		m.refresh(m.vp.AtBottom())
		return tea.Tick(ui.CaretInterval, func(t time.Time) tea.Msg { return caretTickMsg(t) })

	case rainTickMsg:
		if !m.rain.Running() {
			m.rainTicking = false
			return nil
		}
		m.rain.Step()
		return tea.Tick(ambient.FrameInterval, func(t time.Time) tea.Msg { return rainTickMsg(t) })

	case tea.FocusMsg:
		m.focused = true
		return m.startRain()

	case tea.BlurMsg:
		m.focused = false
		m.rain.Stop()
		return nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+r":
		if m.session.Replay() {
			m.log.Debugw("replaying boot script")
		}
		m.refresh(true)
		return tea.Batch(m.sched.drain(), m.startCaret())
	case "ctrl+l":
		m.session.Clear()
		m.refresh(true)
		return m.sched.drain()
	case "pgup":
		m.vp.HalfPageUp()
		return nil
	case "pgdown":
		m.vp.HalfPageDown()
		return nil
	}
	return m.input.Update(msg)
}
