// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package styles

import "github.com/charmbracelet/lipgloss"

// Palette of the dark terminal theme.
const (
	Foreground = "#d4d4d8"
	Background = "#09090b"
	Accent     = "#34d399"
	Muted      = "#71717a"
	Danger     = "#f87171"
	Warn       = "#fbbf24"
	Info       = "#60a5fa"
)

var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Accent)).
			Bold(true)

	EchoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Foreground))

	TextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Foreground))

	StrongStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fafafa")).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Muted))

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Accent)).
			Bold(true)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Accent)).
			Background(lipgloss.Color("#022c22")).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Danger)).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(Danger)).
			PaddingLeft(1)

	WarningStyle = ErrorStyle.
			Foreground(lipgloss.Color(Warn)).
			BorderForeground(lipgloss.Color(Warn))

	SuccessStyle = ErrorStyle.
			Foreground(lipgloss.Color(Accent)).
			BorderForeground(lipgloss.Color(Accent))

	CaretStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Accent))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Muted)).
			Italic(true)
)

// RainLevels are the matrix rain shades, dimmest first.
var RainLevels = []lipgloss.Color{"#052e16", "#065f46", "#047857", "#059669", "#10b981", "#a7f3d0"}
