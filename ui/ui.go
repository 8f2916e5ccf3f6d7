// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	FrameTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34d399")).
			Bold(true)

	FrameFooterStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#71717a"))

	FrameBorderColor = lipgloss.Color("#3f3f46")
)

// RenderFramedBox draws a rounded frame with the title set into the top
// border on the left and an optional footer on the bottom border.
// If width <= 0, defaults to content width + padding.
// ANSI sequences in content are preserved.
func RenderFramedBox(title, content, footer string, width int) string {
	lines := strings.Split(content, "\n")

	if width <= 0 {
		contentWidth := 0
		for _, l := range lines {
			contentWidth = max(contentWidth, lipgloss.Width(l))
		}
		width = max(contentWidth, lipgloss.Width(title)+2) + 4
	}
	inner := width - 2
	border := lipgloss.NewStyle().Foreground(FrameBorderColor)

	boxLines := make([]string, 0, len(lines)+2)
	boxLines = append(boxLines, border.Render("╭")+edge(title, FrameTitleStyle, inner, border)+border.Render("╮"))

	for _, l := range lines {
		boxLines = append(boxLines, fmt.Sprintf("%s %s %s",
			border.Render("│"),
			padLine(l, inner-2),
			border.Render("│")))
	}

	boxLines = append(boxLines, border.Render("╰")+edge(footer, FrameFooterStyle, inner, border)+border.Render("╯"))
	return strings.Join(boxLines, "\n")
}

// edge is a horizontal border of n cells with an optional label near its
// left end.
func edge(label string, style lipgloss.Style, n int, border lipgloss.Style) string {
	if label == "" || n < lipgloss.Width(label)+4 {
		return border.Render(strings.Repeat("─", max(n, 0)))
	}
	styled := style.Render(" " + label + " ")
	rest := n - 1 - lipgloss.Width(styled)
	return border.Render("─") + styled + border.Render(strings.Repeat("─", rest))
}

// padLine fits a line to width, preserving ANSI sequences
func padLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	l := lipgloss.Width(line)
	if l >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line + strings.Repeat(" ", width-l)
}
