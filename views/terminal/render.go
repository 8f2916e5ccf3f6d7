// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package terminalview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"metrix/output"
	"metrix/styles"
	"metrix/terminal"
	"metrix/ui"
)

const maxPanelWidth = 96

// RenderEntry styles one output log slot. caret is drawn after text that
// is still being typed.
func RenderEntry(e terminal.Entry, width int, caret string) string {
	switch e.Kind {
	case terminal.EntryTyping:
		return wrap(styles.TextStyle.Render(e.Text)+styles.CaretStyle.Render(caret), width)
	case terminal.EntryText:
		return wrap(styles.TextStyle.Render(e.Text), width)
	default:
		return RenderBlock(e.Block, width)
	}
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

// RenderBlock styles a structured output block.
func RenderBlock(b output.Block, width int) string {
	switch b.Kind {
	case output.KindSpacer:
		return ""
	case output.KindEcho:
		return renderEcho(b)
	case output.KindError:
		return styles.ErrorStyle.Width(max(width-2, 1)).Render(plainLines(b.Lines))
	case output.KindWarning:
		return styles.WarningStyle.Width(max(width-2, 1)).Render(plainLines(b.Lines))
	case output.KindSuccess:
		return styles.SuccessStyle.Width(max(width-2, 1)).Render(plainLines(b.Lines))
	case output.KindPreformatted:
		return plainLines(b.Lines)
	case output.KindBadges:
		return renderBadges(b, width)
	}

	if len(b.Children) > 0 {
		parts := make([]string, 0, len(b.Children)+1)
		if len(b.Lines) > 0 || b.Title != "" {
			parts = append(parts, renderPanel(b, width))
		}
		for _, c := range b.Children {
			parts = append(parts, RenderBlock(c, width))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return renderPanel(b, width)
}

func renderEcho(b output.Block) string {
	if len(b.Lines) == 0 {
		return ""
	}
	l := b.Lines[0]
	return styles.PromptStyle.Render(l.Strong) + " " + styles.EchoStyle.Render(l.Text)
}

func plainLines(lines []output.Line) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, styledLine(l, lipgloss.NewStyle(), lipgloss.NewStyle()))
	}
	return strings.Join(out, "\n")
}

func styledLine(l output.Line, strong, text lipgloss.Style) string {
	switch {
	case l.Strong != "" && l.Text != "":
		return strong.Render(l.Strong) + " " + text.Render(l.Text)
	case l.Strong != "":
		return strong.Render(l.Strong)
	default:
		return text.Render(l.Text)
	}
}

func renderPanel(b output.Block, width int) string {
	frame := min(width, maxPanelWidth)
	inner := max(frame-4, 1)

	rows := make([]string, 0, len(b.Lines))
	for _, l := range b.Lines {
		line := styledLine(l, styles.StrongStyle, styles.TextStyle)
		rows = append(rows, lipgloss.NewStyle().Width(inner).Render(line))
	}
	return ui.RenderFramedBox(b.Title, strings.Join(rows, "\n"), "", frame)
}

func renderBadges(b output.Block, width int) string {
	var rows []string
	if b.Title != "" {
		rows = append(rows, styles.MutedStyle.Render(b.Title))
	}

	var row []string
	used := 0
	for _, item := range b.Badges {
		badge := styles.BadgeStyle.Render(item)
		w := lipgloss.Width(badge) + 1
		if width > 0 && used > 0 && used+w > width {
			rows = append(rows, strings.Join(row, " "))
			row, used = nil, 0
		}
		row = append(row, badge)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}
