// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package reveal

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// Page units per terminal cell.
	unitsPerRow = 12.0
	unitsPerCol = 4.0
	// Below this opacity a cell is left blank.
	minVisible = 0.05
)

// Palette is the pair of colours opacity blends between.
type Palette struct {
	Foreground string
	Background string
	Accent     string
	Bold       bool
}

// DefaultPalette matches the dark terminal theme.
var DefaultPalette = Palette{Foreground: "#d4d4d8", Background: "#09090b", Accent: "#34d399"}

type painter struct {
	fg, bg, accent colorful.Color
	bold           bool
}

func newPainter(p Palette) painter {
	parse := func(hex string, fallback colorful.Color) colorful.Color {
		c, err := colorful.Hex(hex)
		if err != nil {
			return fallback
		}
		return c
	}
	return painter{
		fg:     parse(p.Foreground, colorful.Color{R: 0.83, G: 0.83, B: 0.85}),
		bg:     parse(p.Background, colorful.Color{}),
		accent: parse(p.Accent, colorful.Color{R: 0.2, G: 0.83, B: 0.6}),
		bold:   p.Bold,
	}
}

func (p painter) paint(text string, base colorful.Color, s Style) string {
	if s.Opacity < minVisible {
		return strings.Repeat(" ", lipgloss.Width(text))
	}
	col := p.bg.BlendLab(base, clamp01(s.Opacity)).Clamped()
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex()))
	if p.bold || s.Scale > 1.02 {
		st = st.Bold(true)
	}
	return st.Render(text)
}

func cells(units, per float64) int { return int(math.Round(units / per)) }

// Render draws the element at the current engine time. The result always has
// el.Height rows.
func (e *Engine) Render(el *Element, pal Palette) []string {
	p := newPainter(pal)
	switch el.Mode {
	case LineDraw:
		return []string{e.renderRule(el, p)}
	case Letters, Lines:
		return e.renderPieces(el, p)
	default:
		return e.renderBlock(el, p)
	}
}

func (e *Engine) renderRule(el *Element, p painter) string {
	s := e.Style(el)
	width := max(el.Width, 1)
	drawn := int(math.Round(s.Drawn * float64(width)))
	rule := p.paint(strings.Repeat("─", drawn), p.accent, s)
	return rule + strings.Repeat(" ", width-drawn)
}

func (e *Engine) renderPieces(el *Element, p painter) []string {
	rows := make([]strings.Builder, el.Height)
	for i, piece := range el.pieces {
		if piece.Line >= len(rows) {
			continue
		}
		s := e.PieceStyle(el, i)
		if piece.Plain {
			rows[piece.Line].WriteString(piece.Text)
			continue
		}
		// Inline pieces cannot move between rows; travel still left to
		// do dims them further.
		if cells(math.Abs(s.DY), unitsPerRow) >= 1 {
			s.Opacity *= 0.5
		}
		rows[piece.Line].WriteString(p.paint(piece.Text, p.fg, s))
	}
	out := make([]string, len(rows))
	for i := range rows {
		out[i] = rows[i].String()
	}
	return out
}

func (e *Engine) renderBlock(el *Element, p painter) []string {
	s := e.Style(el)
	dy := cells(s.DY, unitsPerRow)
	dx := cells(s.DX, unitsPerCol)

	out := make([]string, el.Height)
	for i := range out {
		src := i - dy
		if src < 0 || src >= len(el.lines) {
			continue
		}
		line := el.lines[src]
		switch {
		case dx > 0:
			line = strings.Repeat(" ", dx) + line
		case dx < 0:
			line = trimLeftCells(line, -dx)
		}
		out[i] = p.paint(line, p.fg, s)
	}
	return out
}

func trimLeftCells(s string, n int) string {
	r := []rune(s)
	if n >= len(r) {
		return ""
	}
	return string(r[n:])
}
