// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package resumeview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"metrix/profile"
	"metrix/reveal"
	"metrix/styles"
)

var palette = reveal.Palette{Foreground: styles.Foreground, Background: styles.Background, Accent: styles.Accent}

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.vp.View(), m.status())
}

func (m *Model) status() string {
	motion := "motion on"
	if m.engine.Reduced() {
		motion = "reduced motion"
	}
	return styles.HelpStyle.Render(motion + " · " + m.engine.Tweener().Name())
}

// render draws every element at the current engine time into the viewport.
func (m *Model) render() {
	offset := m.vp.YOffset
	m.vp.SetContent(strings.Join(pageRows(m.engine), "\n"))
	m.vp.SetYOffset(offset)
}

func pageRows(e *reveal.Engine) []string {
	pad := strings.Repeat(" ", margin)
	var rows []string
	for _, el := range e.Elements() {
		for len(rows) < el.Top {
			rows = append(rows, "")
		}
		pal := palette
		if el.Mode == reveal.Letters && strings.HasPrefix(el.ID, "heading-") {
			pal.Foreground = styles.Accent
			pal.Bold = true
		}
		for _, line := range e.Render(el, pal) {
			rows = append(rows, pad+line)
		}
	}
	return rows
}

// RenderStatic lays the page out for width and renders it fully revealed.
func RenderStatic(p profile.Profile, width int) string {
	e := reveal.NewEngine(reveal.Options{NoObserver: true})
	e.Add(BuildPage(p)...)
	e.Layout(pageWidthFor(width))
	e.Mount(reveal.Viewport{Height: e.PageHeight()})
	return strings.Join(pageRows(e), "\n")
}
