// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFramedBoxWidth(t *testing.T) {
	box := RenderFramedBox("Skills", "Go\nTypeScript and React", "", 30)
	lines := strings.Split(box, "\n")
	require.Len(t, lines, 4)
	for _, l := range lines {
		assert.Equal(t, 30, lipgloss.Width(l))
	}
	assert.Contains(t, lines[0], "Skills")
}

func TestRenderFramedBoxAutoWidth(t *testing.T) {
	box := RenderFramedBox("", "abc", "", 0)
	lines := strings.Split(box, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(lines[1]))
}

func TestComputeFrameDimensions(t *testing.T) {
	spec := ComputeFrameDimensions(100, 40, "a\nb", "c")
	assert.Equal(t, 100, spec.FrameWidth)
	assert.Equal(t, 37, spec.FrameHeight)
	assert.Equal(t, 96, spec.ContentWidth)
	assert.Equal(t, 35, spec.ContentLines)

	fallback := ComputeFrameDimensions(0, 0, "", "")
	assert.Equal(t, 80, fallback.FrameWidth)
	assert.Equal(t, 24, fallback.FrameHeight)
}

func TestCaretCycles(t *testing.T) {
	assert.NotEmpty(t, CaretAt(0))
	assert.Equal(t, CaretAt(0), CaretAt(-0))
	assert.NotPanics(t, func() { CaretAt(-5) })
}
