// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import "strings"

// FrameSpec captures the calculated dimensions for a framed view.
type FrameSpec struct {
	FrameWidth   int
	FrameHeight  int
	ContentWidth int
	ContentLines int
}

// ComputeFrameDimensions derives the frame and inner content size from the
// window size, subtracting the rows taken by header and footer. Unknown
// sizes fall back to 80x24.
func ComputeFrameDimensions(width, height int, header, footer string) FrameSpec {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	frameHeight := height - countLines(header) - countLines(footer)
	if frameHeight < 3 {
		frameHeight = 3
	}

	return FrameSpec{
		FrameWidth:   width,
		FrameHeight:  frameHeight,
		ContentWidth: max(width-4, 1),
		ContentLines: max(frameHeight-2, 0),
	}
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return len(strings.Split(s, "\n"))
}
