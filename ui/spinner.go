// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import (
	"time"

	"github.com/briandowns/spinner"
)

// CaretCharsetIndex selects the briandowns charset used for the typing caret.
const CaretCharsetIndex = 14

// CaretInterval is how often the caret frame advances.
const CaretInterval = 120 * time.Millisecond

// CaretAt returns the caret glyph for the given frame index.
// Falls back to a block if the charset is not available.
func CaretAt(frame int) string {
	frames := spinner.CharSets[CaretCharsetIndex]
	if len(frames) == 0 {
		return "▌"
	}
	if frame < 0 {
		frame = -frame
	}
	return frames[frame%len(frames)]
}
