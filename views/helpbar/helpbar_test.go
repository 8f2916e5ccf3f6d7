// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package helpbar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"metrix/views/view"
)

func TestViewShowsKeysWhenWide(t *testing.T) {
	out := New(120).
		WithViewHelp([]view.HelpEntry{{Key: "ctrl+r", Desc: "replay"}}).
		View("résumé")
	assert.Contains(t, out, "<ctrl+d>")
	assert.Contains(t, out, "replay")
	assert.Contains(t, out, "résumé")
}

func TestViewFallsBackToTitleWhenNarrow(t *testing.T) {
	out := New(10).View("résumé")
	assert.Equal(t, "résumé", out)
}
