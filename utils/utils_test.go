// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindAllMatches(t *testing.T) {
	assert.Equal(t, []int{0, 7}, FindAllMatches("Export export", "export"))
	assert.Nil(t, FindAllMatches("help", ""))
	assert.Nil(t, FindAllMatches("help", "x"))
}

func TestHighlightMatchesKeepsText(t *testing.T) {
	assert.Equal(t, "help", HighlightMatches("help", "", nil))
	out := HighlightMatches("experience", "ex", FindAllMatches("experience", "ex"))
	assert.Contains(t, out, "perience")
	assert.NotPanics(t, func() { HighlightMatches("ab", "abc", []int{1}) })
}
