// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package utils

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#34d399")).Bold(true)

// HighlightMatches styles the len(term) bytes at each match offset.
// Offsets that overlap a previous match are skipped.
func HighlightMatches(text, term string, matches []int) string {
	if term == "" || len(matches) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, idx := range matches {
		if idx < last || idx+len(term) > len(text) {
			continue
		}
		b.WriteString(text[last:idx])
		b.WriteString(highlightStyle.Render(text[idx : idx+len(term)]))
		last = idx + len(term)
	}
	b.WriteString(text[last:])
	return b.String()
}

// FindAllMatches returns the byte offsets of case-insensitive,
// non-overlapping occurrences of term.
func FindAllMatches(text, term string) []int {
	if term == "" {
		return nil
	}
	var matches []int
	textLower := strings.ToLower(text)
	termLower := strings.ToLower(term)
	idx := 0
	for {
		i := strings.Index(textLower[idx:], termLower)
		if i == -1 {
			break
		}
		matches = append(matches, idx+i)
		idx += i + len(termLower)
	}
	return matches
}
