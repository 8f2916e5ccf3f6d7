// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package reveal

import (
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// Mode selects how an element enters.
type Mode string

const (
	Up       Mode = "up"
	Down     Mode = "down"
	Left     Mode = "left"
	Right    Mode = "right"
	Fade     Mode = "fade"
	Letters  Mode = "letters"
	Lines    Mode = "lines"
	LineDraw Mode = "line-draw"
)

// VariantHero is the letters variant used for the page headline.
const VariantHero = "hero"

// ParseMode accepts any casing and defaults to Up.
func ParseMode(s string) Mode {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Up, Down, Left, Right, Fade, Letters, Lines, LineDraw:
		return m
	default:
		return Up
	}
}

func (m Mode) directional() bool {
	switch m {
	case Letters, Lines, LineDraw:
		return false
	default:
		return true
	}
}

// Piece is one animated run: a rune for Letters, a word for Lines.
// Plain pieces are whitespace and are never animated.
type Piece struct {
	Text  string
	Plain bool
	Line  int
	Word  int // position within the line, words only
	Index int // position among animated pieces
}

// Element is one tagged block of the page.
type Element struct {
	ID      string
	Mode    Mode
	Variant string
	Group   string
	Text    string
	// Gap is the number of blank rows above the element.
	Gap int

	Top    int
	Height int
	Width  int

	lines  []string
	pieces []Piece

	revealed bool
	instant  bool
	start    time.Duration
	base     time.Duration
}

func (el *Element) Revealed() bool  { return el.revealed }
func (el *Element) Pieces() []Piece { return el.pieces }

// Lines returns the wrapped text rows.
func (el *Element) Lines() []string { return el.lines }

// Bottom is the first row after the element.
func (el *Element) Bottom() int { return el.Top + el.Height }

// layout wraps the text to width and rebuilds the pieces.
func (el *Element) layout(width int) {
	el.Width = width
	if el.Mode == LineDraw {
		el.lines = []string{""}
		el.pieces = nil
		el.Height = 1
		return
	}

	rows := wrap(tokenize(el.Text), width)
	el.lines = el.lines[:0]
	el.pieces = el.pieces[:0]
	index := 0
	for li, row := range rows {
		var sb strings.Builder
		word := 0
		for _, tok := range row {
			sb.WriteString(tok.text)
			switch {
			case tok.space:
				el.pieces = append(el.pieces, Piece{Text: tok.text, Plain: true, Line: li})
			case el.Mode == Letters:
				for _, r := range tok.text {
					el.pieces = append(el.pieces, Piece{Text: string(r), Line: li, Word: word, Index: index})
					index++
				}
				word++
			default:
				el.pieces = append(el.pieces, Piece{Text: tok.text, Line: li, Word: word, Index: index})
				index++
				word++
			}
		}
		el.lines = append(el.lines, sb.String())
	}
	if len(el.lines) == 0 {
		el.lines = []string{""}
	}
	el.Height = len(el.lines)
}

type token struct {
	text   string
	space  bool
	br     bool
	indent bool
}

// tokenize splits text into alternating word and whitespace runs. Runs that
// contain a newline become hard breaks; whatever follows the last newline
// indents the next row.
func tokenize(text string) []token {
	var toks []token
	var cur []rune
	curSpace := false
	flush := func() {
		if len(cur) == 0 {
			return
		}
		s := string(cur)
		if curSpace && strings.ContainsRune(s, '\n') {
			for i := 0; i < strings.Count(s, "\n"); i++ {
				toks = append(toks, token{br: true})
			}
			if lead := s[strings.LastIndexByte(s, '\n')+1:]; lead != "" {
				toks = append(toks, token{text: lead, space: true, indent: true})
			}
		} else {
			toks = append(toks, token{text: s, space: curSpace})
		}
		cur = cur[:0]
	}
	for _, r := range text {
		sp := unicode.IsSpace(r)
		if len(cur) > 0 && sp != curSpace {
			flush()
		}
		curSpace = sp
		cur = append(cur, r)
	}
	flush()
	return toks
}

// wrap lays tokens out greedily. A width of zero or less never wraps.
func wrap(toks []token, width int) [][]token {
	rows := [][]token{nil}
	w := 0
	for _, tok := range toks {
		last := len(rows) - 1
		switch {
		case tok.br:
			rows = append(rows, nil)
			w = 0
		case tok.space:
			if w == 0 && !tok.indent {
				continue
			}
			rows[last] = append(rows[last], tok)
			w += lipgloss.Width(tok.text)
		default:
			tw := lipgloss.Width(tok.text)
			if width > 0 && w > 0 && w+tw > width {
				// drop the trailing space of the finished row
				if n := len(rows[last]); n > 0 && rows[last][n-1].space {
					rows[last] = rows[last][:n-1]
				}
				rows = append(rows, nil)
				last++
				w = 0
			}
			rows[last] = append(rows[last], tok)
			w += tw
		}
	}
	for i, row := range rows {
		if n := len(row); n > 0 && row[n-1].space {
			rows[i] = row[:n-1]
		}
	}
	return rows
}
