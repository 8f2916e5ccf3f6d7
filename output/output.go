// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package output defines what a command hands back to the terminal.
package output

import (
	"fmt"
	"strings"
)

// Output is one of Text, Block or Empty.
type Output interface {
	isOutput()
}

// Text is rendered with the typing effect.
type Text string

// Empty means the command already did its work and nothing is written.
type Empty struct{}

// Kind selects how a Block is styled.
type Kind int

const (
	KindPanel Kind = iota
	KindBadges
	KindError
	KindWarning
	KindSuccess
	KindSpacer
	KindEcho
	KindPreformatted
)

func (k Kind) String() string {
	switch k {
	case KindPanel:
		return "panel"
	case KindBadges:
		return "badges"
	case KindError:
		return "error"
	case KindWarning:
		return "warning"
	case KindSuccess:
		return "success"
	case KindSpacer:
		return "spacer"
	case KindEcho:
		return "echo"
	case KindPreformatted:
		return "preformatted"
	}
	return "unknown"
}

// Line is a row of a panel; Strong is emphasised before Text.
type Line struct {
	Strong string
	Text   string
}

// Block is structured content appended to the log verbatim.
type Block struct {
	Kind     Kind
	Title    string
	Lines    []Line
	Badges   []string
	Children []Block
}

func (Text) isOutput()  {}
func (Empty) isOutput() {}
func (Block) isOutput() {}

func L(strong, text string) Line { return Line{Strong: strong, Text: text} }

func Plain(text string) Line { return Line{Text: text} }

func Panel(title string, lines ...Line) Block {
	return Block{Kind: KindPanel, Title: title, Lines: lines}
}

func Badges(title string, items []string) Block {
	return Block{Kind: KindBadges, Title: title, Badges: append([]string(nil), items...)}
}

// Group stacks several blocks as one log entry.
func Group(children ...Block) Block {
	return Block{Kind: KindPanel, Children: children}
}

func Errorf(format string, args ...any) Block {
	return Block{Kind: KindError, Lines: []Line{Plain(fmt.Sprintf(format, args...))}}
}

func Warnf(format string, args ...any) Block {
	return Block{Kind: KindWarning, Lines: []Line{Plain(fmt.Sprintf(format, args...))}}
}

func Successf(format string, args ...any) Block {
	return Block{Kind: KindSuccess, Lines: []Line{Plain(fmt.Sprintf(format, args...))}}
}

func Spacer() Block { return Block{Kind: KindSpacer} }

func Echo(prompt, raw string) Block {
	return Block{Kind: KindEcho, Lines: []Line{L(prompt, raw)}}
}

// Preformatted carries text that was already rendered (e.g. by glamour).
func Preformatted(text string) Block {
	return Block{Kind: KindPreformatted, Lines: []Line{Plain(text)}}
}

// PlainText flattens the block without styling.
func (b Block) PlainText() string {
	var sb strings.Builder
	b.writePlain(&sb)
	return strings.TrimRight(sb.String(), "\n")
}

func (b Block) writePlain(sb *strings.Builder) {
	if b.Title != "" {
		sb.WriteString(b.Title)
		sb.WriteByte('\n')
	}
	for _, l := range b.Lines {
		switch {
		case l.Strong != "" && l.Text != "":
			sb.WriteString(l.Strong + " " + l.Text)
		case l.Strong != "":
			sb.WriteString(l.Strong)
		default:
			sb.WriteString(l.Text)
		}
		sb.WriteByte('\n')
	}
	if len(b.Badges) > 0 {
		sb.WriteString("[" + strings.Join(b.Badges, "] [") + "]\n")
	}
	for _, c := range b.Children {
		c.writePlain(sb)
	}
}
