// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package terminal

import "metrix/output"

// EntryKind tells the renderer what an output log slot holds.
type EntryKind int

const (
	// EntryBlock is structured output appended verbatim.
	EntryBlock EntryKind = iota
	// EntryTyping is a typing effect still in progress.
	EntryTyping
	// EntryText is finished typed text, rendered as a styled block.
	EntryText
)

func (k EntryKind) String() string {
	switch k {
	case EntryBlock:
		return "block"
	case EntryTyping:
		return "typing"
	case EntryText:
		return "text"
	}
	return "unknown"
}

// Entry is one slot of the output log.
type Entry struct {
	Kind  EntryKind
	Text  string
	Block output.Block
}

// PlainText flattens the entry for non-styled surfaces.
func (e Entry) PlainText() string {
	if e.Kind == EntryBlock {
		return e.Block.PlainText()
	}
	return e.Text
}
