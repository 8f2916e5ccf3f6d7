// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

type (
	// SubmitMsg is emitted when the user presses Enter.
	SubmitMsg struct {
		Line string
	}

	// CancelMsg is emitted on ctrl+c; the line has already been dropped.
	CancelMsg struct {
		Line string
	}
)

// Suggester completes a command name prefix.
type Suggester func(prefix string) []string
