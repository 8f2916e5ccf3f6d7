// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"fmt"
	"strings"

	"metrix/args"
	"metrix/commands/api"
	"metrix/output"
)

// Lister is satisfied by *registry.Registry.
type Lister interface {
	Visible() []api.Command
}

// Help returns plain text so it goes through the typing effect.
type Help struct {
	Commands Lister
}

func (Help) Name() string        { return "help" }
func (Help) Description() string { return "Show all available commands" }

func (h Help) Execute(_ api.Context, _ args.Args) output.Output {
	var b strings.Builder
	b.WriteString("Available commands:")
	for _, c := range h.Commands.Visible() {
		usage := c.Name()
		if u, ok := c.(api.Usager); ok {
			usage = u.Usage()
		}
		fmt.Fprintf(&b, "\n  %s — %s", usage, c.Description())
	}
	return output.Text(b.String())
}
