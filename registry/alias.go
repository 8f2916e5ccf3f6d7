// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package registry

import (
	"metrix/args"
	"metrix/commands/api"
	"metrix/output"
)

// aliasCommand is a simple wrapper to provide aliases for commands
type aliasCommand struct {
	name   string
	target api.Command
}

func (a aliasCommand) Name() string        { return a.name }
func (a aliasCommand) Description() string { return a.target.Description() }
func (a aliasCommand) Hidden() bool        { return true }
func (a aliasCommand) Execute(ctx api.Context, in args.Args) output.Output {
	return a.target.Execute(ctx, in)
}
