// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"metrix/args"
	"metrix/commands/api"
	"metrix/output"
)

type Clear struct{}

func (Clear) Name() string        { return "clear" }
func (Clear) Description() string { return "Clear the screen" }

func (Clear) Execute(ctx api.Context, _ args.Args) output.Output {
	if ctx.Terminal != nil {
		ctx.Terminal.Clear()
	}
	return output.Empty{}
}
