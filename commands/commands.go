// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commands

import (
	"metrix/commands/command"
	"metrix/profile"
	"metrix/registry"
)

// Build returns a registry whose commands read from the snapshot p.
func Build(p profile.Profile) *registry.Registry {
	r := registry.New()

	help := command.Help{Commands: r}
	clr := command.Clear{}

	r.Register(help)
	r.Register(command.Whoami{Profile: p})
	r.Register(command.Skills{})
	r.Register(command.Experience{})
	r.Register(command.Projects{})
	r.Register(command.Contact{Profile: p})
	r.Register(command.Profile{Profile: p})
	r.Register(command.Set{})
	r.Register(command.Export{Profile: p})
	r.Register(command.Preview{Profile: p})
	r.Register(clr)

	r.Alias("?", help)
	r.Alias("ls", help)
	r.Alias("cls", clr)
	return r
}
