// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package registry maps command names to commands, keeping registration order.
package registry

import (
	"sort"
	"strings"

	"metrix/commands/api"
)

// Registry is built once per profile snapshot and not mutated afterwards.
type Registry struct {
	order []string
	cmds  map[string]api.Command
}

func New() *Registry {
	return &Registry{cmds: map[string]api.Command{}}
}

// Register adds cmd; re-registering a name replaces it in place.
func (r *Registry) Register(cmd api.Command) {
	name := cmd.Name()
	if _, exists := r.cmds[name]; !exists {
		r.order = append(r.order, name)
	}
	r.cmds[name] = cmd
}

// Alias registers name as another way to invoke target.
func (r *Registry) Alias(name string, target api.Command) {
	r.Register(aliasCommand{name: name, target: target})
}

// Get returns a command by exact (case-sensitive) name.
func (r *Registry) Get(name string) (api.Command, bool) {
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.cmds[name]
	return ok
}

// Len is the number of registered names, aliases included.
func (r *Registry) Len() int { return len(r.order) }

// All returns commands in registration order.
func (r *Registry) All() []api.Command {
	cmds := make([]api.Command, 0, len(r.order))
	for _, name := range r.order {
		cmds = append(cmds, r.cmds[name])
	}
	return cmds
}

// Visible returns All without hidden entries.
func (r *Registry) Visible() []api.Command {
	var out []api.Command
	for _, c := range r.All() {
		if h, ok := c.(api.Hider); ok && h.Hidden() {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Suggest returns all command names that start with a given prefix, sorted.
func (r *Registry) Suggest(prefix string) []string {
	var out []string
	for _, name := range r.order {
		if prefix == "" || strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Missing returns the names from required that are not registered.
func (r *Registry) Missing(required ...string) []string {
	var out []string
	for _, name := range required {
		if !r.Has(name) {
			out = append(out, name)
		}
	}
	return out
}
