// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package api

import (
	"metrix/args"
)

// ParseInput splits a line like `set summary "long text"` into the command
// name and the untouched remainder.
func ParseInput(input string) (string, args.Args, error) {
	name, rest := args.SplitFirst(input)
	if name == "" {
		return "", args.Args{}, ErrEmptyCommand
	}
	return name, args.New(rest), nil
}

// Lookup is satisfied by *registry.Registry.
type Lookup interface {
	Get(name string) (Command, bool)
}

// Resolve parses input and finds its command.
func Resolve(l Lookup, input string) (Command, args.Args, error) {
	name, a, err := ParseInput(input)
	if err != nil {
		return nil, args.Args{}, err
	}
	cmd, ok := l.Get(name)
	if !ok {
		return nil, a, ErrUnknownCommand(name)
	}
	return cmd, a, nil
}
