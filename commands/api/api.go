// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package api

import (
	"metrix/args"
	"metrix/export"
	"metrix/output"
)

// Terminal is the part of the session a command may act on.
type Terminal interface {
	Clear()
}

// ProfileEditor is the single mutation entry point for the profile.
type ProfileEditor interface {
	UpdateProfile(field, value string) error
}

// Context carries side-effect capabilities. Nil members mean the surface
// does not offer them (e.g. the HTTP surface has no Editor).
type Context struct {
	Terminal Terminal
	Editor   ProfileEditor
	Saver    export.Saver
}

// Command handlers never fail for expected conditions; they return an
// output.Block describing the problem instead.
type Command interface {
	Name() string
	Description() string
	Execute(ctx Context, a args.Args) output.Output
}

// Usager is implemented by commands that take arguments.
type Usager interface {
	Usage() string
}

// Hider is implemented by commands left out of help (aliases).
type Hider interface {
	Hidden() bool
}
