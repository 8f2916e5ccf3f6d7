// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package app is the top-level bubbletea model: it owns the views, routes
// messages and lays out the help bar.
package app

import (
	"metrix/terminal"
	metrixlog "metrix/utils/log"
	resumeview "metrix/views/resume"
	terminalview "metrix/views/terminal"
	"metrix/views/view"
)

// Deps wires the views to the rest of the program.
type Deps struct {
	Version       string
	Terminal      terminal.Options
	Resume        resumeview.Options
	ReducedMotion bool
	Logger        *metrixlog.Logger
}

// registerViews builds the view factories for one program run.
func registerViews(d Deps) map[string]view.Factory {
	return map[string]view.Factory{
		view.NameTerminal: func(w, h int) view.View {
			v := terminalview.New(d.Terminal, d.ReducedMotion)
			v.SetSize(w, h)
			return v
		},
		view.NameResume: func(w, h int) view.View {
			v := resumeview.New(d.Resume)
			v.SetSize(w, h)
			return v
		},
	}
}
