// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"strings"

	"metrix/args"
	"metrix/commands/api"
	"metrix/export"
	"metrix/output"
	"metrix/profile"

	"github.com/charmbracelet/glamour"
)

const previewWidth = 80

// Preview renders the markdown export in the terminal.
type Preview struct {
	Profile profile.Profile
}

func (Preview) Name() string        { return "preview" }
func (Preview) Description() string { return "Render the markdown résumé" }

func (p Preview) Execute(api.Context, args.Args) output.Output {
	file, err := export.Build(export.Markdown, p.Profile)
	if err != nil {
		return output.Errorf("preview: %v", err)
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(previewWidth),
	)
	if err != nil {
		return output.Errorf("preview: %v", err)
	}
	rendered, err := r.Render(string(file.Data))
	if err != nil {
		return output.Errorf("preview: %v", err)
	}
	return output.Preformatted(strings.Trim(rendered, "\n"))
}
