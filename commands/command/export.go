// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"metrix/args"
	"metrix/commands/api"
	"metrix/export"
	"metrix/output"
	"metrix/profile"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Export saves the résumé in md, txt or html.
type Export struct {
	Profile profile.Profile
}

func (Export) Name() string        { return "export" }
func (Export) Description() string { return "Download the résumé (default md)" }
func (Export) Usage() string       { return "export [" + export.FormatList() + "]" }

func (e Export) Execute(ctx api.Context, in args.Args) output.Output {
	format := export.Normalize(in.Raw)
	if !format.Supported() {
		return output.Errorf("export: unsupported format %q (use %s)", string(format), export.FormatList())
	}

	file, err := export.Build(format, e.Profile)
	if err != nil {
		return output.Errorf("export: %v", err)
	}
	if ctx.Saver == nil {
		return output.Warnf("export: saving files is not available here")
	}
	if err := ctx.Saver.Save(file.Filename, file.Data, file.MIME); err != nil {
		return output.Errorf("export: could not save %s: %v", file.Filename, err)
	}
	return output.Successf("Exported %s ✓ (%s)", file.Filename, printer.Sprintf("%d bytes", len(file.Data)))
}
