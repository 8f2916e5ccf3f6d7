// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package main

import (
	"path/filepath"

	"metrix/export"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var exportCmd = &cobra.Command{
	Use:   "export [" + export.FormatList() + "]",
	Short: "Write the résumé to the export directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	file, err := export.Build(export.Normalize(arg), e.repo.Load(cmd.Context()))
	if err != nil {
		return err
	}
	if err := (export.FileSaver{Dir: e.cfg.ExportDir}).Save(file.Filename, file.Data, file.MIME); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", filepath.Join(e.cfg.ExportDir, file.Filename), len(file.Data))
	return nil
}
