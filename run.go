// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package main

import (
	"fmt"
	"strings"

	"metrix/terminal"
	resumeview "metrix/views/resume"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <command line>",
	Short: "Run one terminal command and print its output",
	Example: `  metrix run skills
  metrix run set title "Platform Engineer"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLine,
}

var pageWidth int

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Print the résumé page fully revealed",
	Args:  cobra.NoArgs,
	RunE:  runPage,
}

func init() {
	pageCmd.Flags().IntVar(&pageWidth, "width", 100, "page width in columns")
	rootCmd.AddCommand(runCmd, pageCmd)
}

func runLine(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	opts := e.terminalOptions(cmd.Context())
	sched := terminal.NewManualScheduler()
	opts.Scheduler = sched
	s := terminal.New(opts)
	s.Submit(strings.Join(args, " "))
	sched.RunUntilIdle(s)
	return writeEntries(cmd.OutOrStdout(), s.Entries())
}

func runPage(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	_, err = fmt.Fprintln(cmd.OutOrStdout(), resumeview.RenderStatic(e.repo.Load(cmd.Context()), pageWidth))
	return err
}
