// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package main

import (
	"os"
	"os/signal"
	"syscall"

	"metrix/commands"
	"metrix/config"
	"metrix/server"
	metrixlog "metrix/utils/log"

	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the résumé over HTTP",
	Long:  "Serves the résumé page, export downloads and a read-only command endpoint.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides METRIX_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	addr := e.cfg.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{
		Addr:    addr,
		Repo:    e.repo,
		Builder: commands.Build,
		Dev:     metrixlog.IsDev(e.cfg.Env),
		Logger:  e.log,
	})
	cmd.Printf("%s listening on %s\n", config.AppName, addr)
	return srv.Run(ctx)
}
