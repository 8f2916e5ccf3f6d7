// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"metrix/app"
	"metrix/commands"
	"metrix/config"
	"metrix/export"
	"metrix/profile"
	"metrix/reveal"
	"metrix/storage"
	"metrix/terminal"
	metrixlog "metrix/utils/log"
	resumeview "metrix/views/resume"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var version = "dev"

var flags struct {
	ephemeral     bool
	reducedMotion bool
	dbPath        string
	tweener       string
}

var rootCmd = &cobra.Command{
	Use:           "metrix",
	Short:         "Interactive terminal résumé",
	Long:          "metrix boots a command terminal that types out a résumé, with a scroll-reveal page view and export to md, txt or html.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flags.ephemeral, "ephemeral", false, "keep the profile in memory only")
	pf.BoolVar(&flags.reducedMotion, "reduced-motion", false, "skip reveal animations and the rain band")
	pf.StringVar(&flags.dbPath, "db", "", "path of the profile database")
	pf.StringVar(&flags.tweener, "tweener", "", "animation provider: spring or native")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env is everything a subcommand needs, built once per invocation.
type env struct {
	cfg   *config.Config
	log   *metrixlog.Logger
	store storage.Store
	repo  *profile.Repository
}

func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("ephemeral") {
		cfg.Ephemeral = flags.ephemeral
	}
	if cmd.Flags().Changed("reduced-motion") {
		cfg.ReducedMotion = flags.reducedMotion
	}
	if flags.dbPath != "" {
		cfg.DBPath = flags.dbPath
	}
	if flags.tweener != "" {
		cfg.Tweener = strings.ToLower(flags.tweener)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	metrixlog.Init(metrixlog.Options{AppName: config.AppName, Env: cfg.Env, Level: cfg.LogLevel})
	log := metrixlog.L().With("session", uuid.NewString())
	log.Infow("starting", "version", version, "command", cmd.Name(), "ephemeral", cfg.Ephemeral)

	var store storage.Store
	if cfg.Ephemeral {
		store = storage.NewMemory()
	} else {
		store, err = storage.OpenSQLite(cfg.DBPath)
		if err != nil {
			log.Warnw("profile database unavailable, using memory", "path", cfg.DBPath, "error", err)
			store = storage.NewMemory()
		}
	}

	return &env{
		cfg:   cfg,
		log:   log,
		store: store,
		repo:  profile.NewRepository(store, log),
	}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warnw("failed to close store", "error", err)
	}
	metrixlog.Sync()
}

// terminalOptions is the session setup shared by the TUI and headless runs.
func (e *env) terminalOptions(ctx context.Context) terminal.Options {
	return terminal.Options{
		Profile: e.repo.Load(ctx),
		Builder: commands.Build,
		Persist: func(p profile.Profile) error {
			return e.repo.Save(ctx, p)
		},
		Saver:        export.FileSaver{Dir: e.cfg.ExportDir},
		TypingDelay:  e.cfg.TypingDelay,
		BootDelay:    e.cfg.BootDelay,
		BootCommands: e.cfg.BootCommands,
		Logger:       e.log,
	}
}

func runRoot(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return printBoot(cmd.OutOrStdout(), e.terminalOptions(ctx))
	}

	opts := e.terminalOptions(ctx)
	m := app.New(app.Deps{
		Version:       version,
		Terminal:      opts,
		ReducedMotion: e.cfg.ReducedMotion,
		Resume: resumeview.Options{
			Profile:              opts.Profile,
			Tweener:              reveal.NewTweener(e.cfg.Tweener, e.log),
			PrefersReducedMotion: e.cfg.ReducedMotion,
			Store:                e.store,
			Logger:               e.log,
		},
		Logger: e.log,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}

// printBoot runs the boot script on a virtual clock and prints the log.
func printBoot(w io.Writer, opts terminal.Options) error {
	sched := terminal.NewManualScheduler()
	opts.Scheduler = sched
	s := terminal.New(opts)
	s.Boot()
	sched.RunUntilIdle(s)
	return writeEntries(w, s.Entries())
}

func writeEntries(w io.Writer, entries []terminal.Entry) error {
	for _, entry := range entries {
		if _, err := fmt.Fprintln(w, entry.PlainText()); err != nil {
			return err
		}
	}
	return nil
}
