// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package terminal is the command terminal engine: output log, dispatch,
// typing effect and boot script. It has no UI dependency; views feed it
// input and render Entries.
package terminal

import (
	"errors"
	"time"

	"metrix/commands/api"
	"metrix/export"
	"metrix/output"
	"metrix/profile"
	"metrix/registry"
	metrixlog "metrix/utils/log"
)

// Prompt precedes echoed command lines.
const Prompt = "$"

const (
	DefaultTypingDelay = 4 * time.Millisecond
	DefaultBootDelay   = 6 * time.Millisecond
	BootBanner         = "Booting interactive resume ..."
)

// DefaultBootCommands is the introductory script.
var DefaultBootCommands = []string{"whoami", "skills", "experience", "projects"}

// Builder makes a registry for a profile snapshot.
type Builder func(profile.Profile) *registry.Registry

// Options configures a Session. Zero values fall back to defaults.
type Options struct {
	Profile      profile.Profile
	Builder      Builder
	Persist      func(profile.Profile) error
	Saver        export.Saver
	Scheduler    Scheduler
	TypingDelay  time.Duration
	BootDelay    time.Duration
	BootCommands []string
	ReadOnly     bool
	SelfTest     *Policy
	Logger       *metrixlog.Logger
}

// Session owns the output log and the current command registry. It is not
// safe for concurrent use; all calls happen on the UI loop.
type Session struct {
	log   []Entry
	jobs  map[JobID]*typeJob
	next  JobID
	sched Scheduler

	profile     profile.Profile
	profileHash string
	reg         *registry.Registry
	builder     Builder
	persist     func(profile.Profile) error
	saver       export.Saver
	readOnly    bool

	typingDelay time.Duration
	bootDelay   time.Duration
	bootCmds    []string
	booted      bool
	boot        *bootRun

	logger *metrixlog.Logger
}

func New(opts Options) *Session {
	if opts.Builder == nil {
		panic("terminal: Options.Builder is required")
	}
	if opts.Scheduler == nil {
		opts.Scheduler = NewManualScheduler()
	}
	if opts.TypingDelay == 0 {
		opts.TypingDelay = DefaultTypingDelay
	}
	if opts.BootDelay == 0 {
		opts.BootDelay = DefaultBootDelay
	}
	if len(opts.BootCommands) == 0 {
		opts.BootCommands = DefaultBootCommands
	}
	if opts.Logger == nil {
		opts.Logger = metrixlog.Nop()
	}
	if opts.Profile == (profile.Profile{}) {
		opts.Profile = profile.Default()
	}

	s := &Session{
		jobs:        map[JobID]*typeJob{},
		sched:       opts.Scheduler,
		profile:     opts.Profile,
		profileHash: opts.Profile.Hash(),
		builder:     opts.Builder,
		persist:     opts.Persist,
		saver:       opts.Saver,
		readOnly:    opts.ReadOnly,
		typingDelay: opts.TypingDelay,
		bootDelay:   opts.BootDelay,
		bootCmds:    append([]string(nil), opts.BootCommands...),
		logger:      opts.Logger.With("component", "terminal"),
	}
	s.reg = s.builder(s.profile)

	if opts.SelfTest != nil && s.reg.Len() > 0 {
		Report(s.logger, SelfTest(s.reg, *opts.SelfTest))
	}
	return s
}

// Entries returns a copy of the output log.
func (s *Session) Entries() []Entry {
	out := make([]Entry, len(s.log))
	copy(out, s.log)
	return out
}

func (s *Session) Len() int                     { return len(s.log) }
func (s *Session) Profile() profile.Profile     { return s.profile }
func (s *Session) Registry() *registry.Registry { return s.reg }

// Busy reports whether typing effects or a boot run are still in flight.
func (s *Session) Busy() bool { return len(s.jobs) > 0 || s.boot != nil }

// Append writes a block to the log immediately.
func (s *Session) Append(b output.Block) {
	s.log = append(s.log, Entry{Kind: EntryBlock, Block: b})
}

// Clear empties the log. Typing effects writing into removed slots are
// aborted so their remaining ticks do nothing.
func (s *Session) Clear() {
	s.log = nil
	ids := make([]JobID, 0, len(s.jobs))
	for id, job := range s.jobs {
		job.abort()
		ids = append(ids, id)
	}
	for _, id := range ids {
		delete(s.jobs, id)
	}
	for _, id := range ids {
		s.jobFinished(id)
	}
}

// Submit runs one command line. Blank input is ignored.
func (s *Session) Submit(raw string) {
	s.run(raw)
}

// run returns the typing job started by the command, or 0.
func (s *Session) run(raw string) JobID {
	cmd, in, err := api.Resolve(s.reg, raw)
	if errors.Is(err, api.ErrEmptyCommand) {
		return 0
	}

	s.Append(output.Echo(Prompt, raw))

	if err != nil {
		s.logger.Debugw("unknown command", "error", err)
		s.Append(output.Errorf("%v", err))
		return 0
	}

	s.logger.Debugw("running command", "name", cmd.Name(), "args", in.Raw)
	switch out := cmd.Execute(s.context(), in).(type) {
	case output.Text:
		return s.TypeText(string(out), s.typingDelay)
	case output.Block:
		s.Append(out)
	case output.Empty, nil:
	}
	return 0
}

func (s *Session) context() api.Context {
	ctx := api.Context{Terminal: s, Saver: s.saver}
	if !s.readOnly {
		ctx.Editor = s
	}
	return ctx
}

// UpdateProfile is the only way the profile changes. The new snapshot is
// persisted best-effort and the registry is rebuilt against it.
func (s *Session) UpdateProfile(field, value string) error {
	next, err := profile.Update(s.profile, field, value)
	if err != nil {
		return err
	}
	s.profile = next

	if s.persist != nil {
		if err := s.persist(next); err != nil {
			s.logger.Warnw("failed to persist profile", "field", field, "error", err)
		}
	}

	if next.ChangedSince(s.profileHash) {
		h := next.Hash()
		s.profileHash = h
		s.reg = s.builder(next)
		s.logger.Debugw("registry rebuilt", "profile", h)
	}
	return nil
}
