// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package terminal

import "metrix/output"

// step runs one part of the boot script and returns the typing job it must
// wait for, or 0.
type step func() JobID

type bootRun struct {
	steps []step
	wait  JobID
}

// Boot starts the introductory script. It runs once per session; later
// calls return false.
func (s *Session) Boot() bool {
	if s.booted {
		return false
	}
	s.booted = true
	s.startBoot()
	return true
}

// Replay runs the script again on request ("re-run demo"). It is refused
// while a run is still in progress.
func (s *Session) Replay() bool {
	if s.boot != nil {
		return false
	}
	s.booted = true
	s.startBoot()
	return true
}

// Booting reports whether a boot run is in progress.
func (s *Session) Booting() bool { return s.boot != nil }

func (s *Session) startBoot() {
	run := &bootRun{}
	run.steps = append(run.steps, func() JobID {
		return s.TypeText(BootBanner, s.bootDelay)
	})
	for _, name := range s.bootCmds {
		name := name
		run.steps = append(run.steps,
			func() JobID { s.Append(output.Spacer()); return 0 },
			func() JobID { return s.run(name) },
		)
	}
	run.steps = append(run.steps, func() JobID {
		s.Append(output.Panel("", output.L("", "Type"), output.L("help", "to list commands, or"), output.L("export", "to download the résumé.")))
		return 0
	})
	s.boot = run
	s.logger.Debugw("boot sequence started", "commands", s.bootCmds)
	s.advanceBoot()
}

// advanceBoot runs steps until one starts a typing job.
func (s *Session) advanceBoot() {
	run := s.boot
	for run != nil && run.wait == 0 {
		if len(run.steps) == 0 {
			s.boot = nil
			s.logger.Debugw("boot sequence finished")
			return
		}
		next := run.steps[0]
		run.steps = run.steps[1:]
		if id := next(); id != 0 && s.Typing(id) {
			run.wait = id
		}
		// A step may have replaced the run (clear + replay); follow it.
		run = s.boot
	}
}

func (s *Session) jobFinished(id JobID) {
	if s.boot != nil && s.boot.wait == id {
		s.boot.wait = 0
		s.advanceBoot()
	}
}
