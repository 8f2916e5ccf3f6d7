// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package terminal

import "time"

type jobState int

const (
	jobPending jobState = iota
	jobRunning
	jobDone
	jobAborted
)

// typeJob writes text into one log slot, one rune per tick.
type typeJob struct {
	slot  int
	runes []rune
	pos   int
	delay time.Duration
	state jobState
}

func (j *typeJob) abort() {
	if j.state == jobPending || j.state == jobRunning {
		j.state = jobAborted
	}
}

// TypeText reserves a log slot now and fills it one rune per tick. The
// slot index is captured here, so interleaved calls never collide.
func (s *Session) TypeText(text string, delay time.Duration) JobID {
	s.next++
	id := s.next
	s.jobs[id] = &typeJob{
		slot:  len(s.log),
		runes: []rune(text),
		delay: delay,
	}
	s.log = append(s.log, Entry{Kind: EntryTyping})
	s.sched.After(delay, id)
	return id
}

// Tick advances a typing job. Ticks for unknown or finished jobs are ignored.
func (s *Session) Tick(id JobID) {
	job, ok := s.jobs[id]
	if !ok || job.state == jobDone || job.state == jobAborted {
		return
	}
	if job.slot >= len(s.log) {
		job.abort()
		delete(s.jobs, id)
		s.jobFinished(id)
		return
	}

	if job.pos < len(job.runes) {
		job.state = jobRunning
		job.pos++
		s.log[job.slot] = Entry{Kind: EntryTyping, Text: string(job.runes[:job.pos])}
		s.sched.After(job.delay, id)
		return
	}

	job.state = jobDone
	s.log[job.slot] = Entry{Kind: EntryText, Text: string(job.runes)}
	delete(s.jobs, id)
	s.jobFinished(id)
}

// Typing reports whether id is still in flight.
func (s *Session) Typing(id JobID) bool {
	_, ok := s.jobs[id]
	return ok
}
