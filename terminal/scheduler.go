// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package terminal

import (
	"sort"
	"time"
)

// JobID identifies one typing effect.
type JobID uint64

// Scheduler delivers a tick for id after d. Delivery must happen on the same
// goroutine that owns the Session.
type Scheduler interface {
	After(d time.Duration, id JobID)
}

// Ticker receives scheduled ticks; *Session implements it.
type Ticker interface {
	Tick(id JobID)
}

type pending struct {
	due time.Duration
	seq uint64
	id  JobID
}

// ManualScheduler runs ticks on a virtual clock. Tests and the headless
// surfaces (HTTP, non-TTY output) drive it to completion synchronously.
type ManualScheduler struct {
	now   time.Duration
	seq   uint64
	queue []pending
}

func NewManualScheduler() *ManualScheduler { return &ManualScheduler{} }

func (m *ManualScheduler) After(d time.Duration, id JobID) {
	m.seq++
	m.queue = append(m.queue, pending{due: m.now + d, seq: m.seq, id: id})
	sort.SliceStable(m.queue, func(i, j int) bool {
		if m.queue[i].due != m.queue[j].due {
			return m.queue[i].due < m.queue[j].due
		}
		return m.queue[i].seq < m.queue[j].seq
	})
}

// Pending is the number of undelivered ticks.
func (m *ManualScheduler) Pending() int { return len(m.queue) }

// Now is the virtual time of the last delivered tick.
func (m *ManualScheduler) Now() time.Duration { return m.now }

// Step delivers the earliest tick. It reports false when nothing is queued.
func (m *ManualScheduler) Step(t Ticker) bool {
	if len(m.queue) == 0 {
		return false
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	m.now = next.due
	t.Tick(next.id)
	return true
}

// RunUntilIdle delivers ticks until the queue drains and returns how many ran.
func (m *ManualScheduler) RunUntilIdle(t Ticker) int {
	n := 0
	for m.Step(t) {
		n++
	}
	return n
}
