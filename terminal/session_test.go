// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package terminal

import (
	"errors"
	"strings"
	"testing"
	"time"

	"metrix/commands"
	"metrix/output"
	"metrix/profile"
	"metrix/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct{ names []string }

func (r *recordingSaver) Save(name string, _ []byte, _ string) error {
	r.names = append(r.names, name)
	return nil
}

func newSession(t *testing.T, mut ...func(*Options)) (*Session, *ManualScheduler) {
	t.Helper()
	sched := NewManualScheduler()
	opts := Options{Builder: commands.Build, Scheduler: sched}
	for _, m := range mut {
		m(&opts)
	}
	return New(opts), sched
}

func texts(s *Session) []string {
	var out []string
	for _, e := range s.Entries() {
		out = append(out, e.PlainText())
	}
	return out
}

func TestSubmitIgnoresBlankInput(t *testing.T) {
	s, _ := newSession(t)
	s.Submit("")
	s.Submit("   \t ")
	assert.Zero(t, s.Len())
}

func TestSubmitUnknownCommand(t *testing.T) {
	s, _ := newSession(t)
	s.Submit("foo bar")

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, output.KindEcho, entries[0].Block.Kind)
	assert.Contains(t, entries[0].PlainText(), "foo bar")
	assert.Equal(t, output.KindError, entries[1].Block.Kind)
	assert.Contains(t, entries[1].PlainText(), "foo: command not found")
}

func TestUnknownCommandsNeverTouchRegistry(t *testing.T) {
	s, _ := newSession(t)
	reg := s.Registry()
	size := reg.Len()

	lines := []string{"foo", "bar baz", "HELP", "sudo rm -rf /", "exit now"}
	for i, line := range lines {
		s.Submit(line)
		require.Equal(t, 2*(i+1), s.Len(), line)
	}

	for i, e := range s.Entries() {
		want := output.KindEcho
		if i%2 == 1 {
			want = output.KindError
		}
		assert.Equal(t, want, e.Block.Kind, i)
	}
	assert.Same(t, reg, s.Registry())
	assert.Equal(t, size, s.Registry().Len())
}

func TestCommandNamesAreCaseSensitive(t *testing.T) {
	s, _ := newSession(t)
	s.Submit("HELP")
	require.Equal(t, 2, s.Len())
	assert.Equal(t, output.KindError, s.Entries()[1].Block.Kind)
}

func TestTypeTextRunesThenFinalizes(t *testing.T) {
	s, sched := newSession(t)
	id := s.TypeText("Hi", time.Millisecond)

	require.Equal(t, 1, s.Len())
	assert.Equal(t, Entry{Kind: EntryTyping}, s.Entries()[0])

	require.True(t, sched.Step(s))
	assert.Equal(t, "H", s.Entries()[0].Text)
	require.True(t, sched.Step(s))
	assert.Equal(t, "Hi", s.Entries()[0].Text)
	assert.Equal(t, EntryTyping, s.Entries()[0].Kind)
	assert.True(t, s.Typing(id))

	require.True(t, sched.Step(s))
	assert.Equal(t, Entry{Kind: EntryText, Text: "Hi"}, s.Entries()[0])
	assert.False(t, s.Typing(id))
	assert.False(t, sched.Step(s))
}

func TestTypeTextSplitsOnRunes(t *testing.T) {
	s, sched := newSession(t)
	s.TypeText("résumé ✓", time.Millisecond)
	n := sched.RunUntilIdle(s)
	assert.Equal(t, len([]rune("résumé ✓"))+1, n)
	assert.Equal(t, "résumé ✓", s.Entries()[0].Text)
}

func TestInterleavedTypingKeepsSlots(t *testing.T) {
	s, sched := newSession(t)
	s.TypeText("first", 3*time.Millisecond)
	s.TypeText("second", time.Millisecond)
	sched.RunUntilIdle(s)

	assert.Equal(t, []string{"first", "second"}, texts(s))
}

func TestHelpIsTyped(t *testing.T) {
	s, sched := newSession(t)
	s.Submit("help")
	require.Equal(t, 2, s.Len())
	assert.Equal(t, EntryTyping, s.Entries()[1].Kind)
	assert.True(t, s.Busy())

	sched.RunUntilIdle(s)
	assert.False(t, s.Busy())
	assert.Equal(t, EntryText, s.Entries()[1].Kind)
	assert.Contains(t, s.Entries()[1].Text, "export")
}

func TestClearEmptiesLogAndAbortsTyping(t *testing.T) {
	s, sched := newSession(t)
	s.Submit("whoami")
	s.Submit("help")
	sched.Step(s)

	s.Submit("clear")
	assert.Zero(t, s.Len())
	assert.False(t, s.Busy())

	sched.RunUntilIdle(s)
	assert.Zero(t, s.Len())

	s.Submit("cls")
	assert.Zero(t, s.Len())
}

func TestBootRunsScriptInOrder(t *testing.T) {
	s, sched := newSession(t)
	require.True(t, s.Boot())
	assert.True(t, s.Booting())

	// Nothing but the banner slot until it finishes typing.
	require.Equal(t, 1, s.Len())

	sched.RunUntilIdle(s)
	assert.False(t, s.Booting())

	entries := s.Entries()
	assert.Equal(t, Entry{Kind: EntryText, Text: BootBanner}, entries[0])

	var echoed []string
	for _, e := range entries {
		if e.Kind == EntryBlock && e.Block.Kind == output.KindEcho {
			echoed = append(echoed, e.Block.Lines[0].Text)
		}
	}
	assert.Equal(t, DefaultBootCommands, echoed)
	assert.Contains(t, entries[len(entries)-1].PlainText(), "export")

	assert.False(t, s.Boot())
}

func TestBootIsDeterministic(t *testing.T) {
	a, sa := newSession(t)
	b, sb := newSession(t)
	a.Boot()
	b.Boot()
	sa.RunUntilIdle(a)
	sb.RunUntilIdle(b)
	assert.Equal(t, a.Entries(), b.Entries())
	assert.Equal(t, sa.Now(), sb.Now())
}

func TestBootWaitsForTypedCommands(t *testing.T) {
	s, sched := newSession(t, func(o *Options) {
		o.BootCommands = []string{"help", "contact"}
	})
	s.Boot()

	sawHelpTyping := false
	for sched.Step(s) {
		entries := s.Entries()
		last := entries[len(entries)-1]
		if last.Kind == EntryTyping && strings.HasPrefix(last.Text, "Avail") {
			sawHelpTyping = true
			for _, e := range entries {
				assert.NotEqual(t, "$ contact", e.PlainText())
			}
		}
	}
	assert.True(t, sawHelpTyping)
	assert.Contains(t, texts(s), "$ contact")
}

func TestClearDuringBootContinuesScript(t *testing.T) {
	s, sched := newSession(t)
	s.Boot()
	sched.Step(s)
	s.Clear()
	sched.RunUntilIdle(s)
	assert.False(t, s.Booting())

	entries := s.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, output.KindSpacer, entries[0].Block.Kind)
	for _, e := range entries {
		assert.NotEqual(t, BootBanner, e.Text)
	}
}

func TestReplayRefusedWhileBooting(t *testing.T) {
	s, sched := newSession(t)
	s.Boot()
	assert.False(t, s.Replay())
	sched.RunUntilIdle(s)

	n := s.Len()
	require.True(t, s.Replay())
	sched.RunUntilIdle(s)
	assert.Equal(t, 2*n, s.Len())
}

func TestSetUpdatesProfileAndRebuildsRegistry(t *testing.T) {
	var persisted []profile.Profile
	s, _ := newSession(t, func(o *Options) {
		o.Persist = func(p profile.Profile) error {
			persisted = append(persisted, p)
			return nil
		}
	})
	before := s.Registry()

	s.Submit(`set title "Platform Engineer"`)
	assert.Equal(t, "Platform Engineer", s.Profile().Title)
	require.Len(t, persisted, 1)
	assert.Equal(t, "Platform Engineer", persisted[0].Title)
	assert.NotSame(t, before, s.Registry())

	s.Submit("whoami")
	assert.Contains(t, s.Entries()[s.Len()-1].PlainText(), "Platform Engineer")
}

func TestSetSameValueKeepsRegistry(t *testing.T) {
	s, _ := newSession(t)
	before := s.Registry()
	s.Submit("set name " + profile.Default().Name)
	assert.Same(t, before, s.Registry())
}

func TestSetPersistFailureIsNotFatal(t *testing.T) {
	s, _ := newSession(t, func(o *Options) {
		o.Persist = func(profile.Profile) error { return errors.New("disk full") }
	})
	s.Submit("set location Chiang Mai")
	assert.Equal(t, "Chiang Mai", s.Profile().Location)
	assert.Equal(t, 1, s.Len())
}

func TestSetRejectedValueLeavesProfile(t *testing.T) {
	s, _ := newSession(t)
	s.Submit("set email not-an-email")
	assert.Equal(t, profile.Default().Email, s.Profile().Email)
	assert.Equal(t, output.KindWarning, s.Entries()[1].Block.Kind)
}

func TestReadOnlySessionRefusesSet(t *testing.T) {
	s, _ := newSession(t, func(o *Options) { o.ReadOnly = true })
	s.Submit("set name Someone")
	assert.Equal(t, profile.Default().Name, s.Profile().Name)
	assert.Contains(t, s.Entries()[1].PlainText(), "read-only")
}

func TestExportUsesSaver(t *testing.T) {
	saver := &recordingSaver{}
	s, _ := newSession(t, func(o *Options) { o.Saver = saver })
	s.Submit("export TXT")
	require.Equal(t, []string{"alex-metrix.txt"}, saver.names)
	assert.Equal(t, output.KindSuccess, s.Entries()[1].Block.Kind)

	s.Submit("export pdf")
	assert.Len(t, saver.names, 1)
	assert.Equal(t, output.KindError, s.Entries()[3].Block.Kind)
}

func TestSelfTest(t *testing.T) {
	reg := commands.Build(profile.Default())
	ok := Policy{Charset: []rune("ABC123"), InitialSpeed: 0.9}
	for _, r := range SelfTest(reg, ok) {
		assert.True(t, r.OK, r.Name)
	}

	bad := Policy{Charset: []rune("ab"), InitialSpeed: 2}
	failed := 0
	for _, r := range SelfTest(reg, bad) {
		if !r.OK {
			failed++
		}
	}
	assert.Equal(t, 2, failed)
}

func TestSelfTestListsMissingCommands(t *testing.T) {
	res := SelfTest(registry.New(), Policy{Charset: []rune("AZ09"), InitialSpeed: 0.5})
	require.NotEmpty(t, res)
	assert.False(t, res[0].OK)
	assert.Equal(t, "help, skills, experience, clear, export", res[0].Info)
}
