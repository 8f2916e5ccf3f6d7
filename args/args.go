// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package args

import (
	"fmt"
	"strings"
	"unicode"
)

// Args is everything after the command name, kept as typed so arguments may
// contain spaces (e.g. `set summary "long text"`).
type Args struct {
	Raw string
}

func New(raw string) Args { return Args{Raw: raw} }

// Empty reports whether no argument text was given.
func (a Args) Empty() bool { return strings.TrimSpace(a.Raw) == "" }

// Lower returns the trimmed argument in lowercase.
func (a Args) Lower() string { return strings.ToLower(strings.TrimSpace(a.Raw)) }

// Head splits the argument on its first whitespace run.
func (a Args) Head() (first, rest string) {
	return SplitFirst(a.Raw)
}

// SplitFirst trims s and splits it on the first run of whitespace. rest is
// not split further.
func SplitFirst(s string) (first, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}

// String provides a debug-friendly representation.
func (a Args) String() string {
	return fmt.Sprintf("Args{Raw=%q}", a.Raw)
}
