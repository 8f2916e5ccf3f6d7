// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"errors"
	"regexp"
	"strings"

	"metrix/args"
	"metrix/commands/api"
	"metrix/output"
	"metrix/profile"
)

var fieldToken = regexp.MustCompile(`^[A-Za-z][A-Za-z_-]*$`)

// Set edits one allow-listed profile field.
type Set struct{}

func (Set) Name() string        { return "set" }
func (Set) Description() string { return "Edit a profile field" }
func (Set) Usage() string       { return "set <field> <value>" }

func (Set) Execute(ctx api.Context, in args.Args) output.Output {
	fields := strings.Join(profile.Fields, "|")
	if in.Empty() {
		return output.Warnf("usage: set <field> <value>  (fields: %s)", fields)
	}

	field, value := in.Head()
	if !fieldToken.MatchString(field) {
		return output.Warnf("set: malformed input %q, expected <field> <value>", strings.TrimSpace(in.Raw))
	}
	if !profile.IsField(field) {
		return output.Warnf("set: unknown field %q (fields: %s)", field, fields)
	}
	if ctx.Editor == nil {
		return output.Warnf("set: the profile is read-only here")
	}

	if err := ctx.Editor.UpdateProfile(strings.ToLower(field), unquote(value)); err != nil {
		var fe *profile.FieldError
		if errors.As(err, &fe) && fe.Reason != "" {
			return output.Warnf("set: invalid value for %s (%s)", fe.Field, fe.Reason)
		}
		return output.Warnf("set: %v", err)
	}
	return output.Empty{}
}

// unquote strips one pair of matching surrounding quotes.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
