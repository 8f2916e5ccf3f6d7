// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package profile holds the résumé owner's editable record and the static
// career content rendered around it.
package profile

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"metrix/core/primitives/hash"

	"github.com/go-playground/validator/v10"
)

// Profile is an immutable snapshot; Update returns a modified copy.
type Profile struct {
	Name     string `json:"name" validate:"required"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Email    string `json:"email" validate:"omitempty,email"`
	Summary  string `json:"summary"`
	Website  string `json:"website,omitempty" validate:"omitempty,url"`
	GitHub   string `json:"github,omitempty" validate:"omitempty,url"`
	LinkedIn string `json:"linkedin,omitempty" validate:"omitempty,url"`
}

// Default is used when the store holds nothing usable.
func Default() Profile {
	return Profile{
		Name:     "Alex Metrix",
		Title:    "Full-Stack Developer",
		Location: "Bangkok, TH",
		Phone:    "08x-xxx-xxxx",
		Email:    "you@email.com",
		Summary:  "Focused on code quality, performance and system stability.",
	}
}

// Fields lists the editable attributes in display order.
var Fields = []string{"name", "title", "location", "phone", "email", "summary", "website", "github", "linkedin"}

var (
	ErrUnknownField = errors.New("unknown profile field")
	ErrInvalidValue = errors.New("invalid profile value")
)

// FieldError names the field an Update rejected.
type FieldError struct {
	Field  string
	Reason string
	err    error
}

func (e *FieldError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v: %s", e.err, e.Field)
	}
	return fmt.Sprintf("%v: %s (%s)", e.err, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return e.err }

var validate = validator.New()

// IsField reports whether name is in the editable allow-list.
func IsField(name string) bool {
	name = strings.ToLower(name)
	for _, f := range Fields {
		if f == name {
			return true
		}
	}
	return false
}

// Get returns the value of an allow-listed field.
func (p Profile) Get(field string) (string, bool) {
	switch strings.ToLower(field) {
	case "name":
		return p.Name, true
	case "title":
		return p.Title, true
	case "location":
		return p.Location, true
	case "phone":
		return p.Phone, true
	case "email":
		return p.Email, true
	case "summary":
		return p.Summary, true
	case "website":
		return p.Website, true
	case "github":
		return p.GitHub, true
	case "linkedin":
		return p.LinkedIn, true
	}
	return "", false
}

// Update returns p with field set to value. The receiver is never modified.
func Update(p Profile, field, value string) (Profile, error) {
	next := p
	switch strings.ToLower(field) {
	case "name":
		next.Name = value
	case "title":
		next.Title = value
	case "location":
		next.Location = value
	case "phone":
		next.Phone = value
	case "email":
		next.Email = value
	case "summary":
		next.Summary = value
	case "website":
		next.Website = value
	case "github":
		next.GitHub = value
	case "linkedin":
		next.LinkedIn = value
	default:
		return p, &FieldError{Field: field, err: ErrUnknownField}
	}

	if err := validate.Struct(next); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return p, &FieldError{Field: strings.ToLower(field), Reason: "must be " + verrs[0].Tag(), err: ErrInvalidValue}
		}
		return p, &FieldError{Field: strings.ToLower(field), err: ErrInvalidValue}
	}
	return next, nil
}

// Hash identifies a snapshot; commands are rebuilt when it changes.
func (p Profile) Hash() string {
	return hash.Of(p)
}

// ChangedSince reports whether p differs from the snapshot fingerprinted as prev.
func (p Profile) ChangedSince(prev string) bool {
	return hash.Changed(prev, p)
}

// Slug is the lowercased name with whitespace runs replaced by dashes. Path
// separators, quotes and control characters become dashes too, so the slug
// is always a single file name.
func (p Profile) Slug() string {
	slug := strings.Join(strings.Fields(strings.ToLower(p.Name)), "-")
	slug = strings.Map(func(r rune) rune {
		switch {
		case r == '/', r == '\\', r == '"', r == ':', unicode.IsControl(r):
			return '-'
		}
		return r
	}, slug)
	if strings.Trim(slug, ".-") == "" {
		return "resume"
	}
	return slug
}
