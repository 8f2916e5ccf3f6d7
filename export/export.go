// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package export renders the résumé as markdown, plain text or HTML.
package export

import (
	"errors"
	"fmt"
	"strings"

	"metrix/profile"
)

// Format is a supported export extension.
type Format string

const (
	Markdown Format = "md"
	Text     Format = "txt"
	HTML     Format = "html"
)

// Formats in the order they are advertised.
var Formats = []Format{Markdown, Text, HTML}

var ErrUnsupportedFormat = errors.New("unsupported export format")

// FormatList is "md|txt|html".
func FormatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, "|")
}

// Normalize lowercases arg and defaults it to md.
func Normalize(arg string) Format {
	f := strings.ToLower(strings.TrimSpace(arg))
	if f == "" {
		return Markdown
	}
	return Format(f)
}

// Supported reports whether f can be built.
func (f Format) Supported() bool {
	for _, s := range Formats {
		if s == f {
			return true
		}
	}
	return false
}

// MIME returns the media type without parameters.
func (f Format) MIME() string {
	switch f {
	case Markdown:
		return "text/markdown"
	case HTML:
		return "text/html"
	default:
		return "text/plain"
	}
}

// Export is a generated file ready to be saved.
type Export struct {
	Format   Format
	Filename string
	Data     []byte
	MIME     string
}

// Build renders p in format f. Unsupported formats return ErrUnsupportedFormat.
func Build(f Format, p profile.Profile) (Export, error) {
	var body string
	switch f {
	case Markdown:
		body = renderMarkdown(document(p))
	case Text:
		body = renderText(document(p))
	case HTML:
		body = renderHTML(p.Name, renderMarkdown(document(p)))
	default:
		return Export{}, fmt.Errorf("%w: %q (use %s)", ErrUnsupportedFormat, string(f), FormatList())
	}
	return Export{
		Format:   f,
		Filename: p.Slug() + "." + string(f),
		Data:     []byte(body),
		MIME:     f.MIME(),
	}, nil
}
