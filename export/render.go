// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package export

import (
	"strings"

	"metrix/profile"

	"github.com/charmbracelet/lipgloss"
)

// item is one bullet; strong is emphasised in markdown and plain in text.
type item struct {
	strong string
	text   string
	sub    []string
}

type section struct {
	heading string
	para    string
	items   []item
}

type doc struct {
	title    string
	tagline  item
	sections []section
}

func document(p profile.Profile) doc {
	d := doc{
		title:   p.Name,
		tagline: item{strong: p.Title, text: p.Location},
	}

	d.sections = append(d.sections, section{heading: "Summary", para: p.Summary})

	skills := section{heading: "Skills"}
	for _, c := range profile.Skills {
		names := make([]string, len(c.Skills))
		for i, s := range c.Skills {
			names[i] = s.Name
		}
		skills.items = append(skills.items, item{text: c.Title + ": " + strings.Join(names, ", ")})
	}
	d.sections = append(d.sections, skills)

	exp := section{heading: "Experience"}
	for _, r := range profile.Experience {
		exp.items = append(exp.items, item{
			strong: r.Title,
			text:   "— " + r.Company + " (" + r.Period + ")",
			sub:    r.Highlights,
		})
	}
	d.sections = append(d.sections, exp)

	projects := section{heading: "Projects"}
	for _, pr := range profile.Projects {
		projects.items = append(projects.items, item{
			strong: pr.Name,
			text:   "— " + strings.Join(pr.Stack, " · "),
			sub:    []string{pr.Desc},
		})
	}
	d.sections = append(d.sections, projects)

	contact := section{heading: "Contact"}
	contact.items = append(contact.items,
		item{text: "Phone: " + p.Phone},
		item{text: "Email: " + p.Email},
		item{text: "Location: " + p.Location},
	)
	for _, link := range []struct{ label, url string }{
		{"Website", p.Website}, {"GitHub", p.GitHub}, {"LinkedIn", p.LinkedIn},
	} {
		if link.url != "" {
			contact.items = append(contact.items, item{text: link.label + ": " + link.url})
		}
	}
	d.sections = append(d.sections, contact)

	return d
}

func renderMarkdown(d doc) string {
	var b strings.Builder
	b.WriteString("# " + d.title + "\n\n")
	b.WriteString("**" + d.tagline.strong + "** — " + d.tagline.text + "\n")
	for _, s := range d.sections {
		b.WriteString("\n## " + s.heading + "\n")
		if s.para != "" {
			b.WriteString(s.para + "\n")
		}
		for _, it := range s.items {
			b.WriteString("- ")
			if it.strong != "" {
				b.WriteString("**" + it.strong + "** ")
			}
			b.WriteString(it.text + "\n")
			for _, sub := range it.sub {
				b.WriteString("  - " + sub + "\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderText(d doc) string {
	var b strings.Builder
	b.WriteString(d.title + "\n")
	b.WriteString(strings.Repeat("=", lipgloss.Width(d.title)) + "\n\n")
	b.WriteString(d.tagline.strong + " — " + d.tagline.text + "\n")
	for _, s := range d.sections {
		heading := strings.ToUpper(s.heading)
		b.WriteString("\n" + heading + "\n" + strings.Repeat("-", lipgloss.Width(heading)) + "\n")
		if s.para != "" {
			b.WriteString(s.para + "\n")
		}
		for _, it := range s.items {
			b.WriteString("* ")
			if it.strong != "" {
				b.WriteString(it.strong + " ")
			}
			b.WriteString(it.text + "\n")
			for _, sub := range it.sub {
				b.WriteString("    " + sub + "\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func renderHTML(title, md string) string {
	return `<!doctype html><meta charset="utf-8"><title>` + htmlEscaper.Replace(title) +
		`</title><pre style="font:14px/1.6 ui-monospace,Menlo,Consolas,monospace;padding:16px;color:#e5e7eb;background:#0f0f0f">` +
		htmlEscaper.Replace(md) + `</pre>`
}
