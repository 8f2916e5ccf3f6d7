// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package resumeview

import (
	"fmt"
	"strings"

	"metrix/profile"
	"metrix/reveal"
)

// BuildPage lays the résumé out as reveal elements, top to bottom.
func BuildPage(p profile.Profile) []*reveal.Element {
	els := []*reveal.Element{
		{ID: "name", Mode: reveal.Letters, Variant: reveal.VariantHero, Text: p.Name, Gap: 1},
		{ID: "title", Mode: reveal.Letters, Text: p.Title + " · " + p.Location},
		{ID: "rule-top", Mode: reveal.LineDraw, Gap: 1},
		{ID: "summary", Mode: reveal.Lines, Text: p.Summary, Gap: 1},
		{ID: "stack", Mode: reveal.Fade, Text: strings.Join(profile.CoreStack, " · "), Gap: 1},
	}

	els = append(els, heading("skills", "Skills"))
	for i, c := range profile.Skills {
		mode := reveal.Left
		if i%2 == 1 {
			mode = reveal.Right
		}
		lines := []string{c.Title}
		for _, s := range c.Skills {
			lines = append(lines, fmt.Sprintf("  %-28s %s", s.Name, s.Percent))
		}
		els = append(els, &reveal.Element{
			ID: "skills-" + slug(c.Title), Mode: mode, Group: "skills",
			Text: strings.Join(lines, "\n"), Gap: 1,
		})
	}

	els = append(els, heading("experience", "Experience"))
	for _, r := range profile.Experience {
		lines := []string{r.Title + " — " + r.Company + " (" + r.Period + ")"}
		for _, h := range r.Highlights {
			lines = append(lines, "  • "+h)
		}
		els = append(els, &reveal.Element{
			ID: "role-" + slug(r.Company), Mode: reveal.Up, Group: "experience",
			Text: strings.Join(lines, "\n"), Gap: 1,
		})
	}

	els = append(els, heading("projects", "Projects"))
	for _, pr := range profile.Projects {
		lines := []string{pr.Name + "  [" + strings.Join(pr.Stack, ", ") + "]", "  " + pr.Desc}
		for _, h := range pr.Highlights {
			lines = append(lines, "  • "+h)
		}
		els = append(els, &reveal.Element{
			ID: "project-" + slug(pr.Name), Mode: reveal.Fade, Group: "projects",
			Text: strings.Join(lines, "\n"), Gap: 1,
		})
	}

	contact := []string{"Phone  " + p.Phone, "Email  " + p.Email, "Based  " + p.Location}
	for _, link := range []struct{ label, url string }{
		{"Web    ", p.Website}, {"GitHub ", p.GitHub}, {"In     ", p.LinkedIn},
	} {
		if link.url != "" {
			contact = append(contact, link.label+link.url)
		}
	}
	els = append(els,
		heading("contact", "Contact"),
		&reveal.Element{ID: "contact", Mode: reveal.Down, Text: strings.Join(contact, "\n"), Gap: 1},
		&reveal.Element{ID: "rule-bottom", Mode: reveal.LineDraw, Gap: 1},
	)
	return els
}

func heading(id, title string) *reveal.Element {
	return &reveal.Element{ID: "heading-" + id, Mode: reveal.Letters, Text: title, Gap: 2}
}

func slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
