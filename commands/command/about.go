// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"strings"

	"metrix/args"
	"metrix/commands/api"
	"metrix/output"
	"metrix/profile"
)

// Whoami shows the headline, summary and stack badges.
type Whoami struct {
	Profile profile.Profile
}

func (Whoami) Name() string        { return "whoami" }
func (Whoami) Description() string { return "About me" }

func (w Whoami) Execute(api.Context, args.Args) output.Output {
	p := w.Profile
	return output.Group(
		output.Panel("", output.L(p.Title, "· "+p.Location), output.Plain(p.Summary)),
		output.Badges("Core stack", profile.CoreStack),
		output.Badges("Backend/DevOps", profile.BackendStack),
	)
}

// Skills lists proficiencies per category.
type Skills struct{}

func (Skills) Name() string        { return "skills" }
func (Skills) Description() string { return "Core skills" }

func (Skills) Execute(api.Context, args.Args) output.Output {
	var blocks []output.Block
	for _, c := range profile.Skills {
		lines := make([]output.Line, 0, len(c.Skills))
		for _, s := range c.Skills {
			lines = append(lines, output.Plain("- "+s.Name+" ("+s.Percent+")"))
		}
		blocks = append(blocks, output.Panel(c.Title, lines...), output.Badges(c.BadgeTitle, c.Badges))
	}
	return output.Group(blocks...)
}

// Experience is the role history, most recent first.
type Experience struct{}

func (Experience) Name() string        { return "experience" }
func (Experience) Description() string { return "Work experience" }

func (Experience) Execute(api.Context, args.Args) output.Output {
	var lines []output.Line
	for _, r := range profile.Experience {
		lines = append(lines, output.L(r.Title, "— "+r.Company+" ("+r.Period+")"))
		for _, h := range r.Highlights {
			lines = append(lines, output.Plain("• "+h))
		}
	}
	return output.Panel("", lines...)
}

// Projects lists showcased work with its stack.
type Projects struct{}

func (Projects) Name() string        { return "projects" }
func (Projects) Description() string { return "Featured projects" }

func (Projects) Execute(api.Context, args.Args) output.Output {
	var lines []output.Line
	for _, p := range profile.Projects {
		lines = append(lines, output.L(p.Name, "— "+strings.Join(p.Stack, " · ")))
		lines = append(lines, output.Plain("• "+p.Desc))
	}
	return output.Panel("", lines...)
}

// Contact shows phone, email, location and any links.
type Contact struct {
	Profile profile.Profile
}

func (Contact) Name() string        { return "contact" }
func (Contact) Description() string { return "Contact details" }

func (c Contact) Execute(api.Context, args.Args) output.Output {
	p := c.Profile
	lines := []output.Line{
		output.L("Phone", p.Phone),
		output.L("Email", p.Email),
		output.L("Location", p.Location),
	}
	for _, link := range []struct{ label, url string }{
		{"Website", p.Website}, {"GitHub", p.GitHub}, {"LinkedIn", p.LinkedIn},
	} {
		if link.url != "" {
			lines = append(lines, output.L(link.label, link.url))
		}
	}
	return output.Panel("", lines...)
}

// Profile dumps every editable field.
type Profile struct {
	Profile profile.Profile
}

func (Profile) Name() string        { return "profile" }
func (Profile) Description() string { return "Show editable profile fields" }

func (c Profile) Execute(api.Context, args.Args) output.Output {
	lines := make([]output.Line, 0, len(profile.Fields)+1)
	for _, f := range profile.Fields {
		v, _ := c.Profile.Get(f)
		if v == "" {
			v = "—"
		}
		lines = append(lines, output.L(f, v))
	}
	lines = append(lines, output.Plain("edit with: set <field> <value>"))
	return output.Panel("Profile", lines...)
}
