// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package profile

// Skill is one proficiency entry.
type Skill struct {
	Name    string
	Percent string
}

// SkillCategory groups skills under a heading with its badge set.
type SkillCategory struct {
	Title      string
	BadgeTitle string
	Skills     []Skill
	Badges     []string
}

// Role is one entry of the career history.
type Role struct {
	Title      string
	Company    string
	Period     string
	Highlights []string
}

// Project is one showcased project.
type Project struct {
	Name       string
	Stack      []string
	Desc       string
	Highlights []string
}

var (
	CoreStack    = []string{"TypeScript", "Angular", "Vue 3", "React"}
	BackendStack = []string{"Node.js", "NestJS", "MongoDB", "PostgreSQL", "Docker", "CI/CD", "Cloud"}

	Skills = []SkillCategory{
		{
			Title:      "Frontend",
			BadgeTitle: "Frameworks & Toolkit",
			Skills: []Skill{
				{"Angular", "90%"},
				{"Vue 3 / Vite", "85%"},
				{"React", "75%"},
				{"TypeScript", "90%"},
			},
			Badges: CoreStack,
		},
		{
			Title:      "Backend/DevOps",
			BadgeTitle: "Backend / DevOps Tools",
			Skills: []Skill{
				{"Node.js", "85%"},
				{"NestJS", "80%"},
				{"MongoDB", "75%"},
				{"PostgreSQL", "70%"},
				{"Docker · CI/CD · Cloud", "65–75%"},
			},
			Badges: BackendStack,
		},
	}

	Experience = []Role{
		{
			Title:   "Senior Full-Stack Developer",
			Company: "Siam IoT Co., Ltd.",
			Period:  "2022–present",
			Highlights: []string{
				"Module Federation cut TTI by ~40%",
				"NestJS + MongoDB services with logging and tracing",
				"Design System + Storybook",
			},
		},
		{
			Title:   "Full-Stack Developer",
			Company: "MG Solutions",
			Period:  "2019–2022",
			Highlights: []string{
				"Real-time dashboard (MQTT/WebSocket)",
				"Migrated Vue 2 → Vue 3 + Vite, build time down ~60%",
			},
		},
	}

	Projects = []Project{
		{
			Name:       "Learning Center",
			Stack:      []string{"Angular", "M3", "SSR"},
			Desc:       "Online learning hub with SEO and server-side rendering.",
			Highlights: []string{"Lighthouse SEO 100"},
		},
		{
			Name:  "IoT Admin Panel",
			Stack: []string{"Vue 3", "Quasar", "MQTT"},
			Desc:  "Real-time device management console with RBAC.",
		},
		{
			Name:  "Log Analytics Library",
			Stack: []string{"Node.js", "NestJS", "Decorator"},
			Desc:  "Interceptors and decorators for automatic logging and tracing.",
		},
	}
)
