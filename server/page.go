// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package server

import (
	"bytes"
	"fmt"
	"html/template"

	"metrix/export"
	"metrix/profile"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	markdown  = goldmark.New()
	sanitizer = bluemonday.UGCPolicy()
)

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body{margin:0;background:#0f0f0f;color:#e5e7eb;font:15px/1.6 ui-monospace,Menlo,Consolas,monospace}
main{max-width:760px;margin:0 auto;padding:32px 16px}
h1,h2{color:#22c55e}
a{color:#38bdf8}
strong{color:#f9fafb}
</style>
</head>
<body>
<main>
{{.Body}}
</main>
</body>
</html>
`))

// renderPage turns the markdown export into a sanitized HTML document.
func renderPage(p profile.Profile) ([]byte, error) {
	md, err := export.Build(export.Markdown, p)
	if err != nil {
		return nil, err
	}

	var raw bytes.Buffer
	if err := markdown.Convert(md.Data, &raw); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}
	clean := sanitizer.SanitizeBytes(raw.Bytes())

	var out bytes.Buffer
	err = pageTemplate.Execute(&out, struct {
		Title string
		Body  template.HTML
	}{
		Title: p.Name + " · " + p.Title,
		Body:  template.HTML(clean),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return out.Bytes(), nil
}
