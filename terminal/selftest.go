// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package terminal

import (
	"fmt"
	"strings"

	"metrix/args"
	"metrix/commands/api"
	"metrix/output"
	"metrix/registry"
	metrixlog "metrix/utils/log"
)

// RequiredCommands must be registered for the terminal to be usable.
var RequiredCommands = []string{"help", "skills", "experience", "clear", "export"}

// Policy describes the ambient animation the self-test checks.
type Policy struct {
	Charset      []rune
	InitialSpeed float64
}

type Result struct {
	Name string
	OK   bool
	Info string
}

// SelfTest runs the startup sanity checks against a populated registry.
// Handlers are run with an empty context so nothing is saved or mutated.
func SelfTest(reg *registry.Registry, pol Policy) []Result {
	var res []Result

	missing := reg.Missing(RequiredCommands...)
	res = append(res, Result{
		Name: "required commands registered",
		OK:   len(missing) == 0,
		Info: strings.Join(missing, ", "),
	})

	help := Result{Name: "help mentions export"}
	if cmd, ok := reg.Get("help"); ok {
		if txt, ok := cmd.Execute(api.Context{}, args.New("")).(output.Text); ok {
			help.OK = strings.Contains(string(txt), "export")
		} else {
			help.Info = "help did not return text"
		}
	}
	res = append(res, help)

	pdf := Result{Name: "export pdf is rejected"}
	if cmd, ok := reg.Get("export"); ok {
		out := cmd.Execute(api.Context{}, args.New("pdf"))
		_, pdf.OK = out.(output.Block)
		if !pdf.OK {
			pdf.Info = fmt.Sprintf("got %T", out)
		}
	}
	res = append(res, pdf)

	charset := Result{Name: "charset is alphanumeric", OK: len(pol.Charset) > 0}
	for _, r := range pol.Charset {
		if !(r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			charset.OK = false
			charset.Info = fmt.Sprintf("unexpected rune %q", r)
			break
		}
	}
	res = append(res, charset)

	res = append(res, Result{
		Name: "initial speed is calm",
		OK:   pol.InitialSpeed <= 1.0,
		Info: fmt.Sprintf("%.2f", pol.InitialSpeed),
	})
	return res
}

// Report logs failed checks at error level and a summary at debug level.
func Report(log *metrixlog.Logger, results []Result) {
	failed := 0
	for _, r := range results {
		if !r.OK {
			failed++
			log.Errorw("self-test failed", "check", r.Name, "info", r.Info)
		}
	}
	log.Debugw("self-test finished", "checks", len(results), "failed", failed)
}
