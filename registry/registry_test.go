// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package registry

import (
	"testing"

	"metrix/args"
	"metrix/commands/api"
	"metrix/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named string

func (n named) Name() string        { return string(n) }
func (n named) Description() string { return "desc " + string(n) }
func (n named) Execute(api.Context, args.Args) output.Output {
	return output.Text(string(n))
}

func TestRegistryKeepsOrder(t *testing.T) {
	r := New()
	r.Register(named("whoami"))
	r.Register(named("clear"))
	r.Register(named("whoami"))

	names := []string{}
	for _, c := range r.All() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"whoami", "clear"}, names)
	assert.Equal(t, 2, r.Len())
}

func TestRegistryIsCaseSensitive(t *testing.T) {
	r := New()
	r.Register(named("help"))
	_, ok := r.Get("HELP")
	assert.False(t, ok)
}

func TestAliasIsHiddenAndDelegates(t *testing.T) {
	r := New()
	help := named("help")
	r.Register(help)
	r.Alias("?", help)

	cmd, ok := r.Get("?")
	require.True(t, ok)
	assert.Equal(t, output.Text("help"), cmd.Execute(api.Context{}, args.Args{}))
	assert.Equal(t, "desc help", cmd.Description())
	assert.Len(t, r.Visible(), 1)
	assert.Len(t, r.All(), 2)
}

func TestSuggestAndMissing(t *testing.T) {
	r := New()
	for _, n := range []string{"export", "experience", "clear"} {
		r.Register(named(n))
	}
	assert.Equal(t, []string{"experience", "export"}, r.Suggest("ex"))
	assert.Equal(t, []string{"help"}, r.Missing("help", "clear", "export"))
}
