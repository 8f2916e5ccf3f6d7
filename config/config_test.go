// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("NO_MOTION", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, TweenerSpring, cfg.Tweener)
	require.Equal(t, 4*time.Millisecond, cfg.TypingDelay)
	require.Equal(t, []string{"whoami", "skills", "experience", "projects"}, cfg.BootCommands)
	require.NotEmpty(t, cfg.DBPath)
	require.False(t, cfg.ReducedMotion)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("METRIX_TWEENER", "native")
	t.Setenv("METRIX_BOOT_COMMANDS", "whoami,contact")
	t.Setenv("METRIX_DB_PATH", "/tmp/x.db")
	t.Setenv("NO_MOTION", "1")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, TweenerNative, cfg.Tweener)
	require.Equal(t, []string{"whoami", "contact"}, cfg.BootCommands)
	require.Equal(t, "/tmp/x.db", cfg.DBPath)
	require.True(t, cfg.ReducedMotion)
}

func TestValidateRejectsUnknownTweener(t *testing.T) {
	cfg := Config{Tweener: "anime", BootCommands: []string{"whoami"}}
	require.Error(t, cfg.Validate())
}
