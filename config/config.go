// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	metrixlog "metrix/utils/log"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppName = "metrix"
	prefix  = "METRIX"
)

// Tweener names accepted by TWEENER.
const (
	TweenerSpring = "spring"
	TweenerNative = "native"
)

// Config holds every METRIX_* setting. Flags may override fields after Load.
type Config struct {
	Env      string `envconfig:"ENV" default:"prod"`
	LogLevel string `envconfig:"LOG_LEVEL"`

	DBPath    string `envconfig:"DB_PATH"`
	Ephemeral bool   `envconfig:"EPHEMERAL" default:"false"`
	ExportDir string `envconfig:"EXPORT_DIR" default:"."`

	ReducedMotion bool          `envconfig:"REDUCED_MOTION" default:"false"`
	Tweener       string        `envconfig:"TWEENER" default:"spring"`
	TypingDelay   time.Duration `envconfig:"TYPING_DELAY" default:"4ms"`
	BootDelay     time.Duration `envconfig:"BOOT_DELAY" default:"6ms"`
	BootCommands  []string      `envconfig:"BOOT_COMMANDS" default:"whoami,skills,experience,projects"`

	Addr string `envconfig:"ADDR" default:":8080"`
}

// Load reads the environment. NO_MOTION is honoured as a platform-level
// reduced-motion preference alongside METRIX_REDUCED_MOTION.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if v := os.Getenv("NO_MOTION"); v != "" && v != "0" {
		cfg.ReducedMotion = true
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(metrixlog.StateDir(AppName), "profile.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Tweener) {
	case TweenerSpring, TweenerNative:
	default:
		return fmt.Errorf("config error: TWEENER must be %q or %q, got %q", TweenerSpring, TweenerNative, c.Tweener)
	}
	if c.TypingDelay < 0 || c.BootDelay < 0 {
		return fmt.Errorf("config error: typing delays must be non-negative")
	}
	if len(c.BootCommands) == 0 {
		return fmt.Errorf("config error: BOOT_COMMANDS must name at least one command")
	}
	return nil
}
