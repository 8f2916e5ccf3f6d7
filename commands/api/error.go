// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package api

import (
	"errors"
	"fmt"
)

var ErrEmptyCommand = errors.New("empty command")

// UnknownCommandError is returned for names missing from the registry.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("%s: command not found", e.Name)
}

func ErrUnknownCommand(name string) error {
	return &UnknownCommandError{Name: name}
}
