// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Saver is the "save a file" side effect.
type Saver interface {
	Save(filename string, data []byte, mime string) error
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(filename string, data []byte, mime string) error

func (f SaverFunc) Save(filename string, data []byte, mime string) error {
	return f(filename, data, mime)
}

// FileSaver writes exports into Dir.
type FileSaver struct {
	Dir string
}

func (s FileSaver) Save(filename string, data []byte, _ string) error {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
