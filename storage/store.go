// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package storage provides the durable key-value store behind the profile
// record and the motion override flag.
package storage

import (
	"context"
	"errors"
)

var ErrClosed = errors.New("storage: store is closed")

// Store is a string key-value store. Get reports found=false for missing keys.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
