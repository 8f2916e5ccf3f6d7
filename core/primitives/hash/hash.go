// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package hash fingerprints value snapshots so callers can detect change
// without keeping deep copies around.
package hash

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

func Fmt(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

func Compute(v any) (uint64, error) {
	return hashstructure.Hash(v, hashstructure.FormatV2, nil)
}

// Of returns the formatted fingerprint of v, or "" if v cannot be hashed.
func Of(v any) string {
	h, err := Compute(v)
	if err != nil {
		return ""
	}
	return Fmt(h)
}

// Changed reports whether v no longer matches the fingerprint prev.
func Changed(prev string, v any) bool {
	return prev == "" || prev != Of(v)
}
