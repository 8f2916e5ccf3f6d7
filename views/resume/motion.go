// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package resumeview

import (
	"context"

	"metrix/storage"
)

// MotionKey stores the user's reduced-motion override.
const MotionKey = "metrix.motion-ok"

// LoadMotionOverride reports whether the user asked for motion despite the
// platform preference. Storage errors count as no override.
func LoadMotionOverride(ctx context.Context, store storage.Store) bool {
	if store == nil {
		return false
	}
	v, ok, err := store.Get(ctx, MotionKey)
	return err == nil && ok && v == "1"
}

func SaveMotionOverride(ctx context.Context, store storage.Store, on bool) error {
	if store == nil {
		return nil
	}
	v := "0"
	if on {
		v = "1"
	}
	return store.Set(ctx, MotionKey, v)
}
