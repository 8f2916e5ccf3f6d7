// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"metrix/storage"
	metrixlog "metrix/utils/log"
)

// StorageKey is where the JSON record lives.
const StorageKey = "metrix.profile"

// Repository reads and writes the profile record through a Store.
type Repository struct {
	store storage.Store
	log   *metrixlog.Logger
}

func NewRepository(store storage.Store, log *metrixlog.Logger) *Repository {
	if log == nil {
		log = metrixlog.Nop()
	}
	return &Repository{store: store, log: log.With("component", "profile")}
}

// Load never fails: missing or malformed data yields Default with stored
// fields merged over it.
func (r *Repository) Load(ctx context.Context) Profile {
	p := Default()
	raw, found, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		r.log.Warnw("profile store unreadable, using defaults", "error", err)
		return p
	}
	if !found {
		return p
	}

	merged := p
	if err := json.Unmarshal([]byte(raw), &merged); err != nil {
		r.log.Warnw("stored profile is not valid JSON, using defaults", "error", err)
		return p
	}
	if merged.Name == "" {
		merged.Name = p.Name
	}
	return merged
}

// Save persists p.
func (r *Repository) Save(ctx context.Context, p Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := r.store.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist profile: %w", err)
	}
	return nil
}
