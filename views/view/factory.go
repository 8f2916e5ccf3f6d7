// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

// Factory builds a view for the given content size.
type Factory func(width, height int) View
