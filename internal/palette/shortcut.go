// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package palette implements the command palette.
package palette

import "strings"

// DefaultShortcuts toggle the palette when no shortcut is configured.
// Terminals cannot report the command key, so only ctrl+k is bound.
var DefaultShortcuts = []string{"ctrl+k"}

// KeyEvent is a key press delivered by a KeySource.
type KeyEvent interface {
	// Key is the normalized key name, e.g. "ctrl+k" or "enter".
	Key() string
	// PreventDefault stops the key from reaching other handlers.
	PreventDefault()
}

// KeySource delivers key presses to subscribers.
type KeySource interface {
	Subscribe(fn func(KeyEvent)) (unsubscribe func())
}

// Mount subscribes the toggle shortcut to src. Keys matching one of
// shortcuts (case-insensitive) are marked handled and toggle the palette,
// whatever currently has focus. With no shortcuts DefaultShortcuts is used.
// The returned unmount releases the subscription and is safe to call twice.
func (p *Palette) Mount(src KeySource, shortcuts ...string) (unmount func()) {
	if len(shortcuts) == 0 {
		shortcuts = DefaultShortcuts
	}
	bound := make(map[string]bool, len(shortcuts))
	for _, s := range shortcuts {
		bound[strings.ToLower(strings.TrimSpace(s))] = true
	}

	unsubscribe := src.Subscribe(func(ev KeyEvent) {
		if !bound[strings.ToLower(ev.Key())] {
			return
		}
		ev.PreventDefault()
		p.Toggle()
	})

	released := false
	return func() {
		if released {
			return
		}
		released = true
		unsubscribe()
	}
}
