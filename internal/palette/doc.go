// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package palette implements the command palette: a grouped list of actions,
// filtered by a fuzzy query, opened and closed by a global shortcut.
//
// # Key Types
//
//   - Action: one selectable entry bound to a side-effecting callback
//   - Group: Navigation, Tools or Connect
//   - Palette: open/closed state, query text and the action list
//   - KeySource: injected key event source the shortcut listener subscribes to
//
// # Usage
//
//	p := palette.New(actions...)
//	unmount := p.Mount(bus, "ctrl+k")
//	defer unmount()
//
//	p.SetQuery("git")
//	if err := p.Select(p.Visible()[0]); err != nil {
//	    // the palette is already closed here
//	}
package palette
