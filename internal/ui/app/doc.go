// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package app provides the root Bubble Tea model of the folio TUI.

# Model (model.go)

Model composes the header, the section pane, the terminal, the command
palette overlay and the status bar. It owns the key bus the palette
shortcut is mounted on, and it implements site.Navigator so palette
actions can switch sections and open links.

# Update Loop (update.go)

Every key press is dispatched through the key bus first. A key whose
default was prevented (the palette shortcut) goes no further. Otherwise
the open palette gets the key, then the global bindings, then the focused
pane.

# View Rendering (view.go)

Wide terminals show the section and the terminal side by side; narrower
ones stack them. The open palette replaces the body.
*/
package app
