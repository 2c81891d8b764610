// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package palette implements the command palette.
package palette

// Group is the category an action is listed under.
type Group int

const (
	GroupNavigation Group = iota
	GroupTools
	GroupConnect
)

// Groups lists every group in display order.
var Groups = []Group{GroupNavigation, GroupTools, GroupConnect}

// Heading returns the title rendered above the group.
func (g Group) Heading() string {
	switch g {
	case GroupNavigation:
		return "Navigation"
	case GroupTools:
		return "The Stack (Tools)"
	case GroupConnect:
		return "Connect"
	default:
		return "Other"
	}
}

// String returns a short lowercase name for logs and config.
func (g Group) String() string {
	switch g {
	case GroupNavigation:
		return "navigation"
	case GroupTools:
		return "tools"
	case GroupConnect:
		return "connect"
	default:
		return "other"
	}
}

// Action is a single selectable palette entry.
type Action struct {
	// ID is a stable identifier, e.g. "nav-about".
	ID string

	// Label is the display text and the text the query is matched against.
	Label string

	// Group the action is listed under.
	Group Group

	// Icon is a short glyph rendered before the label.
	Icon string

	// ShortcutHint is display-only (e.g. "G A"); it binds nothing.
	ShortcutHint string

	// Effect runs when the action is selected.
	Effect func() error
}

// Key returns label+group, which is unique within a palette.
func (a Action) Key() string {
	return a.Group.String() + "/" + a.Label
}
