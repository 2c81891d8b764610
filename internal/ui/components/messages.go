// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/folio-tui/internal/palette"
)

// ActionResultMsg reports that a palette action ran. Err is the effect's
// error, unchanged.
type ActionResultMsg struct {
	Action palette.Action
	Err    error
}

// StatusKind selects the status bar message style.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// StatusMsg sets the status bar message.
type StatusMsg struct {
	Text string
	Kind StatusKind
}

// SetStatus returns a command emitting a StatusMsg.
func SetStatus(text string, kind StatusKind) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text, Kind: kind}
	}
}
