// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/ui/styles"
	"github.com/jeranaias/folio-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// KeyHint is one "key description" pair shown in the status bar.
type KeyHint struct {
	Key  string
	Desc string
}

// StatusBar shows the current section, key hints and the last message.
type StatusBar struct {
	theme   *styles.Theme
	section string
	hints   []KeyHint
	message string
	kind    StatusKind
	width   int
}

// NewStatusBar creates a status bar with the given key hints.
func NewStatusBar(theme *styles.Theme, hints ...KeyHint) *StatusBar {
	return &StatusBar{theme: theme, hints: hints}
}

// SetWidth sets the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetSection sets the section title shown on the left.
func (s *StatusBar) SetSection(title string) {
	s.section = title
}

// SetMessage replaces the status message.
func (s *StatusBar) SetMessage(text string, kind StatusKind) {
	s.message = text
	s.kind = kind
}

// Message returns the current message and its kind.
func (s *StatusBar) Message() (string, StatusKind) {
	return s.message, s.kind
}

// ClearMessage removes the status message.
func (s *StatusBar) ClearMessage() {
	s.message = ""
	s.kind = StatusInfo
}

// View renders the bar: section on the left, message or hints on the right.
func (s *StatusBar) View() string {
	left := s.theme.StatusSection.Render(s.section)

	var right string
	if s.message != "" {
		right = s.renderMessage()
	} else {
		parts := make([]string, 0, len(s.hints))
		for _, h := range s.hints {
			parts = append(parts, s.theme.ShortcutKey.Render(h.Key)+" "+s.theme.ShortcutDesc.Render(h.Desc))
		}
		right = strings.Join(parts, "  ")
	}

	if s.width <= 0 {
		return s.theme.StatusBar.Render(left + "  " + right)
	}

	inner := s.width - 2 // padding
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Not enough room: the message wins over the hints.
		if s.message != "" {
			right = s.renderMessageWidth(inner - lipgloss.Width(left) - 1)
		} else {
			right = ""
		}
		gap = max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	}
	return s.theme.StatusBar.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (s *StatusBar) renderMessage() string {
	return s.renderMessageWidth(0)
}

// renderMessageWidth renders the message with its indicator, truncated to
// width columns when width is positive.
func (s *StatusBar) renderMessageWidth(width int) string {
	style := s.theme.StatusInfo
	indicator := styles.StatusIndicators.Info
	switch s.kind {
	case StatusSuccess:
		style = s.theme.StatusSuccess
		indicator = styles.StatusIndicators.Success
	case StatusError:
		style = s.theme.StatusError
		indicator = styles.StatusIndicators.Error
	}
	text := indicator + " " + s.message
	if width > 0 {
		text = util.TruncateWidth(text, width)
	}
	return style.Render(text)
}
