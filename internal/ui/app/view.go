// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// terminalRows is the stacked-layout terminal height.
const terminalRows = 12

// paneSizes splits the body between the section pane and the terminal.
func (m *Model) paneSizes(width, height int) (sectionW, sectionH, termW, termH int) {
	if m.theme.GetLayoutMode() == styles.LayoutWide {
		sectionW = width * 3 / 5
		return sectionW, height, width - sectionW, height
	}
	termH = min(terminalRows, height/2)
	return width, height - termH, width, termH
}

// View renders the whole screen.
func (m *Model) View() string {
	if m.closed {
		return ""
	}

	var body string
	switch {
	case m.paletteView.IsVisible():
		body = m.paletteView.View()
	case m.theme.GetLayoutMode() == styles.LayoutWide:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sectionView.View(), m.termView.View())
	default:
		body = lipgloss.JoinVertical(lipgloss.Left, m.sectionView.View(), m.termView.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		body,
		m.statusBar.View(),
	)
}
