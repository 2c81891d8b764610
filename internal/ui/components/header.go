// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/site"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header shows the brand and a tab per section with the active one marked.
type Header struct {
	theme    *styles.Theme
	brand    string
	sections []site.Section
	active   string
	width    int
}

// NewHeader creates a header listing sections.
func NewHeader(theme *styles.Theme, brand string, sections []site.Section) *Header {
	return &Header{theme: theme, brand: brand, sections: sections}
}

// SetWidth sets the header width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetActive marks the section with the given ID.
func (h *Header) SetActive(id string) {
	h.active = id
}

// View renders the header. Tabs that do not fit are dropped from the right.
func (h *Header) View() string {
	brand := h.theme.HeaderBrand.Render(h.brand)

	var tabs []string
	used := lipgloss.Width(brand) + 2 // header padding
	for _, sec := range h.sections {
		style := h.theme.HeaderTab
		if sec.ID == h.active {
			style = h.theme.HeaderTabOn
		}
		tab := style.Render(sec.Title)
		if h.width > 0 && used+lipgloss.Width(tab)+1 > h.width {
			break
		}
		used += lipgloss.Width(tab) + 1
		tabs = append(tabs, tab)
	}

	line := brand
	if len(tabs) > 0 {
		line += " " + strings.Join(tabs, " ")
	}

	style := h.theme.Header
	if h.width > 0 {
		style = style.Width(h.width)
	}
	return style.Render(line)
}
