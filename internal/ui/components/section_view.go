// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/folio-tui/internal/logging"
	"github.com/jeranaias/folio-tui/internal/site"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// =============================================================================
// SECTION VIEW
// =============================================================================

// SectionView renders one site section as markdown in a scrollable pane.
type SectionView struct {
	theme    *styles.Theme
	viewport viewport.Model
	section  site.Section

	// rendered caches glamour output per section for the current width.
	rendered    map[string]string
	renderWidth int

	width   int
	height  int
	focused bool
}

// NewSectionView creates a section pane showing sec.
func NewSectionView(sec site.Section, theme *styles.Theme) *SectionView {
	sv := &SectionView{
		theme:    theme,
		viewport: viewport.New(0, 0),
		section:  sec,
		rendered: make(map[string]string),
	}
	return sv
}

// Section returns the section being shown.
func (sv *SectionView) Section() site.Section {
	return sv.section
}

// SetSection switches the pane to sec and scrolls to the top.
func (sv *SectionView) SetSection(sec site.Section) {
	sv.section = sec
	sv.refresh()
	sv.viewport.GotoTop()
}

// Focus marks the pane as receiving scroll keys.
func (sv *SectionView) Focus() {
	sv.focused = true
}

// Blur removes focus.
func (sv *SectionView) Blur() {
	sv.focused = false
}

// Focused reports whether the pane has focus.
func (sv *SectionView) Focused() bool {
	return sv.focused
}

// SetSize sets the outer dimensions including the border.
func (sv *SectionView) SetSize(width, height int) {
	sv.width = width
	sv.height = height
	sv.viewport.Width = max(width-4, 1)
	sv.viewport.Height = max(height-2, 1)
	sv.refresh()
}

// Update scrolls the pane while focused.
func (sv *SectionView) Update(msg tea.Msg) (*SectionView, tea.Cmd) {
	if !sv.focused {
		return sv, nil
	}
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		var cmd tea.Cmd
		sv.viewport, cmd = sv.viewport.Update(msg)
		return sv, cmd
	}
	return sv, nil
}

// Content returns the rendered markdown of the current section.
func (sv *SectionView) Content() string {
	return sv.render(sv.section)
}

func (sv *SectionView) refresh() {
	sv.viewport.SetContent(sv.render(sv.section))
}

// render converts markdown with glamour, caching per width. Rendering
// failures fall back to the raw markdown.
func (sv *SectionView) render(sec site.Section) string {
	width := sv.viewport.Width
	if width != sv.renderWidth {
		sv.rendered = make(map[string]string)
		sv.renderWidth = width
	}
	if out, ok := sv.rendered[sec.ID]; ok {
		return out
	}

	out := sec.Markdown
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(sv.theme.GlamourStyle()),
		glamour.WithColorProfile(sv.theme.ColorProfile),
		glamour.WithWordWrap(max(width-2, 20)),
	)
	if err == nil {
		out, err = r.Render(sec.Markdown)
	}
	if err != nil {
		logging.L().Warnw("markdown render failed", "section", sec.ID, "error", err)
		out = sec.Markdown
	}

	sv.rendered[sec.ID] = out
	return out
}

// AtTop reports whether the pane is scrolled to the top.
func (sv *SectionView) AtTop() bool {
	return sv.viewport.AtTop()
}

// View renders the pane.
func (sv *SectionView) View() string {
	box := sv.theme.SectionPane
	if sv.focused {
		box = sv.theme.SectionPaneFocused
	}
	if sv.width > 0 {
		box = box.Width(sv.width - 2)
	}
	return box.Render(sv.viewport.View())
}
