// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/palette"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
	"github.com/jeranaias/folio-tui/internal/util"
)

// =============================================================================
// COMMAND PALETTE
// =============================================================================

// PaletteView is the overlay for a palette.Palette. Open state lives in the
// palette itself, so the shortcut handler can toggle it from outside.
type PaletteView struct {
	palette *palette.Palette
	theme   *styles.Theme
	input   textinput.Model

	// Selected row in the flattened, grouped list.
	selected int

	// Open state seen at the last Sync.
	wasOpen bool

	width  int
	height int
}

// NewPaletteView creates the overlay.
func NewPaletteView(p *palette.Palette, theme *styles.Theme) *PaletteView {
	ti := textinput.New()
	ti.Placeholder = "Type a command or search..."
	ti.Prompt = "> "
	ti.CharLimit = 100
	ti.Width = 50
	ti.PromptStyle = theme.PaletteMatch
	ti.TextStyle = theme.PaletteItem.UnsetPadding()
	ti.PlaceholderStyle = theme.PaletteShortcut.Italic(true)

	return &PaletteView{palette: p, theme: theme, input: ti}
}

// Palette returns the underlying palette.
func (pv *PaletteView) Palette() *palette.Palette {
	return pv.palette
}

// IsVisible reports whether the overlay is shown.
func (pv *PaletteView) IsVisible() bool {
	return pv.palette.IsOpen()
}

// SetSize sets the area the box is centered in.
func (pv *PaletteView) SetSize(width, height int) {
	pv.width = width
	pv.height = height
}

// Sync aligns the input with the palette after it was opened or closed
// elsewhere. It returns the focus command when the palette just opened.
func (pv *PaletteView) Sync() tea.Cmd {
	open := pv.palette.IsOpen()
	defer func() { pv.wasOpen = open }()

	switch {
	case open && !pv.wasOpen:
		pv.input.SetValue(pv.palette.Query())
		pv.input.CursorEnd()
		pv.selected = 0
		return pv.input.Focus()
	case !open && pv.wasOpen:
		pv.input.Blur()
	}
	return nil
}

// Items returns the visible actions in display order.
func (pv *PaletteView) Items() []palette.Action {
	var items []palette.Action
	for _, sec := range pv.palette.Sections() {
		items = append(items, sec.Actions...)
	}
	return items
}

// Selected returns the highlighted action.
func (pv *PaletteView) Selected() (palette.Action, bool) {
	items := pv.Items()
	if pv.selected < 0 || pv.selected >= len(items) {
		return palette.Action{}, false
	}
	return items[pv.selected], true
}

// Update handles keys while the palette is open.
func (pv *PaletteView) Update(msg tea.Msg) (*PaletteView, tea.Cmd) {
	if !pv.palette.IsOpen() {
		return pv, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			pv.palette.Close()
			return pv, pv.Sync()

		case "enter":
			action, ok := pv.Selected()
			if !ok {
				return pv, nil
			}
			err := pv.palette.Select(action)
			pv.Sync()
			return pv, func() tea.Msg {
				return ActionResultMsg{Action: action, Err: err}
			}

		case "up", "shift+tab", "ctrl+p":
			pv.move(-1)
			return pv, nil

		case "down", "tab", "ctrl+n":
			pv.move(1)
			return pv, nil
		}
	}

	previous := pv.input.Value()
	var cmd tea.Cmd
	pv.input, cmd = pv.input.Update(msg)
	if pv.input.Value() != previous {
		pv.palette.SetQuery(pv.input.Value())
		pv.selected = 0
	}
	return pv, cmd
}

// move shifts the selection with wrap-around.
func (pv *PaletteView) move(delta int) {
	n := len(pv.Items())
	if n == 0 {
		return
	}
	pv.selected = ((pv.selected+delta)%n + n) % n
}

// View renders the palette box centered in the area given to SetSize.
func (pv *PaletteView) View() string {
	if !pv.palette.IsOpen() {
		return ""
	}

	boxWidth := 60
	if pv.width > 0 && pv.width < boxWidth+4 {
		boxWidth = pv.width - 4
	}
	if boxWidth < 30 {
		boxWidth = 30
	}
	inner := boxWidth - 4
	pv.input.Width = inner - lipgloss.Width(pv.input.Prompt) - 1

	parts := []string{pv.theme.PaletteInput.Width(inner).Render(pv.input.View())}

	sections := pv.palette.Sections()
	if len(sections) == 0 {
		parts = append(parts, pv.theme.PaletteEmpty.Render("No results found."))
	}

	row := 0
	query := strings.TrimSpace(pv.palette.Query())
	for _, sec := range sections {
		parts = append(parts, pv.theme.PaletteHeading.Render(sec.Group.Heading()))
		for _, a := range sec.Actions {
			parts = append(parts, pv.renderItem(a, query, row == pv.selected, inner))
			row++
		}
	}

	parts = append(parts, pv.theme.PaletteFooter.Render("↑↓ navigate · enter select · esc close"))

	box := pv.theme.PaletteBox.Width(boxWidth).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	if pv.width > 0 && pv.height > 0 {
		return lipgloss.Place(pv.width, pv.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// renderItem renders one row: icon, label with matched runes highlighted,
// and the shortcut hint right-aligned.
func (pv *PaletteView) renderItem(a palette.Action, query string, selected bool, width int) string {
	style := pv.theme.PaletteItem
	if selected {
		style = pv.theme.PaletteItemSelected
	}

	hint := ""
	if a.ShortcutHint != "" {
		hint = " " + a.ShortcutHint
	}
	icon := util.PadRight(a.Icon, 3)
	labelWidth := width - 2 - util.StringWidth(icon) - util.StringWidth(hint)
	label := util.TruncateWidth(a.Label, labelWidth)

	text := pv.highlight(label, query, selected)
	gap := max(labelWidth-util.StringWidth(label), 0)
	row := icon + text + strings.Repeat(" ", gap)
	if hint != "" {
		row += pv.theme.PaletteShortcut.Render(hint)
	}
	return style.Width(width).Render(row)
}

// highlight styles the runes of label matched by query. Labels whose case
// folding changes the rune count are left plain.
func (pv *PaletteView) highlight(label, query string, selected bool) string {
	if query == "" || selected {
		return label
	}
	positions := palette.HighlightMatch(query, label)
	runes := []rune(label)
	if len(positions) == 0 || positions[len(positions)-1] >= len(runes) {
		return label
	}

	matched := make(map[int]bool, len(positions))
	for _, p := range positions {
		matched[p] = true
	}
	var b strings.Builder
	for i, r := range runes {
		if matched[i] {
			b.WriteString(pv.theme.PaletteMatch.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
