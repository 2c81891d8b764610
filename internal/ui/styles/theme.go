// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Options configures NewTheme.
type Options struct {
	// Renderer binds styles to an output. Nil uses lipgloss' default renderer.
	Renderer *lipgloss.Renderer
	// NoColor forces the ASCII color profile.
	NoColor bool
}

// Theme holds all the styled components for the application.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	renderer *lipgloss.Renderer

	// ==========================================================================
	// HEADER
	// ==========================================================================

	Header      lipgloss.Style
	HeaderBrand lipgloss.Style
	HeaderTab   lipgloss.Style
	HeaderTabOn lipgloss.Style

	// ==========================================================================
	// SECTION PANE
	// ==========================================================================

	SectionPane        lipgloss.Style
	SectionPaneFocused lipgloss.Style

	// ==========================================================================
	// TERMINAL
	// ==========================================================================

	TerminalBox        lipgloss.Style
	TerminalBoxFocused lipgloss.Style
	TerminalTitle      lipgloss.Style
	TerminalPrompt     lipgloss.Style
	TerminalEcho       lipgloss.Style
	TerminalOutput     lipgloss.Style
	TerminalError      lipgloss.Style

	// ==========================================================================
	// COMMAND PALETTE
	// ==========================================================================

	PaletteBox          lipgloss.Style
	PaletteInput        lipgloss.Style
	PaletteHeading      lipgloss.Style
	PaletteItem         lipgloss.Style
	PaletteItemSelected lipgloss.Style
	PaletteMatch        lipgloss.Style
	PaletteShortcut     lipgloss.Style
	PaletteEmpty        lipgloss.Style
	PaletteFooter       lipgloss.Style

	// ==========================================================================
	// STATUS BAR
	// ==========================================================================

	StatusBar     lipgloss.Style
	StatusSection lipgloss.Style
	ShortcutKey   lipgloss.Style
	ShortcutDesc  lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
}

// NewTheme creates a theme with all styles configured.
func NewTheme(opts Options) *Theme {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	if opts.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}

	t := &Theme{
		IsDark:       r.HasDarkBackground(),
		ColorProfile: r.ColorProfile(),
		renderer:     r,
	}
	t.initStyles()
	return t
}

// Renderer returns the renderer the styles are bound to.
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// NoColor reports whether colors are disabled.
func (t *Theme) NoColor() bool {
	return t.ColorProfile == termenv.Ascii
}

// GlamourStyle names the glamour standard style matching the terminal.
func (t *Theme) GlamourStyle() string {
	switch {
	case t.NoColor():
		return "notty"
	case t.IsDark:
		return "dark"
	default:
		return "light"
	}
}

func (t *Theme) initStyles() {
	s := t.renderer.NewStyle

	// Header
	t.Header = s().
		Background(SurfaceDim).
		Padding(0, 1)

	t.HeaderBrand = s().
		Bold(true).
		Foreground(Primary)

	t.HeaderTab = s().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.HeaderTabOn = s().
		Foreground(TextInverse).
		Background(Primary).
		Bold(true).
		Padding(0, 1)

	// Section pane
	t.SectionPane = s().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.SectionPaneFocused = t.SectionPane.
		BorderForeground(Primary)

	// Terminal
	t.TerminalBox = s().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.TerminalBoxFocused = t.TerminalBox.
		BorderForeground(Primary)

	t.TerminalTitle = s().
		Foreground(TextSecondary).
		Bold(true)

	t.TerminalPrompt = s().
		Foreground(Primary).
		Bold(true)

	t.TerminalEcho = s().
		Foreground(Primary).
		Bold(true)

	t.TerminalOutput = s().
		Foreground(TextPrimary)

	t.TerminalError = s().
		Foreground(Rose)

	// Command palette
	t.PaletteBox = s().
		Background(Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)

	t.PaletteInput = s().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		BorderForeground(Overlay)

	t.PaletteHeading = s().
		Foreground(TextMuted).
		Bold(true).
		MarginTop(1)

	t.PaletteItem = s().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.PaletteItemSelected = s().
		Background(PrimaryDeep).
		Foreground(TextInverse).
		Bold(true).
		Padding(0, 1)

	t.PaletteMatch = s().
		Foreground(Cyan).
		Bold(true)

	t.PaletteShortcut = s().
		Foreground(TextMuted)

	t.PaletteEmpty = s().
		Foreground(TextMuted).
		Italic(true).
		Padding(1, 1)

	t.PaletteFooter = s().
		Foreground(TextMuted).
		MarginTop(1)

	// Status bar
	t.StatusBar = s().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.StatusSection = s().
		Foreground(Primary).
		Bold(true)

	t.ShortcutKey = s().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = s().
		Foreground(TextMuted)

	t.StatusInfo = s().
		Foreground(TextSecondary)

	t.StatusSuccess = s().
		Foreground(Emerald)

	t.StatusError = s().
		Foreground(Rose).
		Bold(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns, terminal below the section
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns, terminal beside the section
)
