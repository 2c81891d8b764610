// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the folio TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Color System (colors.go)

  - Primary (indigo) - brand accent, echo lines, focused borders
  - Cyan - shortcut keys and palette match highlights
  - Emerald - successful status messages
  - Rose - terminal errors and failed actions
  - Slate surfaces and text tones for panes and hints

# Theme (theme.go)

A Theme is bound to a lipgloss.Renderer. Local runs use the default renderer
on stdout; every SSH session builds its own renderer on the session so color
detection follows the remote terminal. NoColor forces the ASCII profile.

	theme := styles.NewTheme(styles.Options{NoColor: cfg.UI.NoColor})
	line := theme.TerminalError.Render(text)
*/
package styles
