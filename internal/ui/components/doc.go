// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual UI components for the folio TUI.

Every component is a pointer type with an Update method returning itself and
a tea.Cmd where it takes input, a View method, and SetSize or SetWidth.
Components hold no domain state of their own: they render and drive the
terminal engine, the palette and the site sections they are given.

# Components

  - Header: brand and section tabs
  - SectionView: glamour-rendered section markdown in a viewport
  - TerminalView: the simulated command line around a terminal.Engine
  - PaletteView: the command palette overlay around a palette.Palette
  - StatusBar: current section, key hints and the last status message

# Messages

  - ActionResultMsg: a palette action ran, with its error if any
  - StatusMsg: sets the status bar message
*/
package components
