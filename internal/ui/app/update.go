// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/folio-tui/internal/site"
	"github.com/jeranaias/folio-tui/internal/ui/components"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.routeToFocused(msg)

	case components.ActionResultMsg:
		m.handleActionResult(msg)

	case components.StatusMsg:
		m.statusBar.SetMessage(msg.Text, msg.Kind)
	}

	return m, m.flush(cmd)
}

// flush batches cmd with commands queued by palette effects.
func (m *Model) flush(cmd tea.Cmd) tea.Cmd {
	if len(m.pending) == 0 {
		return cmd
	}
	cmds := append(m.pending, cmd)
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// The shortcut handler may toggle the palette from here.
	ev := m.bus.Dispatch(msg.String())
	syncCmd := m.paletteView.Sync()
	if ev.DefaultPrevented() {
		return syncCmd
	}

	if key.Matches(msg, m.keys.Quit) {
		m.Close()
		return tea.Quit
	}

	if m.paletteView.IsVisible() {
		var cmd tea.Cmd
		m.paletteView, cmd = m.paletteView.Update(msg)
		return tea.Batch(syncCmd, cmd)
	}

	switch {
	case key.Matches(msg, m.keys.NextFocus), key.Matches(msg, m.keys.PrevFocus):
		if m.focus == focusTerminal {
			return m.setFocus(focusSection)
		}
		return m.setFocus(focusTerminal)

	case m.focus == focusSection && key.Matches(msg, m.keys.Section):
		idx := int(msg.Runes[0] - '1')
		if sections := site.Sections(); idx >= 0 && idx < len(sections) {
			if err := m.Navigate(sections[idx].ID); err != nil {
				m.log.Warnw("navigate failed", "error", err)
			}
		}
		return nil
	}

	return m.routeToFocused(msg)
}

func (m *Model) routeToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focus == focusTerminal {
		m.termView, cmd = m.termView.Update(msg)
	} else {
		m.sectionView, cmd = m.sectionView.Update(msg)
	}
	return cmd
}

// handleActionResult logs the action outcome. Failures also go to the
// status bar; the palette stays closed either way.
func (m *Model) handleActionResult(msg components.ActionResultMsg) {
	if msg.Err != nil {
		m.log.Warnw("palette action failed", "action", msg.Action.ID, "error", msg.Err)
		m.statusBar.SetMessage(msg.Action.Label+": "+msg.Err.Error(), components.StatusError)
		return
	}
	m.log.Debugw("palette action", "action", msg.Action.ID)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)

	m.header.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.paletteView.SetSize(width, max(height-2, 1))

	bodyHeight := max(height-2, 4) // header + status bar
	sectionW, sectionH, termW, termH := m.paneSizes(width, bodyHeight)
	m.sectionView.SetSize(sectionW, sectionH)
	m.termView.SetSize(termW, termH)
}
