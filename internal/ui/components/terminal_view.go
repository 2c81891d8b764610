// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/terminal"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
	"github.com/jeranaias/folio-tui/internal/util"
)

// =============================================================================
// TERMINAL VIEW
// =============================================================================

// TerminalView is the simulated command line: a scrollback viewport above
// a single input line, both backed by a terminal.Engine.
type TerminalView struct {
	engine   *terminal.Engine
	theme    *styles.Theme
	input    textinput.Model
	viewport viewport.Model

	title string

	// In-memory recall of submitted input, oldest first.
	history []string
	histPos int
	draft   string

	width   int
	height  int
	focused bool

	unsubscribe func()
}

// NewTerminalView creates a terminal view and subscribes it to engine changes.
func NewTerminalView(engine *terminal.Engine, theme *styles.Theme, title, prompt string) *TerminalView {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = `type "help"`
	ti.CharLimit = 256
	ti.PromptStyle = theme.TerminalPrompt
	ti.TextStyle = theme.TerminalOutput
	ti.PlaceholderStyle = theme.ShortcutDesc

	tv := &TerminalView{
		engine:   engine,
		theme:    theme,
		input:    ti,
		viewport: viewport.New(0, 0),
		title:    title,
	}
	tv.unsubscribe = engine.Subscribe(func(terminal.Change) {
		tv.refresh()
	})
	tv.refresh()
	return tv
}

// Close releases the engine subscription.
func (tv *TerminalView) Close() {
	if tv.unsubscribe != nil {
		tv.unsubscribe()
		tv.unsubscribe = nil
	}
}

// Engine returns the engine behind the view.
func (tv *TerminalView) Engine() *terminal.Engine {
	return tv.engine
}

// Focus focuses the input line.
func (tv *TerminalView) Focus() tea.Cmd {
	tv.focused = true
	return tv.input.Focus()
}

// Blur removes focus from the input line.
func (tv *TerminalView) Blur() {
	tv.focused = false
	tv.input.Blur()
}

// Focused reports whether the input line has focus.
func (tv *TerminalView) Focused() bool {
	return tv.focused
}

// SetSize sets the outer dimensions including the border.
func (tv *TerminalView) SetSize(width, height int) {
	tv.width = width
	tv.height = height

	inner := max(width-4, 1) // border + padding
	tv.viewport.Width = inner
	tv.viewport.Height = max(height-4, 1) // border, title, input
	tv.input.Width = max(inner-lipgloss.Width(tv.input.Prompt)-1, 1)
	tv.refresh()
}

// History returns the submitted inputs, oldest first.
func (tv *TerminalView) History() []string {
	return append([]string(nil), tv.history...)
}

// Update handles key input while focused.
func (tv *TerminalView) Update(msg tea.Msg) (*TerminalView, tea.Cmd) {
	if !tv.focused {
		return tv, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			tv.submit()
			return tv, nil
		case "up":
			tv.recall(-1)
			return tv, nil
		case "down":
			tv.recall(1)
			return tv, nil
		case "pgup":
			tv.viewport.HalfViewUp()
			return tv, nil
		case "pgdown":
			tv.viewport.HalfViewDown()
			return tv, nil
		}
	}

	if msg, ok := msg.(tea.MouseMsg); ok {
		var cmd tea.Cmd
		tv.viewport, cmd = tv.viewport.Update(msg)
		return tv, cmd
	}

	var cmd tea.Cmd
	tv.input, cmd = tv.input.Update(msg)
	tv.engine.SetInput(tv.input.Value())
	return tv, cmd
}

// submit hands the input buffer to the engine. The engine clears the buffer
// and notifies, which re-renders and scrolls to the bottom.
func (tv *TerminalView) submit() {
	raw := tv.input.Value()
	if strings.TrimSpace(raw) != "" {
		tv.history = append(tv.history, raw)
	}
	tv.histPos = len(tv.history)
	tv.draft = ""

	tv.engine.SetInput(raw)
	tv.engine.SubmitInput()
	tv.input.SetValue(tv.engine.Input())
}

// recall moves through history. Moving past the newest entry restores the
// line being typed before recall started.
func (tv *TerminalView) recall(delta int) {
	if len(tv.history) == 0 {
		return
	}
	if tv.histPos == len(tv.history) {
		tv.draft = tv.input.Value()
	}
	pos := tv.histPos + delta
	if pos < 0 {
		pos = 0
	}
	if pos > len(tv.history) {
		pos = len(tv.history)
	}
	tv.histPos = pos

	if pos == len(tv.history) {
		tv.input.SetValue(tv.draft)
	} else {
		tv.input.SetValue(tv.history[pos])
	}
	tv.input.CursorEnd()
	tv.engine.SetInput(tv.input.Value())
}

// refresh re-renders the scrollback and pins the viewport to the bottom.
func (tv *TerminalView) refresh() {
	width := tv.viewport.Width
	rows := make([]string, 0, tv.engine.Len())
	for _, line := range tv.engine.Lines() {
		style := tv.lineStyle(line.Kind)
		if width > 0 {
			style = style.Width(width)
		}
		rows = append(rows, style.Render(line.Text))
	}
	tv.viewport.SetContent(strings.Join(rows, "\n"))
	tv.viewport.GotoBottom()
}

func (tv *TerminalView) lineStyle(kind terminal.LineKind) lipgloss.Style {
	switch kind {
	case terminal.KindEcho:
		return tv.theme.TerminalEcho
	case terminal.KindError:
		return tv.theme.TerminalError
	default:
		return tv.theme.TerminalOutput
	}
}

// AtBottom reports whether the newest line is visible.
func (tv *TerminalView) AtBottom() bool {
	return tv.viewport.AtBottom()
}

// View renders the terminal box.
func (tv *TerminalView) View() string {
	inner := max(tv.width-4, 1)
	title := tv.theme.TerminalTitle.Render(util.TruncateWidth("● ● ●  "+tv.title, inner))

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		tv.viewport.View(),
		tv.input.View(),
	)

	box := tv.theme.TerminalBox
	if tv.focused {
		box = tv.theme.TerminalBoxFocused
	}
	if tv.width > 0 {
		box = box.Width(tv.width - 2)
	}
	return box.Render(body)
}
