// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/site"
	"github.com/jeranaias/folio-tui/internal/terminal"
	"github.com/jeranaias/folio-tui/internal/ui/components"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

type fakeLauncher struct {
	launched []string
	outcome  site.Outcome
	err      error
}

func (f *fakeLauncher) Launch(url string) (site.Outcome, error) {
	f.launched = append(f.launched, url)
	return f.outcome, f.err
}

func newModel(t *testing.T, launcher site.Launcher) *Model {
	t.Helper()
	opts := OptionsFromConfig(config.Default())
	opts.Launcher = launcher
	opts.Theme = styles.NewTheme(styles.Options{Renderer: lipgloss.NewRenderer(io.Discard), NoColor: true})
	opts.Log = zap.NewNop().Sugar()

	m := New(opts)
	t.Cleanup(m.Close)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func press(m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	ctrlK = tea.KeyMsg{Type: tea.KeyCtrlK}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestModel_StartsOnInitialSection(t *testing.T) {
	m := newModel(t, &fakeLauncher{})
	require.Equal(t, site.SectionHero, m.CurrentSection().ID)
	require.False(t, m.TerminalFocused())
	require.Equal(t, len(terminal.DefaultGreeting), m.Engine().Len())
}

func TestModel_StartOnWorkFocusesTerminal(t *testing.T) {
	opts := OptionsFromConfig(config.Default())
	opts.InitialSection = site.SectionWork
	opts.Launcher = &fakeLauncher{}
	opts.Theme = styles.NewTheme(styles.Options{Renderer: lipgloss.NewRenderer(io.Discard), NoColor: true})
	m := New(opts)
	t.Cleanup(m.Close)
	require.True(t, m.TerminalFocused())
}

func TestModel_ShortcutTogglesPalette(t *testing.T) {
	m := newModel(t, &fakeLauncher{})

	press(m, ctrlK)
	require.True(t, m.Palette().IsOpen())
	require.Contains(t, m.View(), "The Stack (Tools)")

	press(m, ctrlK)
	require.False(t, m.Palette().IsOpen())
}

func TestModel_ShortcutNeverReachesTerminal(t *testing.T) {
	m := newModel(t, &fakeLauncher{})
	press(m, tab)
	require.True(t, m.TerminalFocused())

	press(m, typed("ab"), ctrlK)
	require.True(t, m.Palette().IsOpen())
	require.Equal(t, "ab", m.Engine().Input())
}

func TestModel_PaletteNavigates(t *testing.T) {
	m := newModel(t, &fakeLauncher{})

	press(m, ctrlK, typed("about"), enter)
	require.False(t, m.Palette().IsOpen())
	require.Equal(t, site.SectionAbout, m.CurrentSection().ID)
	require.False(t, m.TerminalFocused())
}

func TestModel_WorkFocusesTerminal(t *testing.T) {
	m := newModel(t, &fakeLauncher{})

	press(m, ctrlK, typed("interactive"), enter)
	require.Equal(t, site.SectionWork, m.CurrentSection().ID)
	require.True(t, m.TerminalFocused())

	press(m, typed("projects"), enter)
	lines := m.Engine().Lines()
	require.Equal(t, "> projects", lines[len(terminal.DefaultGreeting)].Text)
}

func TestModel_ReopenedPaletteHasEmptyQuery(t *testing.T) {
	m := newModel(t, &fakeLauncher{})
	press(m, ctrlK, typed("about"), enter)
	press(m, ctrlK)
	require.True(t, m.Palette().IsOpen())
	require.Equal(t, "", m.Palette().Query())
}

func TestModel_OpenURLOutcome(t *testing.T) {
	tests := []struct {
		outcome site.Outcome
		kind    components.StatusKind
	}{
		{site.OutcomeOpened, components.StatusSuccess},
		{site.OutcomeCopied, components.StatusSuccess},
		{site.OutcomeShown, components.StatusInfo},
	}
	for _, tt := range tests {
		launcher := &fakeLauncher{outcome: tt.outcome}
		m := newModel(t, launcher)
		press(m, ctrlK, typed("linkedin"), enter)

		require.Equal(t, []string{site.DefaultLinks().LinkedIn}, launcher.launched)
		text, kind := m.Status()
		require.Contains(t, text, site.DefaultLinks().LinkedIn)
		require.Equal(t, tt.kind, kind, "outcome %v", tt.outcome)
	}
}

func TestModel_FailedActionShowsError(t *testing.T) {
	boom := errors.New("no opener")
	launcher := &fakeLauncher{err: boom}
	m := newModel(t, launcher)

	press(m, ctrlK, typed("github"), enter)
	require.False(t, m.Palette().IsOpen())
	require.Len(t, launcher.launched, 1)

	// The palette reports the effect error through ActionResultMsg.
	action := m.Palette().Actions()[6]
	require.Equal(t, "connect-github", action.ID)
	m.Update(components.ActionResultMsg{Action: action, Err: boom})

	text, kind := m.Status()
	require.Equal(t, components.StatusError, kind)
	require.Contains(t, text, "no opener")
	require.False(t, m.Palette().IsOpen())
}

func TestModel_TabCyclesFocus(t *testing.T) {
	m := newModel(t, &fakeLauncher{})
	press(m, tab)
	require.True(t, m.TerminalFocused())
	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.False(t, m.TerminalFocused())
}

func TestModel_DigitsJumpToSection(t *testing.T) {
	m := newModel(t, &fakeLauncher{})
	press(m, typed("7"))
	require.Equal(t, site.SectionContact, m.CurrentSection().ID)

	// In the terminal digits are just input.
	press(m, tab, typed("2"))
	require.Equal(t, site.SectionContact, m.CurrentSection().ID)
	require.Equal(t, "2", m.Engine().Input())
}

func TestModel_NavigateUnknown(t *testing.T) {
	m := newModel(t, &fakeLauncher{})
	err := m.Navigate("pricing")
	require.ErrorIs(t, err, ErrUnknownSection)
	require.Equal(t, site.SectionHero, m.CurrentSection().ID)
}

func TestModel_QuitUnmounts(t *testing.T) {
	m := newModel(t, &fakeLauncher{})
	require.Equal(t, 1, m.Bus().Len())

	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
	require.Equal(t, 0, m.Bus().Len())

	// A second close is harmless.
	m.Close()
}

func TestModel_StatusMsg(t *testing.T) {
	m := newModel(t, &fakeLauncher{})
	m.Update(components.StatusMsg{Text: "hello", Kind: components.StatusInfo})
	text, _ := m.Status()
	require.Equal(t, "hello", text)
}

func TestModel_Layouts(t *testing.T) {
	m := newModel(t, &fakeLauncher{})

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	wide := m.View()
	require.Contains(t, wide, Brand)
	require.LessOrEqual(t, lipgloss.Width(wide), 120)

	m.Update(tea.WindowSizeMsg{Width: 70, Height: 40})
	stacked := m.View()
	require.LessOrEqual(t, lipgloss.Width(stacked), 70)
	require.NotEqual(t, wide, stacked)
}
