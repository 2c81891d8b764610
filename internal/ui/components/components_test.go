// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/folio-tui/internal/palette"
	"github.com/jeranaias/folio-tui/internal/site"
	"github.com/jeranaias/folio-tui/internal/terminal"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(styles.Options{Renderer: lipgloss.NewRenderer(io.Discard), NoColor: true})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// =============================================================================
// TERMINAL VIEW
// =============================================================================

func newTerminalView(t *testing.T) *TerminalView {
	t.Helper()
	engine := terminal.NewEngine(terminal.DefaultRegistry(), terminal.WithGreeting(terminal.DefaultGreeting...))
	tv := NewTerminalView(engine, testTheme(), "console", "➜ ~ ")
	t.Cleanup(tv.Close)
	tv.SetSize(80, 12)
	tv.Focus()
	return tv
}

func TestTerminalView_SubmitRunsCommand(t *testing.T) {
	tv := newTerminalView(t)
	before := tv.Engine().Len()

	tv, _ = tv.Update(runes("about"))
	require.Equal(t, "about", tv.Engine().Input())

	tv, _ = tv.Update(key(tea.KeyEnter))
	lines := tv.Engine().Lines()
	require.Len(t, lines, before+2)
	require.Equal(t, terminal.Line{Text: "> about", Kind: terminal.KindEcho}, lines[before])
	require.Equal(t, terminal.KindOutput, lines[before+1].Kind)
	require.Equal(t, "", tv.Engine().Input())
	require.True(t, tv.AtBottom())
}

func TestTerminalView_ScrollsToBottomOnChange(t *testing.T) {
	tv := newTerminalView(t)
	for i := 0; i < 5; i++ {
		tv, _ = tv.Update(runes("help"))
		tv, _ = tv.Update(key(tea.KeyEnter))
	}
	require.True(t, tv.AtBottom())

	// Changes made straight on the engine also pin the view.
	// neofetch is taller than the viewport, so only its tail stays visible.
	tv.Engine().Submit("neofetch")
	require.True(t, tv.AtBottom())
	lines := tv.Engine().Lines()
	require.Contains(t, tv.View(), lines[len(lines)-1].Text)
	require.NotContains(t, tv.View(), "> neofetch")
}

func TestTerminalView_UnknownCommand(t *testing.T) {
	tv := newTerminalView(t)
	tv, _ = tv.Update(runes("Foo"))
	tv, _ = tv.Update(key(tea.KeyEnter))

	lines := tv.Engine().Lines()
	last := lines[len(lines)-1]
	require.Equal(t, terminal.KindError, last.Kind)
	require.Equal(t, terminal.NotFoundMessage("foo"), last.Text)
}

func TestTerminalView_Clear(t *testing.T) {
	tv := newTerminalView(t)
	tv, _ = tv.Update(runes("CLEAR"))
	tv, _ = tv.Update(key(tea.KeyEnter))
	require.Equal(t, 0, tv.Engine().Len())
}

func TestTerminalView_BlankSubmitIsIgnored(t *testing.T) {
	tv := newTerminalView(t)
	before := tv.Engine().Len()
	tv, _ = tv.Update(runes("   "))
	tv, _ = tv.Update(key(tea.KeyEnter))
	require.Equal(t, before, tv.Engine().Len())
	require.Empty(t, tv.History())
	require.Equal(t, "", tv.Engine().Input())
}

func TestTerminalView_HistoryRecall(t *testing.T) {
	tv := newTerminalView(t)
	for _, cmd := range []string{"about", "contact"} {
		tv, _ = tv.Update(runes(cmd))
		tv, _ = tv.Update(key(tea.KeyEnter))
	}
	require.Equal(t, []string{"about", "contact"}, tv.History())

	tv, _ = tv.Update(runes("pro"))
	tv, _ = tv.Update(key(tea.KeyUp))
	require.Equal(t, "contact", tv.Engine().Input())
	tv, _ = tv.Update(key(tea.KeyUp))
	require.Equal(t, "about", tv.Engine().Input())
	tv, _ = tv.Update(key(tea.KeyUp))
	require.Equal(t, "about", tv.Engine().Input())

	tv, _ = tv.Update(key(tea.KeyDown))
	tv, _ = tv.Update(key(tea.KeyDown))
	require.Equal(t, "pro", tv.Engine().Input(), "draft restored after history")
}

func TestTerminalView_IgnoresKeysWhenBlurred(t *testing.T) {
	tv := newTerminalView(t)
	tv.Blur()
	before := tv.Engine().Len()
	tv, _ = tv.Update(runes("help"))
	tv, _ = tv.Update(key(tea.KeyEnter))
	require.Equal(t, before, tv.Engine().Len())
	require.False(t, tv.Focused())
}

func TestTerminalView_CloseIsIdempotent(t *testing.T) {
	tv := newTerminalView(t)
	tv.Close()
	tv.Close()
	tv.Engine().Submit("help")
}

// =============================================================================
// PALETTE VIEW
// =============================================================================

type recordingNav struct {
	navigated []string
	opened    []string
	err       error
}

func (n *recordingNav) Navigate(anchor string) error {
	n.navigated = append(n.navigated, anchor)
	return n.err
}

func (n *recordingNav) OpenURL(url string) error {
	n.opened = append(n.opened, url)
	return n.err
}

func newPaletteView(nav site.Navigator) *PaletteView {
	p := palette.New(site.DefaultActions(nav, site.DefaultLinks())...)
	pv := NewPaletteView(p, testTheme())
	pv.SetSize(100, 40)
	return pv
}

func TestPaletteView_ClosedIgnoresInput(t *testing.T) {
	pv := newPaletteView(&recordingNav{})
	pv, cmd := pv.Update(runes("x"))
	require.Nil(t, cmd)
	require.Equal(t, "", pv.Palette().Query())
	require.Equal(t, "", pv.View())
}

func TestPaletteView_TypingFilters(t *testing.T) {
	pv := newPaletteView(&recordingNav{})
	pv.Palette().Open()
	pv.Sync()

	pv, _ = pv.Update(runes("coffee"))
	require.Equal(t, "coffee", pv.Palette().Query())

	items := pv.Items()
	require.NotEmpty(t, items)
	require.Equal(t, "Buy Me A Coffee", items[0].Label)
	require.Contains(t, pv.View(), "Connect")
}

func TestPaletteView_EnterSelects(t *testing.T) {
	nav := &recordingNav{}
	pv := newPaletteView(nav)
	pv.Palette().Open()
	pv.Sync()

	pv, _ = pv.Update(runes("professional"))
	pv, cmd := pv.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)

	require.False(t, pv.Palette().IsOpen())
	require.Equal(t, []string{site.SectionExperience}, nav.navigated)

	msg, ok := cmd().(ActionResultMsg)
	require.True(t, ok)
	require.Equal(t, "nav-experience", msg.Action.ID)
	require.NoError(t, msg.Err)
}

func TestPaletteView_EffectErrorIsReported(t *testing.T) {
	boom := errors.New("no browser")
	nav := &recordingNav{err: boom}
	pv := newPaletteView(nav)
	pv.Palette().Open()
	pv.Sync()

	pv, _ = pv.Update(runes("github"))
	pv, cmd := pv.Update(key(tea.KeyEnter))

	msg := cmd().(ActionResultMsg)
	require.ErrorIs(t, msg.Err, boom)
	require.False(t, pv.Palette().IsOpen())
	require.Equal(t, []string{site.DefaultLinks().GitHub}, nav.opened)
}

func TestPaletteView_EscCloses(t *testing.T) {
	pv := newPaletteView(&recordingNav{})
	pv.Palette().Open()
	pv.Sync()
	pv, _ = pv.Update(key(tea.KeyEsc))
	require.False(t, pv.IsVisible())
}

func TestPaletteView_NavigationWraps(t *testing.T) {
	pv := newPaletteView(&recordingNav{})
	pv.Palette().Open()
	pv.Sync()
	items := pv.Items()

	pv, _ = pv.Update(key(tea.KeyUp))
	sel, ok := pv.Selected()
	require.True(t, ok)
	require.Equal(t, items[len(items)-1].ID, sel.ID)

	pv, _ = pv.Update(key(tea.KeyDown))
	pv, _ = pv.Update(key(tea.KeyTab))
	sel, _ = pv.Selected()
	require.Equal(t, items[1].ID, sel.ID)
}

func TestPaletteView_GroupedOrder(t *testing.T) {
	pv := newPaletteView(&recordingNav{})
	pv.Palette().Open()
	pv.Sync()

	view := pv.View()
	nav := strings.Index(view, "Navigation")
	tools := strings.Index(view, "The Stack (Tools)")
	connect := strings.Index(view, "Connect")
	require.True(t, nav >= 0 && tools > nav && connect > tools, "headings out of order:\n%s", view)
}

func TestPaletteView_NoResults(t *testing.T) {
	pv := newPaletteView(&recordingNav{})
	pv.Palette().Open()
	pv.Sync()
	pv, _ = pv.Update(runes("zzzzqq"))
	require.Empty(t, pv.Items())
	require.Contains(t, pv.View(), "No results found.")

	_, cmd := pv.Update(key(tea.KeyEnter))
	require.Nil(t, cmd)
	require.True(t, pv.IsVisible())
}

func TestPaletteView_ReopenStartsEmpty(t *testing.T) {
	pv := newPaletteView(&recordingNav{})
	pv.Palette().Open()
	pv.Sync()
	pv, _ = pv.Update(runes("link"))
	pv.Palette().Toggle()
	pv.Sync()
	pv.Palette().Toggle()
	pv.Sync()
	require.Equal(t, "", pv.Palette().Query())
	require.Len(t, pv.Items(), len(pv.Palette().Actions()))
}

// =============================================================================
// SECTION VIEW
// =============================================================================

func TestSectionView_RendersMarkdown(t *testing.T) {
	about, ok := site.SectionByID(site.SectionAbout)
	require.True(t, ok)

	sv := NewSectionView(about, testTheme())
	sv.SetSize(80, 20)
	require.Contains(t, sv.Content(), "About")

	work, _ := site.SectionByID(site.SectionWork)
	sv.SetSection(work)
	require.Equal(t, site.SectionWork, sv.Section().ID)
	require.Contains(t, sv.Content(), "SecretStack")
	require.True(t, sv.AtTop())
	require.NotEmpty(t, sv.View())
}

func TestSectionView_ScrollOnlyWhenFocused(t *testing.T) {
	work, _ := site.SectionByID(site.SectionWork)
	sv := NewSectionView(work, testTheme())
	sv.SetSize(60, 5)

	sv, _ = sv.Update(key(tea.KeyDown))
	require.True(t, sv.AtTop())

	sv.Focus()
	sv, _ = sv.Update(key(tea.KeyDown))
	require.False(t, sv.AtTop())
}

// =============================================================================
// STATUS BAR / HEADER
// =============================================================================

func TestStatusBar(t *testing.T) {
	sb := NewStatusBar(testTheme(), KeyHint{"ctrl+k", "palette"}, KeyHint{"tab", "focus"})
	sb.SetWidth(80)
	sb.SetSection("About")

	view := sb.View()
	require.Contains(t, view, "About")
	require.Contains(t, view, "ctrl+k palette")

	sb.SetMessage("no browser", StatusError)
	view = sb.View()
	require.Contains(t, view, "[X] no browser")
	require.NotContains(t, view, "ctrl+k")

	text, kind := sb.Message()
	require.Equal(t, "no browser", text)
	require.Equal(t, StatusError, kind)

	sb.ClearMessage()
	require.Contains(t, sb.View(), "ctrl+k")
}

func TestStatusBar_NarrowTruncatesMessage(t *testing.T) {
	sb := NewStatusBar(testTheme())
	sb.SetWidth(20)
	sb.SetSection("Work")
	sb.SetMessage(strings.Repeat("long message ", 5), StatusInfo)
	require.LessOrEqual(t, lipgloss.Width(sb.View()), 20)
}

func TestHeader(t *testing.T) {
	h := NewHeader(testTheme(), "ArpitStack", site.Sections())
	h.SetActive(site.SectionWork)
	view := h.View()
	require.Contains(t, view, "ArpitStack")
	require.Contains(t, view, "Work")

	h.SetWidth(30)
	require.LessOrEqual(t, lipgloss.Width(h.View()), 30)
}

func TestSetStatus(t *testing.T) {
	msg := SetStatus("copied", StatusSuccess)()
	require.Equal(t, StatusMsg{Text: "copied", Kind: StatusSuccess}, msg)
}
