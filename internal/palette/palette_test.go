// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package palette implements the command palette.
package palette

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func testActions(log *[]string) []Action {
	mk := func(id, label string, g Group) Action {
		return Action{ID: id, Label: label, Group: g, Effect: func() error {
			*log = append(*log, id)
			return nil
		}}
	}
	return []Action{
		mk("about", "About ArpitStack", GroupNavigation),
		mk("experience", "Professional Impact", GroupNavigation),
		mk("work", "Core Innovations", GroupNavigation),
		mk("secretstack", "SecretStack Scanner", GroupTools),
		mk("cloudstack", "CloudStack CLI", GroupTools),
		mk("github", "GitHub Profile", GroupConnect),
		mk("linkedin", "LinkedIn", GroupConnect),
	}
}

// =============================================================================
// STATE TESTS
// =============================================================================

func TestToggle_TwiceRestores(t *testing.T) {
	for _, start := range []bool{false, true} {
		p := New()
		if start {
			p.Open()
		}

		p.Toggle()
		p.Toggle()

		if p.IsOpen() != start {
			t.Errorf("Toggle twice from %v = %v", start, p.IsOpen())
		}
	}
}

func TestOpen_ResetsQuery(t *testing.T) {
	p := New()
	p.Open()
	p.SetQuery("x")

	p.Close()
	p.Open()

	require.Empty(t, p.Query())
}

func TestOpen_WhenAlreadyOpenKeepsQuery(t *testing.T) {
	p := New()
	p.Open()
	p.SetQuery("git")

	p.Open()

	require.Equal(t, "git", p.Query())
}

func TestSelect_ClosesBeforeEffect(t *testing.T) {
	p := New()
	var openDuringEffect []bool
	a := Action{Label: "x", Effect: func() error {
		openDuringEffect = append(openDuringEffect, p.IsOpen())
		return nil
	}}
	p.Open()

	require.NoError(t, p.Select(a))

	require.Equal(t, []bool{false}, openDuringEffect, "effect must run exactly once, after close")
	require.False(t, p.IsOpen())
}

func TestSelect_QueryResetOnReopen(t *testing.T) {
	var log []string
	p := New(testActions(&log)...)
	p.Open()
	p.SetQuery("x")

	require.NoError(t, p.Select(p.Actions()[0]))
	p.Toggle()

	require.True(t, p.IsOpen())
	require.Empty(t, p.Query())
	require.Equal(t, []string{"about"}, log)
}

func TestSelect_PropagatesEffectError(t *testing.T) {
	boom := errors.New("boom")
	p := New()
	p.Open()

	err := p.Select(Action{Label: "x", Effect: func() error { return boom }})

	require.ErrorIs(t, err, boom)
	require.False(t, p.IsOpen(), "palette must stay closed after a failed effect")
}

func TestSelect_NilEffect(t *testing.T) {
	p := New()
	p.Open()

	require.NoError(t, p.Select(Action{Label: "x"}))
	require.False(t, p.IsOpen())
}

// =============================================================================
// FILTER TESTS
// =============================================================================

func TestVisible_EmptyQueryKeepsOrder(t *testing.T) {
	var log []string
	actions := testActions(&log)
	p := New(actions...)

	got := p.Visible()

	require.Len(t, got, len(actions))
	for i := range actions {
		require.Equal(t, actions[i].ID, got[i].ID)
	}
}

func TestVisible_SubstringAlwaysMatches(t *testing.T) {
	var log []string
	actions := testActions(&log)
	p := New(actions...)

	for _, a := range actions {
		runes := []rune(a.Label)
		for start := 0; start < len(runes); start++ {
			for end := start + 1; end <= len(runes); end++ {
				p.SetQuery(string(runes[start:end]))
				if !containsID(p.Visible(), a.ID) {
					t.Fatalf("query %q should match %q", p.Query(), a.Label)
				}
			}
		}
	}
}

func TestVisible_CaseInsensitive(t *testing.T) {
	var log []string
	p := New(testActions(&log)...)

	p.SetQuery("LINKEDIN")

	require.True(t, containsID(p.Visible(), "linkedin"))
}

func TestVisible_NoMatch(t *testing.T) {
	var log []string
	p := New(testActions(&log)...)

	p.SetQuery("zzzz")

	require.Empty(t, p.Visible())
	require.Empty(t, p.Sections())
}

func TestVisible_DoesNotMutateActions(t *testing.T) {
	var log []string
	p := New(testActions(&log)...)

	p.SetQuery("stack")
	_ = p.Visible()

	require.Len(t, p.Actions(), 7)
}

func TestVisible_BestMatchFirst(t *testing.T) {
	var log []string
	p := New(testActions(&log)...)

	p.SetQuery("cloud")

	got := p.Visible()
	require.NotEmpty(t, got)
	require.Equal(t, "cloudstack", got[0].ID)
}

func TestSections_GroupOrder(t *testing.T) {
	var log []string
	p := New(testActions(&log)...)

	sections := p.Sections()

	require.Len(t, sections, 3)
	require.Equal(t, GroupNavigation, sections[0].Group)
	require.Equal(t, GroupTools, sections[1].Group)
	require.Equal(t, GroupConnect, sections[2].Group)
	require.Len(t, sections[0].Actions, 3)
}

func TestSections_OmitsEmptyGroups(t *testing.T) {
	var log []string
	p := New(testActions(&log)...)

	p.SetQuery("Scanner")

	sections := p.Sections()
	require.Len(t, sections, 1)
	require.Equal(t, GroupTools, sections[0].Group)
}

func TestGroup_Heading(t *testing.T) {
	tests := []struct {
		group Group
		want  string
	}{
		{GroupNavigation, "Navigation"},
		{GroupTools, "The Stack (Tools)"},
		{GroupConnect, "Connect"},
		{Group(9), "Other"},
	}

	for _, tc := range tests {
		if got := tc.group.Heading(); got != tc.want {
			t.Errorf("Group(%d).Heading() = %q, want %q", tc.group, got, tc.want)
		}
	}
}

// =============================================================================
// SHORTCUT TESTS
// =============================================================================

type fakeEvent struct {
	key       string
	prevented bool
}

func (e *fakeEvent) Key() string     { return e.key }
func (e *fakeEvent) PreventDefault() { e.prevented = true }

type fakeSource struct {
	handlers map[int]func(KeyEvent)
	next     int
}

func newFakeSource() *fakeSource {
	return &fakeSource{handlers: map[int]func(KeyEvent){}}
}

func (s *fakeSource) Subscribe(fn func(KeyEvent)) func() {
	id := s.next
	s.next++
	s.handlers[id] = fn
	return func() { delete(s.handlers, id) }
}

func (s *fakeSource) press(key string) *fakeEvent {
	ev := &fakeEvent{key: key}
	for _, fn := range s.handlers {
		fn(ev)
	}
	return ev
}

func TestMount_ShortcutToggles(t *testing.T) {
	src := newFakeSource()
	p := New()
	unmount := p.Mount(src)
	defer unmount()

	ev := src.press("ctrl+k")
	require.True(t, ev.prevented)
	require.True(t, p.IsOpen())

	src.press("ctrl+k")
	require.False(t, p.IsOpen())
}

func TestMount_OtherKeysUntouched(t *testing.T) {
	src := newFakeSource()
	p := New()
	defer p.Mount(src)()

	ev := src.press("k")

	require.False(t, ev.prevented)
	require.False(t, p.IsOpen())
}

func TestMount_CustomShortcuts(t *testing.T) {
	src := newFakeSource()
	p := New()
	defer p.Mount(src, "ctrl+p", " CTRL+SPACE ")()

	src.press("ctrl+k")
	require.False(t, p.IsOpen())

	src.press("ctrl+p")
	require.True(t, p.IsOpen())

	src.press("ctrl+space")
	require.False(t, p.IsOpen())
}

func TestMount_UnmountReleases(t *testing.T) {
	src := newFakeSource()
	p := New()

	unmount := p.Mount(src)
	unmount()
	unmount()

	require.Empty(t, src.handlers)
	src.press("ctrl+k")
	require.False(t, p.IsOpen())
}

func containsID(actions []Action, id string) bool {
	for _, a := range actions {
		if a.ID == id {
			return true
		}
	}
	return false
}
