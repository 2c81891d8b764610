// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package palette implements the command palette.
package palette

import (
	"sort"
	"strings"
)

// =============================================================================
// PALETTE STATE
// =============================================================================

// Palette holds the open/closed state, the filter query and the action list.
// Like the terminal engine it is driven from a single UI goroutine.
type Palette struct {
	open    bool
	query   string
	actions []Action
}

// Section is one non-empty group of visible actions.
type Section struct {
	Group   Group
	Actions []Action
}

// New creates a closed palette listing actions in the given order.
func New(actions ...Action) *Palette {
	return &Palette{actions: append([]Action(nil), actions...)}
}

// Actions returns every action, regardless of the query.
func (p *Palette) Actions() []Action {
	return append([]Action(nil), p.actions...)
}

// IsOpen reports whether the palette is shown.
func (p *Palette) IsOpen() bool {
	return p.open
}

// Query returns the current filter text.
func (p *Palette) Query() string {
	return p.query
}

// Toggle flips the open state.
func (p *Palette) Toggle() {
	if p.open {
		p.Close()
	} else {
		p.Open()
	}
}

// Open shows the palette. The query is reset on every closed->open
// transition; opening an already open palette keeps it.
func (p *Palette) Open() {
	if p.open {
		return
	}
	p.query = ""
	p.open = true
}

// Close hides the palette.
func (p *Palette) Close() {
	p.open = false
}

// SetQuery replaces the filter text. The action list itself is untouched.
func (p *Palette) SetQuery(text string) {
	p.query = text
}

// Visible returns the actions matching the current query. With an empty
// query every action is returned in registration order; otherwise matches
// are ordered by score, keeping registration order on ties.
func (p *Palette) Visible() []Action {
	matches := p.Matches()
	out := make([]Action, len(matches))
	for i, m := range matches {
		out[i] = m.Action
	}
	return out
}

// Match is a visible action with its fuzzy score.
type Match struct {
	Action Action
	Score  int
}

// Matches is Visible with scores attached.
func (p *Palette) Matches() []Match {
	query := strings.TrimSpace(p.query)
	matches := make([]Match, 0, len(p.actions))
	for _, a := range p.actions {
		score, ok := FuzzyMatch(query, a.Label)
		if !ok {
			continue
		}
		matches = append(matches, Match{Action: a, Score: score})
	}
	if query != "" {
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Score > matches[j].Score
		})
	}
	return matches
}

// Sections returns the visible actions grouped in display order. Groups
// without a visible action are omitted.
func (p *Palette) Sections() []Section {
	byGroup := make(map[Group][]Action)
	for _, a := range p.Visible() {
		byGroup[a.Group] = append(byGroup[a.Group], a)
	}

	var sections []Section
	for _, g := range Groups {
		if acts := byGroup[g]; len(acts) > 0 {
			sections = append(sections, Section{Group: g, Actions: acts})
			delete(byGroup, g)
		}
	}
	// Unknown groups go last, in numeric order
	var rest []Group
	for g := range byGroup {
		rest = append(rest, g)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, g := range rest {
		sections = append(sections, Section{Group: g, Actions: byGroup[g]})
	}
	return sections
}

// Select closes the palette and then runs the action's effect exactly once.
// The effect's error is returned unchanged and the palette stays closed.
func (p *Palette) Select(a Action) error {
	p.Close()
	if a.Effect == nil {
		return nil
	}
	return a.Effect()
}
