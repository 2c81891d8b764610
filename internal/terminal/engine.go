// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terminal implements the simulated command line.
package terminal

import (
	"fmt"
	"sort"
)

// ClearCommand is handled by the engine itself and never looked up.
const ClearCommand = "clear"

// EchoPrefix is prepended to the user's input on echo rows.
const EchoPrefix = "> "

// =============================================================================
// SCROLLBACK
// =============================================================================

// LineKind tags a scrollback row.
type LineKind int

const (
	// KindEcho is the user's own input, rendered with the prompt.
	KindEcho LineKind = iota
	// KindOutput is a line of a registered command's output.
	KindOutput
	// KindError is the "command not found" message.
	KindError
)

// String returns the display name of the kind.
func (k LineKind) String() string {
	switch k {
	case KindEcho:
		return "ECHO"
	case KindOutput:
		return "OUTPUT"
	case KindError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Line is one rendered scrollback row.
type Line struct {
	Text string
	Kind LineKind
}

// Change describes a scrollback mutation.
type Change struct {
	// Len is the scrollback length after the mutation.
	Len int
	// Cleared is true when the mutation was a clear.
	Cleared bool
}

// NotFoundMessage returns the error row text for an unknown command.
func NotFoundMessage(cmd string) string {
	return fmt.Sprintf("Command not found: %s. Type \"help\" for options.", cmd)
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine is the read-eval-print state machine behind the terminal widget.
// It is not safe for concurrent use; every operation is expected to run on
// the UI goroutine.
type Engine struct {
	registry   *Registry
	scrollback []Line
	input      string
	greeting   []string

	subscribers map[int]func(Change)
	nextSubID   int
}

// Option configures an Engine.
type Option func(*Engine)

// WithGreeting seeds the scrollback with the given lines (kind Output).
// Reset restores them.
func WithGreeting(lines ...string) Option {
	return func(e *Engine) {
		e.greeting = append([]string(nil), lines...)
	}
}

// NewEngine creates an engine bound to registry. A nil registry behaves as
// an empty one.
func NewEngine(registry *Registry, opts ...Option) *Engine {
	if registry == nil {
		registry = NewRegistry()
	}
	e := &Engine{
		registry:    registry,
		subscribers: make(map[int]func(Change)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.seed()
	return e
}

func (e *Engine) seed() {
	e.scrollback = make([]Line, 0, len(e.greeting)+16)
	for _, text := range e.greeting {
		e.scrollback = append(e.scrollback, Line{Text: text, Kind: KindOutput})
	}
}

// Registry returns the registry the engine dispatches to.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Submit evaluates one line of input.
//
// Blank input is a no-op apart from clearing the input buffer. Otherwise an
// echo row with the untrimmed input is appended first, followed by the
// command's output rows or a single error row. "clear" empties the
// scrollback, including the echo it just produced.
func (e *Engine) Submit(raw string) {
	e.input = ""

	cmd := NormalizeName(raw)
	if cmd == "" {
		return
	}

	e.scrollback = append(e.scrollback, Line{Text: EchoPrefix + raw, Kind: KindEcho})

	if cmd == ClearCommand {
		e.scrollback = e.scrollback[:0]
		e.notify(Change{Len: 0, Cleared: true})
		return
	}

	if out, ok := e.registry.Lookup(cmd); ok {
		for _, text := range out.lines {
			e.scrollback = append(e.scrollback, Line{Text: text, Kind: KindOutput})
		}
	} else {
		e.scrollback = append(e.scrollback, Line{Text: NotFoundMessage(cmd), Kind: KindError})
	}
	e.notify(Change{Len: len(e.scrollback)})
}

// SubmitInput submits the current input buffer.
func (e *Engine) SubmitInput() {
	e.Submit(e.input)
}

// SetInput replaces the not-yet-submitted command line.
func (e *Engine) SetInput(s string) {
	e.input = s
}

// Input returns the not-yet-submitted command line.
func (e *Engine) Input() string {
	return e.input
}

// Lines returns a copy of the scrollback, oldest first.
func (e *Engine) Lines() []Line {
	cp := make([]Line, len(e.scrollback))
	copy(cp, e.scrollback)
	return cp
}

// Len returns the number of scrollback rows.
func (e *Engine) Len() int {
	return len(e.scrollback)
}

// Reset restores the greeting and clears the input buffer.
func (e *Engine) Reset() {
	e.seed()
	e.input = ""
	e.notify(Change{Len: len(e.scrollback), Cleared: true})
}

// Subscribe registers fn to be called after every scrollback mutation.
// Subscribers run in subscription order. The
// returned function removes the subscription and may be called more than once.
func (e *Engine) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := e.nextSubID
	e.nextSubID++
	e.subscribers[id] = fn
	return func() { delete(e.subscribers, id) }
}

func (e *Engine) notify(c Change) {
	ids := make([]int, 0, len(e.subscribers))
	for id := range e.subscribers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := e.subscribers[id]; ok {
			fn(c)
		}
	}
}
