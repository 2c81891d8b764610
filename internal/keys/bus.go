// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package keys provides the application-wide key event source. Every key
// press is dispatched through a Bus before any focused component sees it, so
// global shortcuts work regardless of focus and can stop a key from being
// typed into an input.
package keys

import (
	"sort"

	"github.com/jeranaias/folio-tui/internal/palette"
)

// Event is one key press travelling through a Bus.
type Event struct {
	key       string
	prevented bool
}

// NewEvent creates an event for key.
func NewEvent(key string) *Event {
	return &Event{key: key}
}

// Key returns the key name as reported by bubbletea (e.g. "ctrl+k").
func (e *Event) Key() string { return e.key }

// PreventDefault marks the key as consumed.
func (e *Event) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a subscriber consumed the key.
func (e *Event) DefaultPrevented() bool { return e.prevented }

// Bus fans key events out to subscribers in subscription order.
// It implements palette.KeySource.
type Bus struct {
	handlers map[int]func(palette.KeyEvent)
	nextID   int
}

var _ palette.KeySource = (*Bus)(nil)

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[int]func(palette.KeyEvent))}
}

// Subscribe registers fn. The returned function removes it and is
// idempotent.
func (b *Bus) Subscribe(fn func(palette.KeyEvent)) (unsubscribe func()) {
	id := b.nextID
	b.nextID++
	b.handlers[id] = fn
	return func() { delete(b.handlers, id) }
}

// Len returns the number of live subscriptions.
func (b *Bus) Len() int {
	return len(b.handlers)
}

// Dispatch delivers key to every subscriber and returns the event so the
// caller can check DefaultPrevented.
func (b *Bus) Dispatch(key string) *Event {
	ev := NewEvent(key)
	ids := make([]int, 0, len(b.handlers))
	for id := range b.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := b.handlers[id]; ok {
			fn(ev)
		}
	}
	return ev
}
