// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terminal implements the simulated command line.
package terminal

import (
	"sort"
	"strings"
)

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry maps command names to their canned output.
// It is populated once at startup and only read afterwards.
type Registry struct {
	commands map[string]Output
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Output)}
}

// Register adds or replaces a command. Names are trimmed and lowercased, so
// lookups from Engine.Submit always hit regardless of how the name was typed
// here. Registering an existing name overwrites it (last write wins).
func (r *Registry) Register(name string, out Output) {
	name = NormalizeName(name)
	if name == "" {
		return
	}
	r.commands[name] = out
}

// Lookup returns the output registered for name. The boolean is false when no
// such command exists. name must already be normalized.
func (r *Registry) Lookup(name string) (Output, bool) {
	out, ok := r.commands[name]
	return out, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.commands[NormalizeName(name)]
	return ok
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}

// Complete returns the registered names starting with prefix, plus "clear"
// when it matches, sorted.
func (r *Registry) Complete(prefix string) []string {
	prefix = strings.ToLower(strings.TrimLeft(prefix, " \t"))
	var out []string
	seenClear := false
	for _, name := range r.Names() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
			if name == ClearCommand {
				seenClear = true
			}
		}
	}
	if !seenClear && strings.HasPrefix(ClearCommand, prefix) {
		out = append(out, ClearCommand)
		sort.Strings(out)
	}
	return out
}

// NormalizeName trims surrounding whitespace and lowercases s.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
