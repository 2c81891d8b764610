// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terminal implements the simulated command line.
package terminal

// Output is the canned response of a registered command.
// The zero value is a multi-line output with no lines.
type Output struct {
	lines []string
	multi bool
}

// SingleLine returns an output rendered as exactly one row.
func SingleLine(text string) Output {
	return Output{lines: []string{text}}
}

// MultiLine returns an output rendered as one row per element, in order.
func MultiLine(lines ...string) Output {
	cp := make([]string, len(lines))
	copy(cp, lines)
	return Output{lines: cp, multi: true}
}

// IsMultiLine reports whether the output was built with MultiLine.
func (o Output) IsMultiLine() bool {
	return o.multi
}

// Lines returns a copy of the rows this output renders to.
func (o Output) Lines() []string {
	cp := make([]string, len(o.lines))
	copy(cp, o.lines)
	return cp
}

// Len returns the number of rows this output renders to.
func (o Output) Len() int {
	return len(o.lines)
}
