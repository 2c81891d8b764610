// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terminal implements the simulated command line shown in the work
// section: a static command registry, an append-only scrollback and the
// read-eval-print step that turns one submitted line into rendered rows.
//
// # Key Types
//
//   - Output: canned response, either SingleLine or MultiLine
//   - Registry: name -> Output table consulted on every submission
//   - Line: one scrollback row tagged Echo, Output or Error
//   - Engine: owns the scrollback and the input buffer
//
// # Usage
//
//	eng := terminal.NewEngine(terminal.DefaultRegistry(),
//	    terminal.WithGreeting(terminal.DefaultGreeting...))
//	unsubscribe := eng.Subscribe(func(c terminal.Change) { scrollToBottom() })
//	defer unsubscribe()
//	eng.Submit("help")
//
// Nothing in this package performs I/O. Unknown commands are not errors; they
// produce a single Error row.
package terminal
