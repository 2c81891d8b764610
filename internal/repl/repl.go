// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package repl drives the terminal engine from a plain line prompt, for
// pipes, dumb terminals and SSH sessions without a PTY.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/jeranaias/folio-tui/internal/logging"
	"github.com/jeranaias/folio-tui/internal/terminal"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// ClearScreen is written when the scrollback is cleared.
const ClearScreen = "\x1b[H\x1b[2J"

// exitWords end the session. They are not terminal commands.
var exitWords = map[string]bool{"exit": true, "quit": true}

// Prompter reads one line at a time. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	SetCompleter(f liner.Completer)
}

// Options configures a REPL.
type Options struct {
	Prompt string
	// Theme styles error lines. Nil prints plain text.
	Theme *styles.Theme
	// ANSI enables the clear-screen sequence. Without it a clear prints a
	// separator line.
	ANSI bool
	Log  *zap.SugaredLogger
}

// REPL prints the lines each submission adds to the scrollback.
type REPL struct {
	engine   *terminal.Engine
	prompter Prompter
	out      io.Writer
	opts     Options
	log      *zap.SugaredLogger

	// printed is how many scrollback lines are already on screen.
	printed int
}

// New creates a REPL over engine.
func New(engine *terminal.Engine, prompter Prompter, out io.Writer, opts Options) *REPL {
	log := opts.Log
	if log == nil {
		log = logging.L()
	}
	return &REPL{engine: engine, prompter: prompter, out: out, opts: opts, log: log}
}

// Run prints the greeting and reads lines until EOF, Ctrl+C, an exit word
// or ctx is cancelled. Ending the session that way is not an error.
func (r *REPL) Run(ctx context.Context) error {
	r.prompter.SetCompleter(r.complete)
	unsubscribe := r.engine.Subscribe(r.onChange)
	defer unsubscribe()

	r.printed = 0
	if err := r.flush(); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line, err := r.prompter.Prompt(r.opts.Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		if exitWords[terminal.NormalizeName(line)] {
			return nil
		}
		if strings.TrimSpace(line) != "" {
			r.prompter.AppendHistory(line)
		}
		r.log.Debugw("repl submit", "input", line)
		r.engine.Submit(line)
	}
}

func (r *REPL) onChange(c terminal.Change) {
	if c.Cleared {
		if err := r.clear(); err != nil {
			r.log.Warnw("repl clear failed", "error", err)
		}
	}
	if err := r.flush(); err != nil {
		r.log.Warnw("repl write failed", "error", err)
	}
}

func (r *REPL) clear() error {
	r.printed = 0
	marker := "----\n"
	if r.opts.ANSI {
		marker = ClearScreen
	}
	_, err := io.WriteString(r.out, marker)
	return err
}

// flush writes scrollback lines not yet printed. Echo lines are skipped:
// the prompt line already shows what was typed.
func (r *REPL) flush() error {
	lines := r.engine.Lines()
	if r.printed > len(lines) {
		r.printed = 0
	}
	for _, l := range lines[r.printed:] {
		if l.Kind == terminal.KindEcho {
			continue
		}
		if _, err := fmt.Fprintln(r.out, r.render(l)); err != nil {
			return err
		}
	}
	r.printed = len(lines)
	return nil
}

func (r *REPL) render(l terminal.Line) string {
	if r.opts.Theme == nil {
		return l.Text
	}
	if l.Kind == terminal.KindError {
		return r.opts.Theme.TerminalError.Render(l.Text)
	}
	return r.opts.Theme.TerminalOutput.Render(l.Text)
}

// complete offers registry names for the typed prefix.
func (r *REPL) complete(line string) []string {
	return r.engine.Registry().Complete(line)
}
