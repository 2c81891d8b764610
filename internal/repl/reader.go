// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package repl

import (
	"bufio"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// LineReader is a Prompter over plain streams, for input that is not a
// terminal. It has no editing, history or completion.
type LineReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

var _ Prompter = (*LineReader)(nil)

// NewLineReader reads lines from in and writes prompts to out.
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{scanner: bufio.NewScanner(in), out: out}
}

// Prompt writes prompt and returns the next line without its line ending.
func (l *LineReader) Prompt(prompt string) (string, error) {
	if _, err := io.WriteString(l.out, prompt); err != nil {
		return "", err
	}
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(l.scanner.Text(), "\r"), nil
}

// AppendHistory is a no-op.
func (l *LineReader) AppendHistory(string) {}

// SetCompleter is a no-op.
func (l *LineReader) SetCompleter(liner.Completer) {}

// NewTerminalPrompter returns a line editor on the process's terminal with
// history and tab completion. Ctrl+C aborts the prompt. Close it when done.
func NewTerminalPrompter() *liner.State {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return line
}

var _ Prompter = (*liner.State)(nil)
