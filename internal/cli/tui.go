// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jeranaias/folio-tui/internal/logging"
	"github.com/jeranaias/folio-tui/internal/repl"
	"github.com/jeranaias/folio-tui/internal/terminal"
	"github.com/jeranaias/folio-tui/internal/ui/app"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// termIsTerminal is replaced in tests.
var termIsTerminal = term.IsTerminal

// isInteractive reports whether the command reads from and writes to a
// terminal.
func isInteractive(cmd *cobra.Command) bool {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	out, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return termIsTerminal(int(in.Fd())) && termIsTerminal(int(out.Fd()))
}

func runTUI(cmd *cobra.Command, g *globals) error {
	if !isInteractive(cmd) {
		logging.L().Infow("not a terminal, using line mode")
		return runLineMode(cmd, g)
	}

	opts := app.OptionsFromConfig(g.cfg)
	opts.Theme = styles.NewTheme(styles.Options{NoColor: g.cfg.UI.NoColor})
	opts.Log = logging.L()

	model := app.New(opts)
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func newREPLCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Run the terminal in line mode",
		Long: `Run the simulated terminal as a plain line prompt.

Type commands at the prompt. "exit", "quit", Ctrl+C or Ctrl+D leave.
Input that is not a terminal is read line by line without a prompt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLineMode(cmd, g)
		},
	}
}

func runLineMode(cmd *cobra.Command, g *globals) error {
	cfg := g.cfg
	engine := terminal.NewEngine(cfg.Registry(), terminal.WithGreeting(cfg.Terminal.Greeting...))
	out := cmd.OutOrStdout()

	opts := repl.Options{Log: logging.L()}
	var prompter repl.Prompter
	if isInteractive(cmd) {
		line := repl.NewTerminalPrompter()
		defer line.Close()
		prompter = line
		opts.Prompt = cfg.Terminal.Prompt
		opts.ANSI = true
		if !cfg.UI.NoColor {
			opts.Theme = styles.NewTheme(styles.Options{Renderer: lipgloss.NewRenderer(out)})
		}
	} else {
		prompter = repl.NewLineReader(cmd.InOrStdin(), out)
	}

	return repl.New(engine, prompter, out, opts).Run(cmd.Context())
}
