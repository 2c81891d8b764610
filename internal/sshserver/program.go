// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sshserver

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	gliderssh "github.com/gliderlabs/ssh"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/jeranaias/folio-tui/internal/site"
	"github.com/jeranaias/folio-tui/internal/ui/app"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// runProgram runs a TUI bound to the session until the visitor quits or
// disconnects.
func (s *Server) runProgram(sess gliderssh.Session, pty gliderssh.Pty, winCh <-chan gliderssh.Window, log *zap.SugaredLogger) error {
	renderer := lipgloss.NewRenderer(sess)
	renderer.SetColorProfile(colorProfile(pty.Term, sess.Environ()))
	// Querying the remote background would block on clients that never answer.
	renderer.SetHasDarkBackground(true)

	opts := app.OptionsFromConfig(s.Config)
	opts.Theme = styles.NewTheme(styles.Options{Renderer: renderer, NoColor: s.Config.UI.NoColor})
	opts.Launcher = &site.DisplayLauncher{}
	opts.Log = log

	model := app.New(opts)
	defer model.Close()

	ctx := sess.Context()
	p := tea.NewProgram(model,
		tea.WithInput(sess),
		tea.WithOutput(sess),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
	)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case w, ok := <-winCh:
				if !ok {
					return
				}
				p.Send(tea.WindowSizeMsg{Width: w.Width, Height: w.Height})
			}
		}
	}()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// colorProfile picks a profile from the client's TERM and COLORTERM, since
// the session is not a local terminal termenv could probe.
func colorProfile(term string, environ []string) termenv.Profile {
	if term == "" || term == "dumb" {
		return termenv.Ascii
	}
	for _, kv := range environ {
		if kv == "COLORTERM=truecolor" || kv == "COLORTERM=24bit" {
			return termenv.TrueColor
		}
	}
	if strings.Contains(term, "256color") {
		return termenv.ANSI256
	}
	return termenv.ANSI
}
