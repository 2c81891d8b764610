// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sshserver serves the portfolio console to remote visitors. Each
// PTY session runs its own TUI; other sessions get the line REPL, and
// "ssh host <command>" runs one terminal command.
package sshserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	gliderssh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/logging"
	"github.com/jeranaias/folio-tui/internal/repl"
	"github.com/jeranaias/folio-tui/internal/terminal"
)

// BusyMessage is written to sessions refused by the rate limit.
const BusyMessage = "Too many visitors right now. Try again in a minute.\n"

// Server exposes the console over SSH.
type Server struct {
	Config *config.Config
	// Listener, when set, is served instead of listening on Config.SSH.Addr.
	Listener net.Listener
	Log      *zap.SugaredLogger

	limiter *rate.Limiter
}

// ListenAndServe starts the SSH server and shuts down on context
// cancellation.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s.Config == nil {
		return errors.New("sshserver: config is required")
	}
	if s.Log == nil {
		s.Log = logging.L()
	}
	s.limiter = newLimiter(s.Config.SSH)

	keyPath, err := s.Config.HostKeyPath()
	if err != nil {
		return err
	}
	signer, err := EnsureHostKey(keyPath)
	if err != nil {
		return err
	}

	server := &gliderssh.Server{
		Addr:        s.Config.SSH.Addr,
		Handler:     s.handleSession,
		IdleTimeout: time.Duration(s.Config.SSH.IdleTimeoutSecs) * time.Second,
	}
	server.AddHostKey(signer)

	errCh := make(chan error, 1)
	go func() {
		if s.Listener != nil {
			errCh <- server.Serve(s.Listener)
			return
		}
		errCh <- server.ListenAndServe()
	}()
	s.Log.Infow("ssh server listening", "addr", s.addr(), "host_key", keyPath)

	select {
	case <-ctx.Done():
		_ = server.Close()
		return nil
	case err := <-errCh:
		if errors.Is(err, gliderssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server: %w", err)
	}
}

func (s *Server) addr() string {
	if s.Listener != nil {
		return s.Listener.Addr().String()
	}
	return s.Config.SSH.Addr
}

// newLimiter builds the session throttle. Zero sessions per minute means
// no limit.
func newLimiter(cfg config.SSHConfig) *rate.Limiter {
	if cfg.SessionsPerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.SessionsPerMinute)), burst)
}

func (s *Server) handleSession(sess gliderssh.Session) {
	log := s.Log.With(
		"session", uuid.NewString(),
		"user", sess.User(),
		"remote", remoteAddr(sess),
	)

	if !s.limiter.Allow() {
		log.Warnw("ssh session rejected", "reason", "rate limited")
		_, _ = io.WriteString(sess, BusyMessage)
		_ = sess.Exit(1)
		return
	}

	start := time.Now()
	var err error
	code := 0

	switch pty, winCh, isPty := sess.Pty(); {
	case len(sess.RawCommand()) > 0:
		log.Infow("ssh exec", "command", sess.RawCommand())
		code = s.runCommand(sess)
	case isPty:
		log.Infow("ssh session opened", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)
		err = s.runProgram(sess, pty, winCh, log)
	default:
		log.Infow("ssh session opened", "term", "none")
		err = s.runREPL(sess, log)
	}

	if err != nil {
		log.Errorw("ssh session failed", "error", err)
		code = 1
	}
	log.Infow("ssh session closed", "duration", time.Since(start).Round(time.Millisecond))
	_ = sess.Exit(code)
}

// newEngine returns a fresh engine for one session.
func (s *Server) newEngine(greeting bool) *terminal.Engine {
	var opts []terminal.Option
	if greeting {
		opts = append(opts, terminal.WithGreeting(s.Config.Terminal.Greeting...))
	}
	return terminal.NewEngine(s.Config.Registry(), opts...)
}

// runCommand submits the session's command line and prints its output. The
// exit status is 1 when the command is unknown.
func (s *Server) runCommand(sess gliderssh.Session) int {
	engine := s.newEngine(false)
	engine.Submit(sess.RawCommand())

	code := 0
	for _, l := range engine.Lines() {
		switch l.Kind {
		case terminal.KindEcho:
			continue
		case terminal.KindError:
			code = 1
			_, _ = fmt.Fprintln(sess.Stderr(), l.Text)
		default:
			_, _ = fmt.Fprintln(sess, l.Text)
		}
	}
	return code
}

func (s *Server) runREPL(sess gliderssh.Session, log *zap.SugaredLogger) error {
	r := repl.New(
		s.newEngine(true),
		repl.NewLineReader(sess, sess),
		sess,
		repl.Options{Prompt: s.Config.Terminal.Prompt, Log: log},
	)
	return r.Run(sess.Context())
}

func remoteAddr(sess gliderssh.Session) string {
	if sess.RemoteAddr() == nil {
		return ""
	}
	return sess.RemoteAddr().String()
}
