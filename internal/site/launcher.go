// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package site holds the portfolio content and navigation actions.
package site

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// Outcome says how a URL reached the user.
type Outcome int

const (
	OutcomeOpened Outcome = iota
	OutcomeCopied
	OutcomeShown
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOpened:
		return "opened"
	case OutcomeCopied:
		return "copied"
	case OutcomeShown:
		return "shown"
	default:
		return "unknown"
	}
}

// Launcher opens external URLs.
type Launcher interface {
	Launch(rawURL string) (Outcome, error)
}

// ErrInvalidURL is returned for links that are not absolute http(s) or
// mailto URLs.
var ErrInvalidURL = errors.New("invalid link")

// ValidateURL checks that rawURL is safe to hand to the platform opener.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("%w: %q has no host", ErrInvalidURL, rawURL)
		}
	case "mailto":
	default:
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	return nil
}

// SystemLauncher opens links with the platform opener and falls back to the
// clipboard when no opener is available.
type SystemLauncher struct {
	// open and copy are swapped out in tests
	open func(string) error
	copy func(string) error
}

// NewSystemLauncher creates a launcher for the local desktop.
func NewSystemLauncher() *SystemLauncher {
	return &SystemLauncher{open: openURL, copy: clipboard.WriteAll}
}

// Launch opens rawURL, or copies it to the clipboard if opening fails.
func (l *SystemLauncher) Launch(rawURL string) (Outcome, error) {
	if err := ValidateURL(rawURL); err != nil {
		return OutcomeShown, err
	}
	openErr := l.open(rawURL)
	if openErr == nil {
		return OutcomeOpened, nil
	}
	if err := l.copy(rawURL); err != nil {
		return OutcomeShown, fmt.Errorf("open %s: %v; clipboard: %w", rawURL, openErr, err)
	}
	return OutcomeCopied, nil
}

// openURL starts the default handler for the URL.
func openURL(target string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	case "darwin":
		cmd = exec.Command("open", target)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.Command("xdg-open", target)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

// DisplayLauncher never touches the host; the caller shows the URL instead.
// It is used for remote sessions, where the host's browser is not the
// visitor's.
type DisplayLauncher struct {
	// Last is the most recently launched URL.
	Last string
}

// Launch records rawURL.
func (l *DisplayLauncher) Launch(rawURL string) (Outcome, error) {
	if err := ValidateURL(rawURL); err != nil {
		return OutcomeShown, err
	}
	l.Last = rawURL
	return OutcomeShown, nil
}
