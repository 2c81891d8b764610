// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"errors"
	"fmt"

	"github.com/jeranaias/folio-tui/internal/site"
	"github.com/jeranaias/folio-tui/internal/ui/components"
)

// ErrUnknownSection is returned by Navigate for anchors that name no section.
var ErrUnknownSection = errors.New("unknown section")

// Navigate shows the section with the given anchor. The work section hosts
// the terminal, so navigating there also focuses it.
func (m *Model) Navigate(anchor string) error {
	sec, ok := site.SectionByID(anchor)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, anchor)
	}

	m.sectionView.SetSection(sec)
	m.header.SetActive(sec.ID)
	m.statusBar.SetSection(sec.Title)
	m.statusBar.ClearMessage()

	if sec.ID == site.SectionWork {
		m.pending = append(m.pending, m.setFocus(focusTerminal))
	}
	m.log.Debugw("navigate", "section", sec.ID)
	return nil
}

// OpenURL hands the link to the launcher and reports the outcome in the
// status bar.
func (m *Model) OpenURL(url string) error {
	outcome, err := m.launcher.Launch(url)
	if err != nil {
		return err
	}
	switch outcome {
	case site.OutcomeOpened:
		m.statusBar.SetMessage("Opened "+url, components.StatusSuccess)
	case site.OutcomeCopied:
		m.statusBar.SetMessage("Copied "+url+" to the clipboard", components.StatusSuccess)
	default:
		m.statusBar.SetMessage("Visit "+url, components.StatusInfo)
	}
	m.log.Infow("open link", "url", url, "outcome", outcome)
	return nil
}
