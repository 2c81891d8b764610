// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package site holds the portfolio content and navigation actions.
package site

import "github.com/jeranaias/folio-tui/internal/palette"

// Navigator performs the side effects palette actions are bound to.
type Navigator interface {
	// Navigate shows the section with the given anchor ID.
	Navigate(anchor string) error
	// OpenURL opens an external link.
	OpenURL(url string) error
}

// DefaultActions returns the palette entries of the portfolio, bound to nav.
func DefaultActions(nav Navigator, links Links) []palette.Action {
	goTo := func(anchor string) func() error {
		return func() error { return nav.Navigate(anchor) }
	}
	open := func(url string) func() error {
		return func() error { return nav.OpenURL(url) }
	}

	return []palette.Action{
		// Navigation
		{ID: "nav-about", Label: "About ArpitStack", Group: palette.GroupNavigation, Icon: "@", ShortcutHint: "G A", Effect: goTo(SectionAbout)},
		{ID: "nav-experience", Label: "Professional Impact", Group: palette.GroupNavigation, Icon: "#", ShortcutHint: "G E", Effect: goTo(SectionExperience)},
		{ID: "nav-work", Label: "Core Innovations", Group: palette.GroupNavigation, Icon: "*", ShortcutHint: "G W", Effect: goTo(SectionWork)},

		// The Stack (Tools)
		{ID: "tool-secretstack", Label: "SecretStack Scanner", Group: palette.GroupTools, Icon: "!", Effect: goTo(SectionWork)},
		{ID: "tool-cloudstack", Label: "CloudStack CLI", Group: palette.GroupTools, Icon: "~", Effect: goTo(SectionWork)},
		{ID: "tool-terminal", Label: "Interactive Terminal", Group: palette.GroupTools, Icon: ">", Effect: goTo(SectionWork)},

		// Connect
		{ID: "connect-github", Label: "GitHub Profile", Group: palette.GroupConnect, Icon: "g", Effect: open(links.GitHub)},
		{ID: "connect-linkedin", Label: "LinkedIn", Group: palette.GroupConnect, Icon: "in", Effect: open(links.LinkedIn)},
		{ID: "connect-coffee", Label: "Buy Me A Coffee", Group: palette.GroupConnect, Icon: "c", Effect: open(links.Coffee)},
		{ID: "connect-contact", Label: "Get in Touch", Group: palette.GroupConnect, Icon: "m", Effect: goTo(SectionContact)},
	}
}
