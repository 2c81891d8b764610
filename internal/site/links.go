// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package site holds the portfolio content and navigation actions.
package site

// Links are the external profiles the Connect group points at.
type Links struct {
	GitHub   string `toml:"github" json:"github"`
	LinkedIn string `toml:"linkedin" json:"linkedin"`
	Coffee   string `toml:"coffee" json:"coffee"`
	Sponsors string `toml:"sponsors" json:"sponsors"`
	Email    string `toml:"email" json:"email"`
}

// DefaultLinks returns the profile links of the original site.
func DefaultLinks() Links {
	return Links{
		GitHub:   "https://github.com/ArpitStack",
		LinkedIn: "https://linkedin.com/in/ArpitStack",
		Coffee:   "https://buymeacoffee.com/ArpitStack",
		Sponsors: "https://github.com/sponsors/ArpitStack",
		Email:    "arpitstack@gmail.com",
	}
}
