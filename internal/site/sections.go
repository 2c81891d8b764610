// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package site holds the portfolio content shown in the section pane and the
// palette actions that navigate it.
package site

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed content/*.md
var content embed.FS

// Section is one page of the portfolio, addressed by its anchor ID.
type Section struct {
	ID       string
	Title    string
	Markdown string
}

// Anchor IDs, matching the fragment links of the web version.
const (
	SectionHero       = "hero"
	SectionAbout      = "about"
	SectionExperience = "experience"
	SectionWork       = "work"
	SectionBlog       = "blog"
	SectionSupport    = "support"
	SectionContact    = "contact"
)

var sectionOrder = []struct{ id, title string }{
	{SectionHero, "Home"},
	{SectionAbout, "About"},
	{SectionExperience, "Experience"},
	{SectionWork, "Work"},
	{SectionBlog, "Blog"},
	{SectionSupport, "Support"},
	{SectionContact, "Contact"},
}

// Sections returns every section in page order.
func Sections() []Section {
	out := make([]Section, 0, len(sectionOrder))
	for _, s := range sectionOrder {
		data, err := content.ReadFile("content/" + s.id + ".md")
		if err != nil {
			// embedded at build time; a missing file is a packaging bug
			panic(fmt.Sprintf("site: missing content for %q: %v", s.id, err))
		}
		out = append(out, Section{ID: s.id, Title: s.title, Markdown: string(data)})
	}
	return out
}

// SectionByID looks a section up by anchor. A leading "#" is accepted.
func SectionByID(id string) (Section, bool) {
	id = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(id)), "#")
	for _, s := range Sections() {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// IsSection reports whether id names a section.
func IsSection(id string) bool {
	_, ok := SectionByID(id)
	return ok
}
