// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/keys"
	"github.com/jeranaias/folio-tui/internal/logging"
	"github.com/jeranaias/folio-tui/internal/palette"
	"github.com/jeranaias/folio-tui/internal/site"
	"github.com/jeranaias/folio-tui/internal/terminal"
	"github.com/jeranaias/folio-tui/internal/ui/components"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// Brand is shown in the header.
const Brand = "ArpitStack"

// Options configures a Model.
type Options struct {
	Registry       *terminal.Registry
	Greeting       []string
	Prompt         string
	Title          string
	Links          site.Links
	Shortcuts      []string
	InitialSection string

	// Launcher opens links. Nil uses site.NewSystemLauncher.
	Launcher site.Launcher
	// Theme nil uses a theme on the default renderer.
	Theme *styles.Theme
	// Log nil uses logging.L().
	Log *zap.SugaredLogger
}

// OptionsFromConfig maps the configuration to model options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Registry:       cfg.Registry(),
		Greeting:       cfg.Terminal.Greeting,
		Prompt:         cfg.Terminal.Prompt,
		Title:          cfg.Terminal.Title,
		Links:          cfg.Links,
		Shortcuts:      cfg.Palette.Shortcuts,
		InitialSection: cfg.UI.InitialSection,
	}
}

type focusTarget int

const (
	focusSection focusTarget = iota
	focusTerminal
)

// Model is the root model. Use it through its pointer: palette actions hold
// the model as their Navigator.
type Model struct {
	theme    *styles.Theme
	keys     KeyMap
	log      *zap.SugaredLogger
	launcher site.Launcher

	bus       *keys.Bus
	engine    *terminal.Engine
	palette   *palette.Palette
	shortcuts []string
	unmount   func()

	header      *components.Header
	sectionView *components.SectionView
	termView    *components.TerminalView
	paletteView *components.PaletteView
	statusBar   *components.StatusBar

	focus  focusTarget
	width  int
	height int

	// pending collects commands produced inside palette effects.
	pending []tea.Cmd

	closed bool
}

var _ site.Navigator = (*Model)(nil)

// New creates the root model.
func New(opts Options) *Model {
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme(styles.Options{})
	}
	log := opts.Log
	if log == nil {
		log = logging.L()
	}
	launcher := opts.Launcher
	if launcher == nil {
		launcher = site.NewSystemLauncher()
	}
	registry := opts.Registry
	if registry == nil {
		registry = terminal.DefaultRegistry()
	}

	m := &Model{
		theme:     theme,
		keys:      DefaultKeyMap(),
		log:       log,
		launcher:  launcher,
		bus:       keys.NewBus(),
		engine:    terminal.NewEngine(registry, terminal.WithGreeting(opts.Greeting...)),
		shortcuts: opts.Shortcuts,
	}

	m.palette = palette.New(site.DefaultActions(m, opts.Links)...)

	start, ok := site.SectionByID(opts.InitialSection)
	if !ok {
		start, _ = site.SectionByID(site.SectionHero)
	}

	m.header = components.NewHeader(theme, Brand, site.Sections())
	m.header.SetActive(start.ID)
	m.sectionView = components.NewSectionView(start, theme)
	m.termView = components.NewTerminalView(m.engine, theme, opts.Title, opts.Prompt)
	m.paletteView = components.NewPaletteView(m.palette, theme)
	m.statusBar = components.NewStatusBar(theme,
		components.KeyHint{Key: shortcutLabel(opts.Shortcuts), Desc: "palette"},
		components.KeyHint{Key: "tab", Desc: "focus"},
		components.KeyHint{Key: "ctrl+c", Desc: "quit"},
	)
	m.statusBar.SetSection(start.Title)

	if start.ID == site.SectionWork {
		m.focus = focusTerminal
	}
	m.applyFocus()
	return m
}

func shortcutLabel(shortcuts []string) string {
	if len(shortcuts) == 0 {
		return palette.DefaultShortcuts[0]
	}
	return shortcuts[0]
}

// Init mounts the palette shortcut on the key bus.
func (m *Model) Init() tea.Cmd {
	if m.unmount == nil {
		m.unmount = m.palette.Mount(m.bus, m.shortcuts...)
	}
	return tea.Batch(textinput.Blink, m.applyFocus())
}

// Close unmounts the palette shortcut and releases the engine subscription.
// Calling it more than once is safe.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	if m.unmount != nil {
		m.unmount()
	}
	m.termView.Close()
}

// Engine returns the terminal engine.
func (m *Model) Engine() *terminal.Engine {
	return m.engine
}

// Palette returns the command palette.
func (m *Model) Palette() *palette.Palette {
	return m.palette
}

// Bus returns the key bus every key press is dispatched through.
func (m *Model) Bus() *keys.Bus {
	return m.bus
}

// CurrentSection returns the section shown in the pane.
func (m *Model) CurrentSection() site.Section {
	return m.sectionView.Section()
}

// TerminalFocused reports whether the terminal has focus.
func (m *Model) TerminalFocused() bool {
	return m.focus == focusTerminal
}

// Status returns the status bar message.
func (m *Model) Status() (string, components.StatusKind) {
	return m.statusBar.Message()
}

func (m *Model) setFocus(f focusTarget) tea.Cmd {
	m.focus = f
	return m.applyFocus()
}

func (m *Model) applyFocus() tea.Cmd {
	if m.focus == focusTerminal {
		m.sectionView.Blur()
		return m.termView.Focus()
	}
	m.termView.Blur()
	m.sectionView.Focus()
	return nil
}
