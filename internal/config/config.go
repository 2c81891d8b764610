// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/folio-tui/internal/palette"
	"github.com/jeranaias/folio-tui/internal/site"
	"github.com/jeranaias/folio-tui/internal/terminal"
	"github.com/jeranaias/folio-tui/internal/util"
)

// CurrentVersion is written into new config files.
const CurrentVersion = "1"

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete folio configuration.
type Config struct {
	Version string `toml:"version"`

	// Terminal widget appearance
	Terminal TerminalConfig `toml:"terminal"`

	// Commands overrides or extends the built-in command table.
	Commands map[string]CommandOutput `toml:"commands"`

	Palette PaletteConfig `toml:"palette"`
	Links   site.Links    `toml:"links"`
	SSH     SSHConfig     `toml:"ssh"`
	Log     LogConfig     `toml:"log"`
	UI      UIConfig      `toml:"ui"`
}

// TerminalConfig contains terminal widget settings.
type TerminalConfig struct {
	// Greeting seeds the scrollback of every new terminal. Empty means no greeting.
	Greeting []string `toml:"greeting"`
	// Prompt is shown before the input line.
	Prompt string `toml:"prompt"`
	// Title is shown in the terminal window bar.
	Title string `toml:"title"`
}

// PaletteConfig contains command palette settings.
type PaletteConfig struct {
	// Shortcuts toggle the palette, in bubbletea key notation ("ctrl+k").
	Shortcuts []string `toml:"shortcuts"`
}

// SSHConfig contains settings for `folio serve`.
type SSHConfig struct {
	Addr        string `toml:"addr"`
	HostKeyPath string `toml:"host_key_path"`
	// SessionsPerMinute limits new sessions across all clients. 0 disables the limit.
	SessionsPerMinute int `toml:"sessions_per_minute"`
	Burst             int `toml:"burst"`
	// IdleTimeoutSecs closes sessions without input. 0 disables the timeout.
	IdleTimeoutSecs int `toml:"idle_timeout_secs"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// Dev switches to the human readable console encoder.
	Dev bool `toml:"dev"`
	// Path overrides the log file location. Empty uses the XDG state directory.
	Path string `toml:"path"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	NoColor bool `toml:"no_color"`
	// InitialSection is the section shown on start.
	InitialSection string `toml:"initial_section"`
}

// =============================================================================
// COMMAND OUTPUT
// =============================================================================

// CommandOutput is a [commands] entry. A TOML string decodes to a single
// line output, an array of strings to a multi-line output.
type CommandOutput struct {
	Lines []string
	Multi bool
}

// UnmarshalTOML implements toml.Unmarshaler.
func (o *CommandOutput) UnmarshalTOML(data interface{}) error {
	switch v := data.(type) {
	case string:
		*o = CommandOutput{Lines: []string{v}}
		return nil
	case []interface{}:
		lines := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("line %d: expected string, got %T", i, item)
			}
			lines = append(lines, s)
		}
		*o = CommandOutput{Lines: lines, Multi: true}
		return nil
	default:
		return fmt.Errorf("expected string or array of strings, got %T", data)
	}
}

// MarshalTOML implements toml.Marshaler so entries round-trip in the same
// string-or-array shape they were written in.
func (o CommandOutput) MarshalTOML() ([]byte, error) {
	if !o.Multi && len(o.Lines) == 1 {
		return []byte(quoteTOML(o.Lines[0])), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, line := range o.Lines {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(quoteTOML(line))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Output converts the entry to a terminal output.
func (o CommandOutput) Output() terminal.Output {
	if !o.Multi && len(o.Lines) == 1 {
		return terminal.SingleLine(o.Lines[0])
	}
	return terminal.MultiLine(o.Lines...)
}

// quoteTOML renders s as a TOML basic string.
func quoteTOML(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\u%04X`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Terminal: TerminalConfig{
			Greeting: append([]string(nil), terminal.DefaultGreeting...),
			Prompt:   "➜ ~ ",
			Title:    "ArpitStack Studio Console -- zsh",
		},
		Commands: map[string]CommandOutput{},
		Palette: PaletteConfig{
			Shortcuts: append([]string(nil), palette.DefaultShortcuts...),
		},
		Links: site.DefaultLinks(),
		SSH: SSHConfig{
			Addr:              "127.0.0.1:2222",
			SessionsPerMinute: 30,
			Burst:             5,
			IdleTimeoutSecs:   900,
		},
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			InitialSection: site.SectionHero,
		},
	}
}

// SetDefaults fills zero values that must not stay empty.
// Greeting and Commands are left alone: empty is a valid choice for both.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Terminal.Prompt == "" {
		c.Terminal.Prompt = defaults.Terminal.Prompt
	}
	if c.Terminal.Title == "" {
		c.Terminal.Title = defaults.Terminal.Title
	}
	if c.Commands == nil {
		c.Commands = map[string]CommandOutput{}
	}
	if len(c.Palette.Shortcuts) == 0 {
		c.Palette.Shortcuts = defaults.Palette.Shortcuts
	}
	if c.SSH.Addr == "" {
		c.SSH.Addr = defaults.SSH.Addr
	}
	if c.SSH.Burst == 0 {
		c.SSH.Burst = defaults.SSH.Burst
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.UI.InitialSection == "" {
		c.UI.InitialSection = defaults.UI.InitialSection
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the folio configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".folio"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// HostKeyPath resolves the SSH host key location, defaulting to the config directory.
func (c *Config) HostKeyPath() (string, error) {
	if c.SSH.HostKeyPath != "" {
		return c.SSH.HostKeyPath, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ssh_host_ed25519"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads ~/.folio/config.toml. A missing file yields the defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPathTOML()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		return finish(Default())
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return finish(cfg)
}

// LoadTOML decodes the TOML file at path over cfg. Keys absent from the file
// keep their current values. Unknown keys are rejected.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to path with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	data, err := cfg.Encode()
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFileWithDir(path, data, 0600, 0700); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Encode renders the configuration as a commented TOML document.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# folio configuration file")
	fmt.Fprintln(&buf, "#")
	fmt.Fprintln(&buf, "# [commands] entries take a string or a list of strings:")
	fmt.Fprintln(&buf, "#   whoami = \"a curious visitor\"")
	fmt.Fprintln(&buf, "#   stack = [\"Go\", \"TypeScript\"]")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks every section and returns all problems at once.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// ==========================================================================
	// Commands
	// ==========================================================================

	for _, name := range sortedKeys(c.Commands) {
		field := "commands." + name
		switch terminal.NormalizeName(name) {
		case "":
			errs = append(errs, ValidationError{Field: field, Message: "command name cannot be blank"})
			continue
		case terminal.ClearCommand:
			errs = append(errs, ValidationError{Field: field, Message: "\"clear\" is built into the terminal and cannot be redefined"})
			continue
		}
		if len(c.Commands[name].Lines) == 0 {
			errs = append(errs, ValidationError{Field: field, Message: "output needs at least one line"})
		}
	}

	// ==========================================================================
	// Palette
	// ==========================================================================

	for i, s := range c.Palette.Shortcuts {
		if strings.TrimSpace(s) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("palette.shortcuts[%d]", i),
				Message: "shortcut cannot be blank",
			})
		}
	}

	// ==========================================================================
	// Links
	// ==========================================================================

	for _, l := range []struct{ field, value string }{
		{"links.github", c.Links.GitHub},
		{"links.linkedin", c.Links.LinkedIn},
		{"links.coffee", c.Links.Coffee},
		{"links.sponsors", c.Links.Sponsors},
	} {
		if l.value == "" {
			continue
		}
		if err := site.ValidateURL(l.value); err != nil {
			errs = append(errs, ValidationError{Field: l.field, Message: err.Error()})
		}
	}
	if c.Links.Email != "" && !strings.Contains(c.Links.Email, "@") {
		errs = append(errs, ValidationError{
			Field:   "links.email",
			Message: fmt.Sprintf("invalid address '%s'", c.Links.Email),
		})
	}

	// ==========================================================================
	// SSH
	// ==========================================================================

	if _, port, err := net.SplitHostPort(c.SSH.Addr); err != nil {
		errs = append(errs, ValidationError{Field: "ssh.addr", Message: fmt.Sprintf("invalid address: %v", err)})
	} else if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		errs = append(errs, ValidationError{Field: "ssh.addr", Message: fmt.Sprintf("invalid port '%s'", port)})
	}
	if c.SSH.SessionsPerMinute < 0 {
		errs = append(errs, ValidationError{Field: "ssh.sessions_per_minute", Message: "must be non-negative"})
	}
	if c.SSH.Burst < 1 {
		errs = append(errs, ValidationError{Field: "ssh.burst", Message: fmt.Sprintf("must be at least 1, got %d", c.SSH.Burst)})
	}
	if c.SSH.IdleTimeoutSecs < 0 {
		errs = append(errs, ValidationError{Field: "ssh.idle_timeout_secs", Message: "must be non-negative"})
	}

	// ==========================================================================
	// Log / UI
	// ==========================================================================

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}
	if !site.IsSection(c.UI.InitialSection) {
		errs = append(errs, ValidationError{
			Field:   "ui.initial_section",
			Message: fmt.Sprintf("unknown section '%s'", c.UI.InitialSection),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - FOLIO_LOG_LEVEL: overrides log.level
//   - FOLIO_LOG_DEV: overrides log.dev
//   - FOLIO_SSH_ADDR: overrides ssh.addr
//   - FOLIO_SECTION: overrides ui.initial_section
//   - FOLIO_NO_COLOR: overrides ui.no_color
//   - NO_COLOR: any non-empty value sets ui.no_color (https://no-color.org)
func (c *Config) ApplyEnvOverrides() {
	if level := os.Getenv("FOLIO_LOG_LEVEL"); level != "" {
		c.Log.Level = strings.ToLower(level)
	}
	if dev := os.Getenv("FOLIO_LOG_DEV"); dev != "" {
		c.Log.Dev = parseBool(dev)
	}
	if addr := os.Getenv("FOLIO_SSH_ADDR"); addr != "" {
		c.SSH.Addr = addr
	}
	if section := os.Getenv("FOLIO_SECTION"); section != "" {
		c.UI.InitialSection = section
	}
	if noColor := os.Getenv("FOLIO_NO_COLOR"); noColor != "" {
		c.UI.NoColor = parseBool(noColor)
	}
	if os.Getenv("NO_COLOR") != "" {
		c.UI.NoColor = true
	}
}

func parseBool(s string) bool {
	return s == "1" || strings.EqualFold(s, "true") || strings.EqualFold(s, "yes")
}

// =============================================================================
// DERIVED VALUES
// =============================================================================

// Registry builds the command table: the built-in commands with the
// [commands] entries layered on top.
func (c *Config) Registry() *terminal.Registry {
	r := terminal.DefaultRegistry()
	for _, name := range sortedKeys(c.Commands) {
		r.Register(name, c.Commands[name].Output())
	}
	return r
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Terminal.Greeting = append([]string(nil), c.Terminal.Greeting...)
	clone.Palette.Shortcuts = append([]string(nil), c.Palette.Shortcuts...)
	clone.Commands = make(map[string]CommandOutput, len(c.Commands))
	for k, v := range c.Commands {
		clone.Commands[k] = CommandOutput{Lines: append([]string(nil), v.Lines...), Multi: v.Multi}
	}
	return &clone
}

func sortedKeys(m map[string]CommandOutput) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
