// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for folio.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - CommandOutput: One entry of the [commands] table, a string or a list of strings
//   - ValidationError, ValidateErrors: Collected validation problems
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (FOLIO_*, NO_COLOR)
//   - ~/.folio/config.toml, or the path given with --config
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	engine := terminal.NewEngine(cfg.Registry(), terminal.WithGreeting(cfg.Terminal.Greeting...))
package config
