// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli wires the folio commands.
//
// # Commands
//
//	folio                 interactive console (line mode when not a terminal)
//	folio repl            line-mode console
//	folio serve           serve the console over SSH
//	folio config init     write the default config file
//	folio config show     print the effective config
//	folio config path     print the config file location
//	folio version         print version information
//
// Global flags --config, --section and --no-color apply to every command.
// A .env file in the working directory is loaded before FOLIO_* overrides.
package cli
