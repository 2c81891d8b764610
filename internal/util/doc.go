// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util holds small helpers shared by the folio packages.
//
// # Key Functions
//
//   - AtomicWriteFile: crash-safe file writing with fsync, used by config.Save
//   - TruncateWidth, PadRight: display-width aware layout helpers for the
//     palette rows and the status bar
//
// # Usage
//
//	label := util.TruncateWidth(action.Label, 40)
//	err := util.AtomicWriteFile(path, data, 0600)
package util
