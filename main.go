// folio - The ArpitStack portfolio console for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jeranaias/folio-tui/internal/cli"
	"github.com/jeranaias/folio-tui/internal/logging"
)

func main() {
	if err := cli.Execute(context.Background(), os.Args[1:]); err != nil {
		logging.L().Errorw("folio command failed", "error", err)
		logging.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
