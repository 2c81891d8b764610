// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/logging"
	"github.com/jeranaias/folio-tui/internal/site"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// AppName names the log state directory.
const AppName = "folio"

// globals holds the persistent flags and the config they resolve to.
type globals struct {
	configPath string
	section    string
	noColor    bool
	envFile    string

	cfg     *config.Config
	logPath string
}

// Execute runs the command line and returns the first error.
func Execute(ctx context.Context, args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "folio",
		Short:         "ArpitStack portfolio console",
		Long:          "An interactive portfolio console with a simulated terminal and a command palette.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, g)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", "config file (default ~/.folio/config.toml)")
	flags.StringVar(&g.section, "section", "", "section to open first: "+strings.Join(sectionIDs(), ", "))
	flags.BoolVar(&g.noColor, "no-color", false, "disable colors")
	flags.StringVar(&g.envFile, "env-file", ".env", "dotenv file loaded before FOLIO_* overrides")

	root.AddCommand(newREPLCmd(g))
	root.AddCommand(newServeCmd(g))
	root.AddCommand(newConfigCmd(g))
	root.AddCommand(newVersionCmd())

	return root
}

// setup loads the dotenv file and the config, applies flags and starts
// logging. Commands that must work with a broken config skip it.
func (g *globals) setup(cmd *cobra.Command) error {
	if err := loadEnvFile(g.envFile); err != nil {
		return err
	}
	if cmd.Annotations[annotationNoConfig] == "true" {
		return nil
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	if err := g.applyFlags(cfg); err != nil {
		return err
	}
	g.cfg = cfg

	path, err := logging.Init(logging.Options{
		AppName: AppName,
		Level:   cfg.Log.Level,
		Dev:     cfg.Log.Dev,
		Path:    cfg.Log.Path,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	g.logPath = path
	logging.L().Infow("folio starting", "version", Version, "command", cmd.CommandPath())
	return nil
}

const annotationNoConfig = "folio/no-config"

func (g *globals) loadConfig() (*config.Config, error) {
	if g.configPath != "" {
		return config.LoadFromPath(g.configPath)
	}
	return config.Load()
}

func (g *globals) applyFlags(cfg *config.Config) error {
	if g.section != "" {
		s, ok := site.SectionByID(g.section)
		if !ok {
			return fmt.Errorf("unknown section %q (want one of %s)", g.section, strings.Join(sectionIDs(), ", "))
		}
		cfg.UI.InitialSection = s.ID
	}
	if g.noColor {
		cfg.UI.NoColor = true
	}
	return nil
}

// loadEnvFile loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func sectionIDs() []string {
	sections := site.Sections()
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	return ids
}
