// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/terminal"
)

// isolate points HOME and the log directory at a temp dir and clears the
// FOLIO_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
	for _, key := range []string{"FOLIO_LOG_LEVEL", "FOLIO_LOG_DEV", "FOLIO_SSH_ADDR", "FOLIO_SECTION", "FOLIO_NO_COLOR", "NO_COLOR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return home
}

// execute runs folio with args, feeding stdin, and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--env-file", ""}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// =============================================================================
// VERSION / CONFIG TESTS
// =============================================================================

func TestVersion(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "version")

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "folio "+Version+" "))
}

func TestConfigPath(t *testing.T) {
	home := isolate(t)

	out, err := execute(t, "", "config", "path")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".folio", "config.toml")+"\n", out)

	out, err = execute(t, "", "--config", "/tmp/x.toml", "config", "path")
	require.NoError(t, err)
	require.Equal(t, "/tmp/x.toml\n", out)
}

func TestConfigInit(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, ".folio", "config.toml")

	out, err := execute(t, "", "config", "init")
	require.NoError(t, err)
	require.Contains(t, out, path)

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, config.Default().Terminal.Prompt, cfg.Terminal.Prompt)

	_, err = execute(t, "", "config", "init")
	require.ErrorContains(t, err, "already exists")

	_, err = execute(t, "", "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInitIgnoresBrokenFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("nonsense = ["), 0o600))

	_, err := execute(t, "", "--config", path, "config", "init", "--force")

	require.NoError(t, err)
	_, err = config.LoadFromPath(path)
	require.NoError(t, err)
}

func TestConfigShowAppliesFlagsAndEnv(t *testing.T) {
	isolate(t)
	t.Setenv("FOLIO_SSH_ADDR", "0.0.0.0:2022")

	out, err := execute(t, "", "--section", "#Contact", "--no-color", "config", "show")

	require.NoError(t, err)
	require.Contains(t, out, `"0.0.0.0:2022"`)
	require.Contains(t, out, `initial_section = "contact"`)
	require.Contains(t, out, "no_color = true")
}

func TestConfigShowRejectsInvalidFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[commands]\nclear = \"nope\"\n"), 0o600))

	_, err := execute(t, "", "--config", path, "config", "show")

	require.ErrorContains(t, err, "invalid config")
}

func TestUnknownSection(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "--section", "pricing", "config", "show")

	require.ErrorContains(t, err, `unknown section "pricing"`)
}

func TestEnvFile(t *testing.T) {
	home := isolate(t)
	envPath := filepath.Join(home, "folio.env")
	require.NoError(t, os.WriteFile(envPath, []byte("FOLIO_SSH_ADDR=127.0.0.1:4022\n"), 0o600))
	t.Setenv("FOLIO_SSH_ADDR", "")
	require.NoError(t, os.Unsetenv("FOLIO_SSH_ADDR"))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--env-file", envPath, "config", "show"})
	require.NoError(t, root.Execute())

	require.Contains(t, out.String(), `"127.0.0.1:4022"`)
}

func TestMissingEnvFileIsIgnored(t *testing.T) {
	require.NoError(t, loadEnvFile(filepath.Join(t.TempDir(), "absent.env")))
	require.NoError(t, loadEnvFile(""))
}

// =============================================================================
// LINE MODE TESTS
// =============================================================================

func TestRootFallsBackToLineMode(t *testing.T) {
	isolate(t)

	out, err := execute(t, "help\nnope\nexit\nabout\n")

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, terminal.DefaultGreeting[0]+"\n"))
	require.Contains(t, out, "Available commands:")
	require.Contains(t, out, terminal.NotFoundMessage("nope"))
	require.NotContains(t, out, "ArpitStack: Innovating")
	require.NotContains(t, out, config.Default().Terminal.Prompt)
}

func TestREPLUsesCustomCommands(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "c.toml")
	require.NoError(t, os.WriteFile(path, []byte("[commands]\nping = \"pong\"\n"), 0o600))

	out, err := execute(t, "ping\n", "--config", path, "repl")

	require.NoError(t, err)
	require.Contains(t, out, "\npong\n")
}

func TestIsInteractive(t *testing.T) {
	root := newRootCmd()
	root.SetIn(strings.NewReader(""))
	require.False(t, isInteractive(root))

	orig := termIsTerminal
	t.Cleanup(func() { termIsTerminal = orig })
	termIsTerminal = func(int) bool { return true }

	root = newRootCmd()
	root.SetIn(os.Stdin)
	root.SetOut(os.Stdout)
	require.True(t, isInteractive(root))
}
