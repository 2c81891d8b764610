// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging wires zap to a rotating file. The TUI owns stdout, so
// nothing is ever written to the terminal.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures Init.
type Options struct {
	// AppName names the state directory.
	AppName string
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// Dev selects the console encoder and a separate debug file.
	Dev bool
	// Path overrides the log file location.
	Path string
}

var (
	mu     sync.RWMutex
	logger *zap.SugaredLogger
	raw    *zap.Logger
	level  = zap.NewAtomicLevelAt(zap.InfoLevel)

	noop = zap.NewNop().Sugar()
)

// L returns the global logger, or a no-op logger before Init.
func L() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	if logger == nil {
		return noop
	}
	return logger
}

// Init installs the global file logger and returns the file it writes to.
func Init(opts Options) (string, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return "", err
	}
	path := opts.Path
	if path == "" {
		path = DefaultPath(opts.AppName, opts.Dev)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    20, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if opts.Dev {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	level.SetLevel(lvl)
	install(zap.New(zapcore.NewCore(encoder, writer, level), zap.AddCaller()))

	L().Infow("logger initialized", "path", path, "level", lvl.String(), "dev", opts.Dev)
	return path, nil
}

// InitTest installs a development logger writing to the test's stderr.
func InitTest() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build(zap.AddCaller())
	if err != nil {
		l = zap.NewNop()
	}
	install(l)
}

// Use installs l as the global logger. Passing nil restores the no-op logger.
func Use(l *zap.Logger) {
	install(l)
}

func install(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	raw = l
	if l == nil {
		logger = nil
		return
	}
	logger = l.Sugar()
}

// Sync flushes any buffered log entries.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if raw != nil {
		_ = raw.Sync()
	}
}

// SetLevel changes the level of the file logger at runtime.
func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

// ParseLevel maps a config level name to a zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return zap.InfoLevel, nil
	case "debug":
		return zap.DebugLevel, nil
	case "warn", "warning":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// DefaultPath picks $XDG_STATE_HOME/<app>, then ~/.local/state/<app>, then
// the temp directory.
func DefaultPath(appName string, dev bool) string {
	fileName := "folio.log"
	if dev {
		fileName = "folio-debug.log"
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, fileName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", appName, fileName)
	}
	return filepath.Join(os.TempDir(), appName, fileName)
}
