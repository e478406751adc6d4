// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

// Package logger provides component-scoped zerolog loggers for the CLI.
package logger

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu    sync.Mutex
	level = zerolog.InfoLevel
)

// SetVerbose switches all subsequently created loggers to debug level.
func SetVerbose(verbose bool) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		level = zerolog.DebugLevel
	} else {
		level = zerolog.InfoLevel
	}
}

// New returns a console logger tagged with the given component name.
func New(component string) zerolog.Logger {
	mu.Lock()
	lvl := level
	mu.Unlock()

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).
		Level(lvl).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}
