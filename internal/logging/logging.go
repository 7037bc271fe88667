// SPDX-License-Identifier: MIT

// Package logging builds the structured console logger shared by the CLI and
// the interactive session.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/modularity/internal/config"
)

// Output formats accepted in config.LogConfig.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger writing to w at cfg.Level. Text output carries
// timestamps for interactive use; JSON output is meant for piping.
func New(cfg config.LogConfig, w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: level %q: %w", cfg.Level, err)
	}

	opts := log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "modularity",
	}
	switch cfg.Format {
	case FormatText, "":
		opts.Formatter = log.TextFormatter
	case FormatJSON:
		opts.Formatter = log.JSONFormatter
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	return log.NewWithOptions(w, opts), nil
}

// Discard returns a logger that drops everything, for tests and library
// callers that did not ask for output.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
