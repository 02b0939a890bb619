// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger writing to w at the
// given level. When w is a terminal it uses slog.TextHandler for
// human-readable output; when w is piped, redirected, or not a file at
// all it uses slog.JSONHandler so scripts can parse the records.
//
// Diagnostics the user asked for (the "error: ..." lines) are not log
// records and are printed directly; the logger carries supporting
// detail such as the failing sequencer call.
func NewCommandLogger(w io.Writer, level slog.Level) *slog.Logger {
	return newLogger(w, isTerminal(w), level)
}

func newLogger(w io.Writer, terminal bool, level slog.Level) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if terminal {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
