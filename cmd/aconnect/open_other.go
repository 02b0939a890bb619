// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package main

import (
	"errors"
	"log/slog"

	"github.com/bureau-foundation/aconnect/lib/seq"
)

func openSequencer(string, *slog.Logger) (seq.Sequencer, error) {
	return nil, errors.New("the ALSA sequencer is only available on Linux")
}
