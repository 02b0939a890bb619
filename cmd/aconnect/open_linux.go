// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package main

import (
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/aconnect/lib/seq"
	"github.com/bureau-foundation/aconnect/lib/seq/alsa"
)

// openSequencer opens the kernel sequencer at device. Failed calls are
// logged through logger, except ENOENT.
func openSequencer(device string, logger *slog.Logger) (seq.Sequencer, error) {
	sequencer, err := alsa.Open(alsa.Options{
		Device:    device,
		ErrorHook: seq.LogErrors(logger),
	})
	if err != nil {
		return nil, err
	}
	major, minor, subminor := sequencer.ProtocolVersion()
	logger.Debug("opened sequencer", "device", device, "protocol", fmt.Sprintf("%d.%d.%d", major, minor, subminor))
	return sequencer, nil
}
