// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package alsa implements [seq.Sequencer] on top of the Linux ALSA
// sequencer device (/dev/snd/seq). No cgo and no alsa-lib are needed:
// every operation is a single ioctl issued through golang.org/x/sys/unix
// with struct layouts mirroring include/uapi/sound/asequencer.h, which
// is stable kernel ABI.
//
// The package builds only on Linux. Callers on other platforms must
// provide their own seq.Sequencer.
package alsa
