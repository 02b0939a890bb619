// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package seq defines the contract between aconnect and the kernel MIDI
// sequencer. The sequencer owns the client and port registry and the
// subscription graph; this package only describes the operations a
// caller can issue against it and the values those operations carry.
//
// [Sequencer] is the injected collaborator. The production
// implementation lives in lib/seq/alsa and talks to /dev/snd/seq through
// ioctls; lib/seq/seqtest provides an in-memory fake with the same
// error semantics for tests.
//
// Errors returned by a Sequencer wrap the service errno in an [Error].
// [IsNotFound] classifies ENOENT, which the kernel uses both for
// "no such subscription" and for "enumeration exhausted". [Describe]
// returns the errno's text for user-facing diagnostics.
//
// Address strings are resolved by [ParseAddress], which follows the
// same rule as alsa-lib's snd_seq_parse_address: a numeric client or a
// client name (optionally quoted), then an optional ":port" or ".port".
package seq
