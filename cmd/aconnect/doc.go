// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Aconnect manages subscriptions between ports of the ALSA sequencer.
//
// With two addresses it connects the sender port to the receiver port,
// or disconnects them with -d. With -i, -o, -l, or -a it lists the
// ports that can be connected, optionally with their current
// subscriptions. With -x it removes every exported subscription.
//
// Addresses are "client:port" pairs. The client may be given by number
// or by name (quoted when it contains a colon), and the port defaults
// to 0:
//
//	aconnect 20:0 128:0
//	aconnect 'USB Keyboard' Synth:0
//	aconnect -d 20:0 128:0
//	aconnect -i -l
//	aconnect -x
//
// Configuration is optional; see lib/config for the file format. The
// process exits 0 on success and 1 on any failure.
package main
