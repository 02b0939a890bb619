// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package connector implements the aconnect operations on top of a
// [seq.Sequencer]: walking ports through a capability filter, listing a
// port's subscribers, connecting and disconnecting two ports, and
// removing every exported subscription in one sweep.
//
// None of the operations keep state between calls. The subscription
// graph and its locking belong to the sequencer; every function here is
// a sequence of blocking service calls.
//
// [Printer] renders listings in the traditional aconnect text layout,
// and [Collect] produces the same data as [PortEntry] values for JSON
// output.
package connector
