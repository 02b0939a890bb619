// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package connector

import "github.com/bureau-foundation/aconnect/lib/seq"

// Filter selects ports by the direction of traffic they accept. The
// zero Filter accepts every exported port.
type Filter int

const (
	// ListInput selects ports that can be read from: a subscription can
	// use them as sender.
	ListInput Filter = 1 << iota
	// ListOutput selects ports that can be written to: a subscription
	// can use them as destination.
	ListOutput
)

// PortAllowed reports whether port passes filter. Ports marked
// NO_EXPORT never pass. When the port reports a direction, it must
// include the direction the filter asks for.
func PortAllowed(port seq.PortInfo, filter Filter) bool {
	if port.Capability&seq.CapNoExport != 0 {
		return false
	}
	if filter == 0 {
		return true
	}
	if filter&ListInput != 0 &&
		port.Capability.Has(seq.CapRead|seq.CapSubsRead) &&
		directionAllows(port.Direction, seq.DirectionInput) {
		return true
	}
	if filter&ListOutput != 0 &&
		port.Capability.Has(seq.CapWrite|seq.CapSubsWrite) &&
		directionAllows(port.Direction, seq.DirectionOutput) {
		return true
	}
	return false
}

func directionAllows(direction, want seq.Direction) bool {
	return direction == seq.DirectionUnknown || direction&want != 0
}
