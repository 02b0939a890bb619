// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package connector

import (
	"testing"

	"github.com/bureau-foundation/aconnect/lib/seq"
	"github.com/bureau-foundation/aconnect/lib/seq/seqtest"
)

func TestPortAllowed(t *testing.T) {
	tests := []struct {
		name       string
		capability seq.Capability
		direction  seq.Direction
		filter     Filter
		want       bool
	}{
		{"unfiltered readable", seqtest.Readable, seq.DirectionUnknown, 0, true},
		{"unfiltered no-export", seqtest.Duplex | seq.CapNoExport, seq.DirectionUnknown, 0, false},
		{"input readable", seqtest.Readable, seq.DirectionUnknown, ListInput, true},
		{"input read without subs", seq.CapRead, seq.DirectionUnknown, ListInput, false},
		{"input writable only", seqtest.Writable, seq.DirectionUnknown, ListInput, false},
		{"input with input direction", seqtest.Duplex, seq.DirectionInput, ListInput, true},
		{"input with output direction", seqtest.Duplex, seq.DirectionOutput, ListInput, false},
		{"input bidirection", seqtest.Duplex, seq.DirectionBidirection, ListInput, true},
		{"output writable", seqtest.Writable, seq.DirectionUnknown, ListOutput, true},
		{"output write without subs", seq.CapWrite, seq.DirectionUnknown, ListOutput, false},
		{"output with input direction", seqtest.Duplex, seq.DirectionInput, ListOutput, false},
		{"output with output direction", seqtest.Duplex, seq.DirectionOutput, ListOutput, true},
		{"either matches readable", seqtest.Readable, seq.DirectionUnknown, ListInput | ListOutput, true},
		{"either matches writable", seqtest.Writable, seq.DirectionUnknown, ListInput | ListOutput, true},
		{"filtered no-export", seqtest.Duplex | seq.CapNoExport, seq.DirectionUnknown, ListInput, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			port := seq.PortInfo{Capability: test.capability, Direction: test.direction}
			if got := PortAllowed(port, test.filter); got != test.want {
				t.Errorf("PortAllowed(%v, dir=%v, filter=%d) = %v, want %v",
					test.capability, test.direction, test.filter, got, test.want)
			}
		})
	}
}
