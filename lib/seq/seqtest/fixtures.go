// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package seqtest

import "github.com/bureau-foundation/aconnect/lib/seq"

// Capability sets of typical ports.
const (
	Readable = seq.CapRead | seq.CapSubsRead
	Writable = seq.CapWrite | seq.CapSubsWrite
	Duplex   = Readable | Writable | seq.CapDuplex
)

// KernelClient describes a kernel client bound to card.
func KernelClient(id int, name string, card int) seq.ClientInfo {
	return seq.ClientInfo{ID: id, Name: name, Type: seq.ClientTypeKernel, Card: card, PID: -1}
}

// UserClient describes a user-space client owned by pid.
func UserClient(id int, name string, pid int) seq.ClientInfo {
	return seq.ClientInfo{ID: id, Name: name, Type: seq.ClientTypeUser, Card: -1, PID: pid}
}

// Port describes a port with the given capability bits and no
// direction information.
func Port(client, port uint8, name string, capability seq.Capability) seq.PortInfo {
	return seq.PortInfo{
		Addr:       seq.Addr{Client: client, Port: port},
		Name:       name,
		Capability: capability,
	}
}

// Studio returns a fake holding a small but representative registry:
//
//	  0 System            kernel  0:0 Timer, 0:1 Announce (read only)
//	 14 Midi Through      kernel  14:0 Midi Through Port-0 (duplex)
//	 20 USB Keyboard      kernel  20:0 Keys (readable), 20:1 Hidden (no-export duplex)
//	128 Synth             user    128:0 in (writable), 128:1 out (readable)
//	129 Recorder          user    129:0 in (writable)
//
// The handle's own client is 130.
func Studio() *Fake {
	fake := New(130)
	fake.AddClient(KernelClient(0, "System", -1))
	fake.AddPort(Port(0, 0, "Timer", Duplex))
	fake.AddPort(Port(0, 1, "Announce", Readable))
	fake.AddClient(KernelClient(14, "Midi Through", -1))
	fake.AddPort(Port(14, 0, "Midi Through Port-0", Duplex))
	fake.AddClient(KernelClient(20, "USB Keyboard", 1))
	fake.AddPort(Port(20, 0, "Keys", Readable))
	fake.AddPort(Port(20, 1, "Hidden", Duplex|seq.CapNoExport))
	fake.AddClient(UserClient(128, "Synth", 4242))
	fake.AddPort(Port(128, 0, "in", Writable))
	fake.AddPort(Port(128, 1, "out", Readable))
	fake.AddClient(UserClient(129, "Recorder", 4343))
	fake.AddPort(Port(129, 0, "in", Writable))
	return fake
}
