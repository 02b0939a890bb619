// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package seq

import "strings"

// Capability is the port capability bitmask reported by the sequencer
// (SNDRV_SEQ_PORT_CAP_*).
type Capability uint32

const (
	CapRead        Capability = 1 << 0
	CapWrite       Capability = 1 << 1
	CapSyncRead    Capability = 1 << 2
	CapSyncWrite   Capability = 1 << 3
	CapDuplex      Capability = 1 << 4
	CapSubsRead    Capability = 1 << 5
	CapSubsWrite   Capability = 1 << 6
	CapNoExport    Capability = 1 << 7
	CapInactive    Capability = 1 << 8
	CapUMPEndpoint Capability = 1 << 9
)

var capabilityNames = []struct {
	bit  Capability
	name string
}{
	{CapRead, "read"},
	{CapWrite, "write"},
	{CapSyncRead, "sync-read"},
	{CapSyncWrite, "sync-write"},
	{CapDuplex, "duplex"},
	{CapSubsRead, "subs-read"},
	{CapSubsWrite, "subs-write"},
	{CapNoExport, "no-export"},
	{CapInactive, "inactive"},
	{CapUMPEndpoint, "ump-endpoint"},
}

// Has reports whether every bit in bits is set.
func (c Capability) Has(bits Capability) bool {
	return c&bits == bits
}

// Names returns the names of the set bits in ascending bit order.
func (c Capability) Names() []string {
	names := []string{}
	for _, entry := range capabilityNames {
		if c&entry.bit != 0 {
			names = append(names, entry.name)
		}
	}
	return names
}

func (c Capability) String() string {
	return strings.Join(c.Names(), "|")
}

// Direction is the port usage direction (SNDRV_SEQ_PORT_DIR_*). Kernels
// older than 6.5 and legacy clients report DirectionUnknown.
type Direction uint8

const (
	DirectionUnknown     Direction = 0
	DirectionInput       Direction = 1
	DirectionOutput      Direction = 2
	DirectionBidirection Direction = 3
)

func (d Direction) String() string {
	switch d {
	case DirectionInput:
		return "input"
	case DirectionOutput:
		return "output"
	case DirectionBidirection:
		return "bidirection"
	default:
		return "unknown"
	}
}

// ClientType distinguishes user-space clients from kernel clients.
type ClientType int

const (
	ClientTypeNone   ClientType = 0
	ClientTypeUser   ClientType = 1
	ClientTypeKernel ClientType = 2
)

func (t ClientType) String() string {
	switch t {
	case ClientTypeUser:
		return "user"
	case ClientTypeKernel:
		return "kernel"
	default:
		return "none"
	}
}

// MIDIVersion is the client's MIDI protocol (SNDRV_SEQ_CLIENT_*).
type MIDIVersion uint32

const (
	MIDILegacy MIDIVersion = 0
	MIDIUMP1   MIDIVersion = 1
	MIDIUMP2   MIDIVersion = 2
)

func (v MIDIVersion) String() string {
	switch v {
	case MIDIUMP1:
		return "UMP-MIDI1"
	case MIDIUMP2:
		return "UMP-MIDI2"
	default:
		return "legacy"
	}
}

// ClientInfo describes one sequencer client. Card is -1 for clients not
// bound to a sound card and PID is -1 for kernel clients.
type ClientInfo struct {
	ID          int
	Name        string
	Type        ClientType
	Card        int
	PID         int
	MIDIVersion MIDIVersion
	NumPorts    int
}

// PortInfo describes one port of a client.
type PortInfo struct {
	Addr       Addr
	Name       string
	Capability Capability
	Type       uint32
	Direction  Direction
	ReadUse    int
	WriteUse   int
}

// Inactive reports whether the port belongs to an inactive UMP group.
func (p PortInfo) Inactive() bool {
	return p.Capability&CapInactive != 0
}

// Subscription is a directed link from Sender to Dest. When TimeUpdate
// is set, events delivered through the link are stamped with the time
// of Queue, in real time if TimeReal is set and in ticks otherwise.
type Subscription struct {
	Sender     Addr
	Dest       Addr
	Queue      uint8
	Exclusive  bool
	TimeUpdate bool
	TimeReal   bool
}

// QueryType selects the side of the root port a subscriber query walks.
type QueryType int

const (
	// QueryRead lists subscriptions where the root is the sender.
	QueryRead QueryType = 0
	// QueryWrite lists subscriptions where the root is the destination.
	QueryWrite QueryType = 1
)

// SubscriberQuery addresses one entry of a port's subscriber list.
type SubscriberQuery struct {
	Root  Addr
	Type  QueryType
	Index int
}

// Subscriber is the result of a SubscriberQuery: the peer at Index in
// the root's subscriber list, plus the list length at query time.
type Subscriber struct {
	Root       Addr
	Type       QueryType
	Index      int
	Count      int
	Addr       Addr
	Queue      uint8
	Exclusive  bool
	TimeUpdate bool
	TimeReal   bool
}

// Subscription returns the link this subscriber entry describes.
func (s Subscriber) Subscription() Subscription {
	link := Subscription{
		Queue:      s.Queue,
		Exclusive:  s.Exclusive,
		TimeUpdate: s.TimeUpdate,
		TimeReal:   s.TimeReal,
	}
	if s.Type == QueryRead {
		link.Sender, link.Dest = s.Root, s.Addr
	} else {
		link.Sender, link.Dest = s.Addr, s.Root
	}
	return link
}
