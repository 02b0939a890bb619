// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package connector

import "github.com/bureau-foundation/aconnect/lib/seq"

// ListOptions controls List and Collect.
type ListOptions struct {
	SearchOptions

	// Subscriptions adds each port's subscriber lists.
	Subscriptions bool
}

// List prints every selected port through printer.
func List(sequencer seq.Sequencer, options ListOptions, printer *Printer) error {
	return SearchPorts(sequencer, options.SearchOptions, func(client seq.ClientInfo, port seq.PortInfo, index int) error {
		if err := printer.PrintPort(client, port, index); err != nil {
			return err
		}
		if !options.Subscriptions {
			return nil
		}
		return printer.PrintSubscribers(ListSubscribers(sequencer, port.Addr))
	})
}

// PortEntry is the structured form of one listed port.
type PortEntry struct {
	Address       string            `json:"address"`
	Client        ClientEntry       `json:"client"`
	Port          int               `json:"port"`
	Name          string            `json:"name"`
	Capabilities  []string          `json:"capabilities"`
	Direction     string            `json:"direction"`
	Inactive      bool              `json:"inactive,omitempty"`
	ConnectingTo  []SubscriberEntry `json:"connecting_to,omitempty"`
	ConnectedFrom []SubscriberEntry `json:"connected_from,omitempty"`
}

// ClientEntry describes the client owning a listed port. Card and PID
// are -1 when not applicable.
type ClientEntry struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Card        int    `json:"card"`
	PID         int    `json:"pid"`
	MIDIVersion string `json:"midi_version"`
}

// SubscriberEntry is one peer of a listed port.
type SubscriberEntry struct {
	Address   string           `json:"address"`
	Exclusive bool             `json:"exclusive,omitempty"`
	Timestamp *TimestampConfig `json:"timestamp,omitempty"`
}

// TimestampConfig describes a subscription's time-stamp conversion.
type TimestampConfig struct {
	// Mode is "real" or "tick".
	Mode  string `json:"mode"`
	Queue int    `json:"queue"`
}

// Collect returns the selected ports as PortEntry values.
func Collect(sequencer seq.Sequencer, options ListOptions) ([]PortEntry, error) {
	entries := []PortEntry{}
	err := SearchPorts(sequencer, options.SearchOptions, func(client seq.ClientInfo, port seq.PortInfo, _ int) error {
		entry := PortEntry{
			Address: port.Addr.String(),
			Client: ClientEntry{
				ID:          client.ID,
				Name:        client.Name,
				Type:        client.Type.String(),
				Card:        client.Card,
				PID:         client.PID,
				MIDIVersion: client.MIDIVersion.String(),
			},
			Port:         int(port.Addr.Port),
			Name:         port.Name,
			Capabilities: port.Capability.Names(),
			Direction:    port.Direction.String(),
			Inactive:     port.Inactive(),
		}
		if options.Subscriptions {
			subscribers := ListSubscribers(sequencer, port.Addr)
			entry.ConnectingTo = subscriberEntries(subscribers.ConnectingTo)
			entry.ConnectedFrom = subscriberEntries(subscribers.ConnectedFrom)
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func subscriberEntries(subscribers []seq.Subscriber) []SubscriberEntry {
	if len(subscribers) == 0 {
		return nil
	}
	entries := make([]SubscriberEntry, len(subscribers))
	for i, subscriber := range subscribers {
		entries[i] = SubscriberEntry{
			Address:   subscriber.Addr.String(),
			Exclusive: subscriber.Exclusive,
		}
		if subscriber.TimeUpdate {
			mode := "tick"
			if subscriber.TimeReal {
				mode = "real"
			}
			entries[i].Timestamp = &TimestampConfig{Mode: mode, Queue: int(subscriber.Queue)}
		}
	}
	return entries
}
