// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package connector

import (
	"log/slog"

	"github.com/bureau-foundation/aconnect/lib/seq"
)

// RemoveAll removes every subscription whose sender is an exported port
// and whose destination accepts write subscriptions and is exported
// too. Subscriptions that fail either check, or whose removal the
// sequencer refuses, are skipped so the sweep always covers every port.
// Returns the number of subscriptions removed.
func RemoveAll(sequencer seq.Sequencer, logger *slog.Logger) (int, error) {
	removed := 0
	err := SearchPorts(sequencer, SearchOptions{}, func(_ seq.ClientInfo, port seq.PortInfo, _ int) error {
		query := seq.SubscriberQuery{Root: port.Addr, Type: seq.QueryRead}
		for {
			subscriber, err := sequencer.QuerySubscribers(query)
			if err != nil {
				return nil
			}

			dest, err := sequencer.PortInfo(subscriber.Addr)
			if err != nil ||
				dest.Capability&seq.CapSubsWrite == 0 ||
				dest.Capability&seq.CapNoExport != 0 {
				query.Index++
				continue
			}

			// Removal shifts the remaining entries down, so the index
			// only advances when the entry stays.
			link := seq.Subscription{Sender: port.Addr, Dest: subscriber.Addr, Queue: subscriber.Queue}
			if err := sequencer.Unsubscribe(link); err != nil {
				logger.Debug("skipping subscription", "sender", link.Sender.String(), "dest", link.Dest.String(), "error", seq.Describe(err))
				query.Index++
				continue
			}
			logger.Debug("removed subscription", "sender", link.Sender.String(), "dest", link.Dest.String())
			removed++
		}
	})
	return removed, err
}
