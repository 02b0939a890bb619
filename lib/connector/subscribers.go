// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package connector

import "github.com/bureau-foundation/aconnect/lib/seq"

// Subscribers holds both sides of a port's subscription list.
type Subscribers struct {
	// ConnectingTo lists the destinations the port sends to.
	ConnectingTo []seq.Subscriber
	// ConnectedFrom lists the senders the port receives from.
	ConnectedFrom []seq.Subscriber
}

// ListSubscribers queries both subscription lists of addr. A port that
// vanishes or refuses the query mid-listing simply shows fewer peers.
func ListSubscribers(sequencer seq.Sequencer, addr seq.Addr) Subscribers {
	return Subscribers{
		ConnectingTo:  querySubscribers(sequencer, addr, seq.QueryRead),
		ConnectedFrom: querySubscribers(sequencer, addr, seq.QueryWrite),
	}
}

// querySubscribers walks one subscriber list by index until the
// sequencer returns an error. ENOENT is the normal end of the list;
// any other failure has already been reported to the error hook.
func querySubscribers(sequencer seq.Sequencer, root seq.Addr, queryType seq.QueryType) []seq.Subscriber {
	var subscribers []seq.Subscriber
	query := seq.SubscriberQuery{Root: root, Type: queryType}
	for {
		subscriber, err := sequencer.QuerySubscribers(query)
		if err != nil {
			return subscribers
		}
		subscribers = append(subscribers, subscriber)
		query.Index++
	}
}
