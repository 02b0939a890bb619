// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package seq

// ClientEnumerator walks the client registry. NextClient returns the
// first client whose id is greater than previous; pass -1 to start.
// An exhausted walk returns an error for which [IsNotFound] is true.
type ClientEnumerator interface {
	NextClient(previous int) (ClientInfo, error)
}

// Sequencer is an open handle to the sequencer service. All calls block
// until the service answers. Implementations are not safe for
// concurrent use.
type Sequencer interface {
	ClientEnumerator

	// ClientID returns the client number assigned to this handle.
	ClientID() (int, error)

	// SetClientName renames this handle's client.
	SetClientName(name string) error

	// NextPort returns the first port of client whose number is greater
	// than previous; pass -1 to start. Ports carrying CapInactive are
	// skipped unless includeInactive is set.
	NextPort(client, previous int, includeInactive bool) (PortInfo, error)

	// PortInfo returns the port at addr.
	PortInfo(addr Addr) (PortInfo, error)

	// QuerySubscribers returns the subscriber at query.Index.
	QuerySubscribers(query SubscriberQuery) (Subscriber, error)

	// GetSubscription returns the existing link between
	// subscription.Sender and subscription.Dest.
	GetSubscription(subscription Subscription) (Subscription, error)

	Subscribe(subscription Subscription) error
	Unsubscribe(subscription Subscription) error

	// Close releases the handle. Further calls fail.
	Close() error
}
