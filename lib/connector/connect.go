// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package connector

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/aconnect/lib/seq"
)

var (
	// ErrAlreadySubscribed is returned by Connect when the sender is
	// already subscribed to the destination.
	ErrAlreadySubscribed = errors.New("connection is already subscribed")

	// ErrNoSubscription is returned by Disconnect when no subscription
	// links the sender to the destination.
	ErrNoSubscription = errors.New("no subscription found")
)

// CallError is a subscribe or unsubscribe call the sequencer refused.
// Its message carries the service's own error text.
type CallError struct {
	// Action is "connection" or "disconnection".
	Action string
	Err    error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s failed (%s)", e.Action, seq.Describe(e.Err))
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// Connect subscribes subscription.Dest to subscription.Sender. An
// existing link between the two ports is reported as
// ErrAlreadySubscribed and left untouched.
func Connect(sequencer seq.Sequencer, subscription seq.Subscription) error {
	if _, err := sequencer.GetSubscription(subscription); err == nil {
		return ErrAlreadySubscribed
	}
	if err := sequencer.Subscribe(subscription); err != nil {
		return &CallError{Action: "connection", Err: err}
	}
	return nil
}

// Disconnect removes the link from subscription.Sender to
// subscription.Dest.
func Disconnect(sequencer seq.Sequencer, subscription seq.Subscription) error {
	if _, err := sequencer.GetSubscription(subscription); err != nil {
		return ErrNoSubscription
	}
	if err := sequencer.Unsubscribe(subscription); err != nil {
		return &CallError{Action: "disconnection", Err: err}
	}
	return nil
}
