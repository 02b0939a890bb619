// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package seqtest provides an in-memory [seq.Sequencer] for tests. The
// fake keeps a client and port registry and a subscription list, and
// answers with the same errno values the kernel sequencer uses, so
// code under test sees realistic failure modes without /dev/snd/seq.
package seqtest

import (
	"fmt"
	"slices"
	"syscall"

	"github.com/bureau-foundation/aconnect/lib/seq"
)

// Fake is an in-memory sequencer. The zero value is not usable; create
// one with [New].
type Fake struct {
	selfID     int
	selfName   string
	clients    []*fakeClient
	links      []seq.Subscription
	closed     bool
	calls      []string
	hook       seq.ErrorHook
	failures   map[string]error
	unsubHooks []func(seq.Subscription) error
}

type fakeClient struct {
	info  seq.ClientInfo
	ports []seq.PortInfo
}

// New returns a Fake whose own handle is client selfID. The handle's
// client is registered as a user client with no ports, like a freshly
// opened sequencer handle.
func New(selfID int) *Fake {
	fake := &Fake{selfID: selfID, failures: make(map[string]error)}
	fake.AddClient(seq.ClientInfo{
		ID:   selfID,
		Name: fmt.Sprintf("Client-%d", selfID),
		Type: seq.ClientTypeUser,
		Card: -1,
		PID:  1000,
	})
	return fake
}

// SetErrorHook installs hook to receive failed calls.
func (f *Fake) SetErrorHook(hook seq.ErrorHook) {
	f.hook = hook
}

// AddClient registers a client. Clients are kept sorted by id, as the
// kernel enumerates them.
func (f *Fake) AddClient(info seq.ClientInfo) {
	for _, client := range f.clients {
		if client.info.ID == info.ID {
			client.info = info
			return
		}
	}
	f.clients = append(f.clients, &fakeClient{info: info})
	slices.SortFunc(f.clients, func(a, b *fakeClient) int { return a.info.ID - b.info.ID })
}

// AddPort registers a port on an existing client.
func (f *Fake) AddPort(info seq.PortInfo) {
	client := f.client(int(info.Addr.Client))
	if client == nil {
		panic(fmt.Sprintf("seqtest: AddPort on unknown client %d", info.Addr.Client))
	}
	client.ports = append(client.ports, info)
	slices.SortFunc(client.ports, func(a, b seq.PortInfo) int { return int(a.Addr.Port) - int(b.Addr.Port) })
	client.info.NumPorts = len(client.ports)
}

// Link records an existing subscription without permission checks.
func (f *Fake) Link(subscription seq.Subscription) {
	f.links = append(f.links, subscription)
}

// Links returns a copy of the current subscriptions.
func (f *Fake) Links() []seq.Subscription {
	return slices.Clone(f.links)
}

// HasLink reports whether sender is subscribed to dest.
func (f *Fake) HasLink(sender, dest seq.Addr) bool {
	return f.linkIndex(sender, dest) >= 0
}

// Fail makes every later call of the named method return err. Method
// names are the Sequencer method names ("Subscribe", "ClientID", ...).
func (f *Fake) Fail(method string, err error) {
	f.failures[method] = err
}

// FailUnsubscribeWhen installs a predicate consulted by Unsubscribe; a
// non-nil result is returned instead of removing the link.
func (f *Fake) FailUnsubscribeWhen(check func(seq.Subscription) error) {
	f.unsubHooks = append(f.unsubHooks, check)
}

// Calls returns the method names invoked so far, in order.
func (f *Fake) Calls() []string {
	return slices.Clone(f.calls)
}

// Closed reports whether Close has been called.
func (f *Fake) Closed() bool {
	return f.closed
}

// Reopen clears the closed state, standing in for a new handle on the
// same registry.
func (f *Fake) Reopen() {
	f.closed = false
}

// ClientName returns the name set through SetClientName.
func (f *Fake) ClientName() string {
	return f.selfName
}

func (f *Fake) ClientID() (int, error) {
	if err := f.begin("ClientID"); err != nil {
		return 0, err
	}
	return f.selfID, nil
}

func (f *Fake) SetClientName(name string) error {
	if err := f.begin("SetClientName"); err != nil {
		return err
	}
	f.selfName = name
	if client := f.client(f.selfID); client != nil {
		client.info.Name = name
	}
	return nil
}

func (f *Fake) NextClient(previous int) (seq.ClientInfo, error) {
	if err := f.begin("NextClient"); err != nil {
		return seq.ClientInfo{}, err
	}
	for _, client := range f.clients {
		if client.info.ID > previous {
			return client.info, nil
		}
	}
	return seq.ClientInfo{}, f.fail("NextClient", syscall.ENOENT)
}

func (f *Fake) NextPort(clientID, previous int, includeInactive bool) (seq.PortInfo, error) {
	if err := f.begin("NextPort"); err != nil {
		return seq.PortInfo{}, err
	}
	client := f.client(clientID)
	if client == nil {
		return seq.PortInfo{}, f.fail("NextPort", syscall.ENXIO)
	}
	for _, port := range client.ports {
		if int(port.Addr.Port) <= previous {
			continue
		}
		if port.Inactive() && !includeInactive {
			continue
		}
		return f.withUse(port), nil
	}
	return seq.PortInfo{}, f.fail("NextPort", syscall.ENOENT)
}

func (f *Fake) PortInfo(addr seq.Addr) (seq.PortInfo, error) {
	if err := f.begin("PortInfo"); err != nil {
		return seq.PortInfo{}, err
	}
	port, ok := f.port(addr)
	if !ok {
		return seq.PortInfo{}, f.fail("PortInfo", syscall.ENXIO)
	}
	return f.withUse(port), nil
}

func (f *Fake) QuerySubscribers(query seq.SubscriberQuery) (seq.Subscriber, error) {
	if err := f.begin("QuerySubscribers"); err != nil {
		return seq.Subscriber{}, err
	}
	if _, ok := f.port(query.Root); !ok {
		return seq.Subscriber{}, f.fail("QuerySubscribers", syscall.ENXIO)
	}
	var matches []seq.Subscription
	for _, link := range f.links {
		if (query.Type == seq.QueryRead && link.Sender == query.Root) ||
			(query.Type == seq.QueryWrite && link.Dest == query.Root) {
			matches = append(matches, link)
		}
	}
	if query.Index < 0 || query.Index >= len(matches) {
		return seq.Subscriber{}, f.fail("QuerySubscribers", syscall.ENOENT)
	}
	link := matches[query.Index]
	result := seq.Subscriber{
		Root:       query.Root,
		Type:       query.Type,
		Index:      query.Index,
		Count:      len(matches),
		Queue:      link.Queue,
		Exclusive:  link.Exclusive,
		TimeUpdate: link.TimeUpdate,
		TimeReal:   link.TimeReal,
	}
	if query.Type == seq.QueryRead {
		result.Addr = link.Dest
	} else {
		result.Addr = link.Sender
	}
	return result, nil
}

func (f *Fake) GetSubscription(subscription seq.Subscription) (seq.Subscription, error) {
	if err := f.begin("GetSubscription"); err != nil {
		return seq.Subscription{}, err
	}
	index := f.linkIndex(subscription.Sender, subscription.Dest)
	if index < 0 {
		return seq.Subscription{}, f.fail("GetSubscription", syscall.ENOENT)
	}
	return f.links[index], nil
}

// Subscribe applies the kernel's checks: both ports must exist, the
// sender must allow read subscription and the destination write
// subscription, a third-party client may not touch NO_EXPORT ports, and
// a link may exist only once and may not join an exclusive port.
func (f *Fake) Subscribe(subscription seq.Subscription) error {
	if err := f.begin("Subscribe"); err != nil {
		return err
	}
	if err := f.checkPermission(subscription); err != nil {
		return f.fail("Subscribe", err)
	}
	if f.linkIndex(subscription.Sender, subscription.Dest) >= 0 {
		return f.fail("Subscribe", syscall.EBUSY)
	}
	for _, link := range f.links {
		touches := link.Sender == subscription.Sender || link.Dest == subscription.Dest
		if touches && (link.Exclusive || subscription.Exclusive) {
			return f.fail("Subscribe", syscall.EBUSY)
		}
	}
	f.links = append(f.links, subscription)
	return nil
}

func (f *Fake) Unsubscribe(subscription seq.Subscription) error {
	if err := f.begin("Unsubscribe"); err != nil {
		return err
	}
	if err := f.checkPermission(subscription); err != nil {
		return f.fail("Unsubscribe", err)
	}
	for _, check := range f.unsubHooks {
		if err := check(subscription); err != nil {
			return f.fail("Unsubscribe", err)
		}
	}
	index := f.linkIndex(subscription.Sender, subscription.Dest)
	if index < 0 {
		return f.fail("Unsubscribe", syscall.ENOENT)
	}
	f.links = slices.Delete(f.links, index, index+1)
	return nil
}

func (f *Fake) Close() error {
	if f.closed {
		return &seq.Error{Op: "Close", Err: syscall.EBADF}
	}
	f.calls = append(f.calls, "Close")
	f.closed = true
	return nil
}

// begin records the call and returns any injected or closed-handle error.
func (f *Fake) begin(method string) error {
	f.calls = append(f.calls, method)
	if f.closed {
		return f.fail(method, syscall.EBADF)
	}
	if err, ok := f.failures[method]; ok {
		return f.fail(method, err)
	}
	return nil
}

func (f *Fake) fail(method string, err error) error {
	if f.hook != nil {
		f.hook(method, err)
	}
	return &seq.Error{Op: method, Err: err}
}

func (f *Fake) checkPermission(subscription seq.Subscription) error {
	sender, ok := f.port(subscription.Sender)
	if !ok {
		return syscall.EINVAL
	}
	dest, ok := f.port(subscription.Dest)
	if !ok {
		return syscall.EINVAL
	}
	if sender.Capability&seq.CapSubsRead == 0 || dest.Capability&seq.CapSubsWrite == 0 {
		return syscall.EPERM
	}
	thirdParty := int(subscription.Sender.Client) != f.selfID && int(subscription.Dest.Client) != f.selfID
	if thirdParty && (sender.Capability&seq.CapNoExport != 0 || dest.Capability&seq.CapNoExport != 0) {
		return syscall.EPERM
	}
	return nil
}

func (f *Fake) client(id int) *fakeClient {
	for _, client := range f.clients {
		if client.info.ID == id {
			return client
		}
	}
	return nil
}

func (f *Fake) port(addr seq.Addr) (seq.PortInfo, bool) {
	client := f.client(int(addr.Client))
	if client == nil {
		return seq.PortInfo{}, false
	}
	for _, port := range client.ports {
		if port.Addr == addr {
			return port, true
		}
	}
	return seq.PortInfo{}, false
}

// withUse fills in the subscriber counts the kernel reports per port.
func (f *Fake) withUse(port seq.PortInfo) seq.PortInfo {
	port.ReadUse, port.WriteUse = 0, 0
	for _, link := range f.links {
		if link.Sender == port.Addr {
			port.ReadUse++
		}
		if link.Dest == port.Addr {
			port.WriteUse++
		}
	}
	return port
}

func (f *Fake) linkIndex(sender, dest seq.Addr) int {
	for index, link := range f.links {
		if link.Sender == sender && link.Dest == dest {
			return index
		}
	}
	return -1
}

var _ seq.Sequencer = (*Fake)(nil)
