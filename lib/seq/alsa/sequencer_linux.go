// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package alsa

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/aconnect/lib/seq"
)

// DefaultDevice is the sequencer character device.
const DefaultDevice = "/dev/snd/seq"

// Options configures Open.
type Options struct {
	// Device is the sequencer device path. Defaults to DefaultDevice.
	Device string

	// ErrorHook receives every failed ioctl before the error is
	// returned. May be nil.
	ErrorHook seq.ErrorHook
}

// Sequencer is an open handle on the kernel sequencer.
type Sequencer struct {
	fd       int
	protocol int32
	hook     seq.ErrorHook
}

// Open opens the sequencer device for duplex access and checks that the
// kernel speaks protocol version 1.
func Open(options Options) (*Sequencer, error) {
	device := options.Device
	if device == "" {
		device = DefaultDevice
	}

	fd, err := unix.Open(device, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", device, err)
	}

	s := &Sequencer{fd: fd, hook: options.ErrorHook}

	if err := s.ioctl("protocol version", ioctlProtocolVersion, unsafe.Pointer(&s.protocol)); err != nil {
		unix.Close(fd)
		return nil, err
	}
	if major := s.protocol >> 16; major != 1 {
		unix.Close(fd)
		return nil, fmt.Errorf("%s speaks sequencer protocol %d.%d.%d, want 1.x",
			device, major, (s.protocol>>8)&0xff, s.protocol&0xff)
	}

	// Kernels before 6.5 do not know this ioctl. The handle works
	// without it, minus MIDI version reporting.
	if s.protocol >= protocolVersion(1, 0, 3) {
		version := userProtocolVersion
		_ = s.ioctl("user protocol version", ioctlUserProtocolVersion, unsafe.Pointer(&version))
	}

	return s, nil
}

// ProtocolVersion returns the kernel's sequencer protocol version as
// major, minor, subminor.
func (s *Sequencer) ProtocolVersion() (int, int, int) {
	return int(s.protocol >> 16), int(s.protocol>>8) & 0xff, int(s.protocol) & 0xff
}

func (s *Sequencer) ClientID() (int, error) {
	var id int32
	if err := s.ioctl("client id", ioctlClientID, unsafe.Pointer(&id)); err != nil {
		return 0, err
	}
	return int(id), nil
}

func (s *Sequencer) SetClientName(name string) error {
	id, err := s.ClientID()
	if err != nil {
		return err
	}
	var info clientInfo
	info.client = int32(id)
	if err := s.ioctl("get client info", ioctlGetClientInfo, unsafe.Pointer(&info)); err != nil {
		return err
	}
	setCString(info.name[:], name)
	return s.ioctl("set client info", ioctlSetClientInfo, unsafe.Pointer(&info))
}

func (s *Sequencer) NextClient(previous int) (seq.ClientInfo, error) {
	var info clientInfo
	info.client = int32(previous)
	if err := s.ioctl("query next client", ioctlQueryNextClient, unsafe.Pointer(&info)); err != nil {
		return seq.ClientInfo{}, err
	}
	return s.convertClient(&info), nil
}

func (s *Sequencer) NextPort(client, previous int, includeInactive bool) (seq.PortInfo, error) {
	var info portInfo
	info.addr.client = uint8(client)
	// The kernel increments the port before searching; 255 wraps to 0.
	info.addr.port = uint8(previous)
	if includeInactive {
		info.capability = uint32(seq.CapInactive)
	}
	if err := s.ioctl("query next port", ioctlQueryNextPort, unsafe.Pointer(&info)); err != nil {
		return seq.PortInfo{}, err
	}
	return convertPort(&info), nil
}

func (s *Sequencer) PortInfo(addr seq.Addr) (seq.PortInfo, error) {
	var info portInfo
	info.addr = seqAddr{client: addr.Client, port: addr.Port}
	if err := s.ioctl("get port info", ioctlGetPortInfo, unsafe.Pointer(&info)); err != nil {
		return seq.PortInfo{}, err
	}
	return convertPort(&info), nil
}

func (s *Sequencer) QuerySubscribers(query seq.SubscriberQuery) (seq.Subscriber, error) {
	var request querySubs
	request.root = seqAddr{client: query.Root.Client, port: query.Root.Port}
	request.subsType = int32(query.Type)
	request.index = int32(query.Index)
	if err := s.ioctl("query subscribers", ioctlQuerySubs, unsafe.Pointer(&request)); err != nil {
		return seq.Subscriber{}, err
	}
	return seq.Subscriber{
		Root:       query.Root,
		Type:       query.Type,
		Index:      int(request.index),
		Count:      int(request.numSubs),
		Addr:       seq.Addr{Client: request.addr.client, Port: request.addr.port},
		Queue:      request.queue,
		Exclusive:  request.flags&subsExclusive != 0,
		TimeUpdate: request.flags&subsTimestamp != 0,
		TimeReal:   request.flags&subsTimeReal != 0,
	}, nil
}

func (s *Sequencer) GetSubscription(subscription seq.Subscription) (seq.Subscription, error) {
	request := encodeSubscription(subscription)
	if err := s.ioctl("get subscription", ioctlGetSubscription, unsafe.Pointer(&request)); err != nil {
		return seq.Subscription{}, err
	}
	return decodeSubscription(&request), nil
}

func (s *Sequencer) Subscribe(subscription seq.Subscription) error {
	request := encodeSubscription(subscription)
	return s.ioctl("subscribe port", ioctlSubscribePort, unsafe.Pointer(&request))
}

func (s *Sequencer) Unsubscribe(subscription seq.Subscription) error {
	request := encodeSubscription(subscription)
	return s.ioctl("unsubscribe port", ioctlUnsubscribePort, unsafe.Pointer(&request))
}

// Close releases the device. It is safe to call more than once.
func (s *Sequencer) Close() error {
	if s.fd < 0 {
		return nil
	}
	err := unix.Close(s.fd)
	s.fd = -1
	if err != nil {
		return &seq.Error{Op: "close", Err: err}
	}
	return nil
}

// ioctl issues one request against the device. Failures are reported
// to the error hook and returned as *seq.Error wrapping the errno.
func (s *Sequencer) ioctl(op string, request uintptr, argument unsafe.Pointer) error {
	if s.fd < 0 {
		return s.fail(op, unix.EBADF)
	}
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(s.fd), request, uintptr(argument))
	if errno != 0 {
		return s.fail(op, errno)
	}
	return nil
}

func (s *Sequencer) fail(op string, errno unix.Errno) error {
	if s.hook != nil {
		s.hook(op, errno)
	}
	return &seq.Error{Op: op, Err: errno}
}

func (s *Sequencer) convertClient(info *clientInfo) seq.ClientInfo {
	client := seq.ClientInfo{
		ID:       int(info.client),
		Name:     cString(info.name[:]),
		Type:     seq.ClientType(info.clientType),
		NumPorts: int(info.numPorts),
		Card:     int(info.card),
		PID:      int(info.pid),
	}
	// card and pid were carved out of the reserved area in 1.0.2.
	if s.protocol < protocolVersion(1, 0, 2) {
		client.Card, client.PID = -1, -1
	}
	if s.protocol >= protocolVersion(1, 0, 3) {
		client.MIDIVersion = seq.MIDIVersion(info.midiVersion)
	}
	return client
}

func convertPort(info *portInfo) seq.PortInfo {
	return seq.PortInfo{
		Addr:       seq.Addr{Client: info.addr.client, Port: info.addr.port},
		Name:       cString(info.name[:]),
		Capability: seq.Capability(info.capability),
		Type:       info.portType,
		Direction:  seq.Direction(info.direction),
		ReadUse:    int(info.readUse),
		WriteUse:   int(info.writeUse),
	}
}

func encodeSubscription(subscription seq.Subscription) portSubscribe {
	request := portSubscribe{
		sender: seqAddr{client: subscription.Sender.Client, port: subscription.Sender.Port},
		dest:   seqAddr{client: subscription.Dest.Client, port: subscription.Dest.Port},
		queue:  subscription.Queue,
	}
	if subscription.Exclusive {
		request.flags |= subsExclusive
	}
	if subscription.TimeUpdate {
		request.flags |= subsTimestamp
	}
	if subscription.TimeReal {
		request.flags |= subsTimeReal
	}
	return request
}

func decodeSubscription(request *portSubscribe) seq.Subscription {
	return seq.Subscription{
		Sender:     seq.Addr{Client: request.sender.client, Port: request.sender.port},
		Dest:       seq.Addr{Client: request.dest.client, Port: request.dest.port},
		Queue:      request.queue,
		Exclusive:  request.flags&subsExclusive != 0,
		TimeUpdate: request.flags&subsTimestamp != 0,
		TimeReal:   request.flags&subsTimeReal != 0,
	}
}

var _ seq.Sequencer = (*Sequencer)(nil)
