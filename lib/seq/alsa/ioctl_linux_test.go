// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package alsa

import (
	"errors"
	"os"
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/aconnect/lib/seq"
)

func TestStructSizesMatchKernelABI(t *testing.T) {
	if got := unsafe.Sizeof(clientInfo{}); got != 188 {
		t.Errorf("sizeof(snd_seq_client_info) = %d, want 188", got)
	}
	if got := unsafe.Sizeof(portSubscribe{}); got != 80 {
		t.Errorf("sizeof(snd_seq_port_subscribe) = %d, want 80", got)
	}
	if got := unsafe.Sizeof(querySubs{}); got != 88 {
		t.Errorf("sizeof(snd_seq_query_subs) = %d, want 88", got)
	}
	wantPortInfo := uintptr(168)
	if unsafe.Sizeof(uintptr(0)) == 4 {
		wantPortInfo = 164
	}
	if got := unsafe.Sizeof(portInfo{}); got != wantPortInfo {
		t.Errorf("sizeof(snd_seq_port_info) = %d, want %d", got, wantPortInfo)
	}
}

func TestStructFieldOffsets(t *testing.T) {
	var port portInfo
	if got := unsafe.Offsetof(port.capability); got != 68 {
		t.Errorf("port_info.capability at %d, want 68", got)
	}
	var query querySubs
	if got := unsafe.Offsetof(query.addr); got != 16 {
		t.Errorf("query_subs.addr at %d, want 16", got)
	}
	if got := unsafe.Offsetof(query.flags); got != 20 {
		t.Errorf("query_subs.flags at %d, want 20", got)
	}
	var subscribe portSubscribe
	if got := unsafe.Offsetof(subscribe.queue); got != 12 {
		t.Errorf("port_subscribe.queue at %d, want 12", got)
	}
	var client clientInfo
	if got := unsafe.Offsetof(client.card); got != 124 {
		t.Errorf("client_info.card at %d, want 124", got)
	}
}

func TestIoctlNumbers(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("request numbers below are for 64-bit struct sizes")
	}
	tests := []struct {
		name    string
		request uintptr
		want    uintptr
	}{
		{"CLIENT_ID", ioctlClientID, 0x80045301},
		{"PVERSION", ioctlProtocolVersion, 0x80045300},
		{"USER_PVERSION", ioctlUserProtocolVersion, 0x40045304},
		{"GET_CLIENT_INFO", ioctlGetClientInfo, 0xc0bc5310},
		{"SET_CLIENT_INFO", ioctlSetClientInfo, 0x40bc5311},
		{"GET_PORT_INFO", ioctlGetPortInfo, 0xc0a85322},
		{"SUBSCRIBE_PORT", ioctlSubscribePort, 0x40505330},
		{"UNSUBSCRIBE_PORT", ioctlUnsubscribePort, 0x40505331},
		{"QUERY_SUBS", ioctlQuerySubs, 0xc058534f},
		{"GET_SUBSCRIPTION", ioctlGetSubscription, 0xc0505350},
		{"QUERY_NEXT_CLIENT", ioctlQueryNextClient, 0xc0bc5351},
		{"QUERY_NEXT_PORT", ioctlQueryNextPort, 0xc0a85352},
	}
	for _, test := range tests {
		if test.request != test.want {
			t.Errorf("SNDRV_SEQ_IOCTL_%s = %#x, want %#x", test.name, test.request, test.want)
		}
	}
}

func TestCString(t *testing.T) {
	var field [8]byte
	setCString(field[:], "Keyboard Controller")
	if got := cString(field[:]); got != "Keyboar" {
		t.Errorf("truncated name = %q, want %q", got, "Keyboar")
	}
	setCString(field[:], "in")
	if got := cString(field[:]); got != "in" {
		t.Errorf("short name = %q, want %q", got, "in")
	}
}

func TestSubscriptionEncoding(t *testing.T) {
	subscription := seq.Subscription{
		Sender:     seq.Addr{Client: 128, Port: 0},
		Dest:       seq.Addr{Client: 129, Port: 2},
		Queue:      3,
		Exclusive:  true,
		TimeUpdate: true,
		TimeReal:   true,
	}
	request := encodeSubscription(subscription)
	if request.flags != subsExclusive|subsTimestamp|subsTimeReal {
		t.Errorf("flags = %#x", request.flags)
	}
	if got := decodeSubscription(&request); got != subscription {
		t.Errorf("decode(encode(s)) = %+v, want %+v", got, subscription)
	}

	tick := encodeSubscription(seq.Subscription{TimeUpdate: true})
	if tick.flags != subsTimestamp {
		t.Errorf("tick flags = %#x, want %#x", tick.flags, subsTimestamp)
	}
}

func TestOpen_MissingDevice(t *testing.T) {
	_, err := Open(Options{Device: t.TempDir() + "/seq"})
	if !errors.Is(err, unix.ENOENT) {
		t.Errorf("Open(missing) = %v, want ENOENT", err)
	}
}

func TestOpen_RealDevice(t *testing.T) {
	if _, err := os.Stat(DefaultDevice); err != nil {
		t.Skipf("no sequencer device: %v", err)
	}
	sequencer, err := Open(Options{})
	if err != nil {
		t.Skipf("cannot open sequencer: %v", err)
	}
	defer sequencer.Close()

	id, err := sequencer.ClientID()
	if err != nil {
		t.Fatalf("ClientID: %v", err)
	}
	system, err := sequencer.NextClient(-1)
	if err != nil {
		t.Fatalf("NextClient(-1): %v", err)
	}
	if system.ID != 0 {
		t.Errorf("first client = %d, want the system client 0", system.ID)
	}
	if err := sequencer.SetClientName("aconnect test"); err != nil {
		t.Fatalf("SetClientName: %v", err)
	}
	if id < 0 {
		t.Errorf("ClientID = %d", id)
	}
	if err := sequencer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if _, err := sequencer.ClientID(); !errors.Is(err, unix.EBADF) {
		t.Errorf("ClientID after Close = %v, want EBADF", err)
	}
}
