// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package alsa

import "unsafe"

// ioctl direction bits and field shifts of the generic Linux _IOC
// encoding (asm-generic/ioctl.h), used by x86, arm and riscv.
const (
	iocWrite = 1
	iocRead  = 2

	iocNRShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30

	// seqIoctlType is the sequencer ioctl type character ('S').
	seqIoctlType = 'S'
)

// ioc encodes a sequencer ioctl request number.
func ioc(direction, number, size uintptr) uintptr {
	return direction<<iocDirShift | size<<iocSizeShift | seqIoctlType<<iocTypeShift | number<<iocNRShift
}

// Sequencer ioctl request numbers (SNDRV_SEQ_IOCTL_*).
var (
	ioctlProtocolVersion     = ioc(iocRead, 0x00, unsafe.Sizeof(int32(0)))
	ioctlClientID            = ioc(iocRead, 0x01, unsafe.Sizeof(int32(0)))
	ioctlUserProtocolVersion = ioc(iocWrite, 0x04, unsafe.Sizeof(int32(0)))
	ioctlGetClientInfo       = ioc(iocRead|iocWrite, 0x10, unsafe.Sizeof(clientInfo{}))
	ioctlSetClientInfo       = ioc(iocWrite, 0x11, unsafe.Sizeof(clientInfo{}))
	ioctlGetPortInfo         = ioc(iocRead|iocWrite, 0x22, unsafe.Sizeof(portInfo{}))
	ioctlSubscribePort       = ioc(iocWrite, 0x30, unsafe.Sizeof(portSubscribe{}))
	ioctlUnsubscribePort     = ioc(iocWrite, 0x31, unsafe.Sizeof(portSubscribe{}))
	ioctlQuerySubs           = ioc(iocRead|iocWrite, 0x4f, unsafe.Sizeof(querySubs{}))
	ioctlGetSubscription     = ioc(iocRead|iocWrite, 0x50, unsafe.Sizeof(portSubscribe{}))
	ioctlQueryNextClient     = ioc(iocRead|iocWrite, 0x51, unsafe.Sizeof(clientInfo{}))
	ioctlQueryNextPort       = ioc(iocRead|iocWrite, 0x52, unsafe.Sizeof(portInfo{}))
)

// protocolVersion packs a sequencer protocol version as the kernel does
// (SNDRV_PROTOCOL_VERSION).
func protocolVersion(major, minor, subminor int32) int32 {
	return major<<16 | minor<<8 | subminor
}

// userProtocolVersion is the protocol this package speaks. Announcing
// 1.0.3 makes the kernel report MIDI versions and UMP group state.
var userProtocolVersion = protocolVersion(1, 0, 3)

// Subscription flags (SNDRV_SEQ_PORT_SUBS_*).
const (
	subsExclusive = 1 << 0
	subsTimestamp = 1 << 1
	subsTimeReal  = 1 << 2
)

// seqAddr mirrors struct snd_seq_addr.
type seqAddr struct {
	client uint8
	port   uint8
}

// clientInfo mirrors struct snd_seq_client_info (188 bytes).
type clientInfo struct {
	client          int32
	clientType      int32
	name            [64]byte
	filter          uint32
	multicastFilter [8]byte
	eventFilter     [32]byte
	numPorts        int32
	eventLost       int32
	card            int32
	pid             int32
	midiVersion     uint32
	groupFilter     uint32
	reserved        [48]byte
}

// portInfo mirrors struct snd_seq_port_info (168 bytes on 64-bit, 164
// on 32-bit; the kernel pointer field is the only difference).
type portInfo struct {
	addr         seqAddr
	name         [64]byte
	capability   uint32
	portType     uint32
	midiChannels int32
	midiVoices   int32
	synthVoices  int32
	readUse      int32
	writeUse     int32
	kernel       uintptr
	flags        uint32
	timeQueue    uint8
	direction    uint8
	umpGroup     uint8
	reserved     [57]byte
}

// portSubscribe mirrors struct snd_seq_port_subscribe (80 bytes).
type portSubscribe struct {
	sender   seqAddr
	dest     seqAddr
	voices   uint32
	flags    uint32
	queue    uint8
	pad      [3]byte
	reserved [64]byte
}

// querySubs mirrors struct snd_seq_query_subs (88 bytes).
type querySubs struct {
	root     seqAddr
	_        [2]byte
	subsType int32
	index    int32
	numSubs  int32
	addr     seqAddr
	queue    uint8
	_        byte
	flags    uint32
	reserved [64]byte
}

// cString returns the NUL-terminated prefix of a fixed-size name field.
func cString(field []byte) string {
	for index, character := range field {
		if character == 0 {
			return string(field[:index])
		}
	}
	return string(field)
}

// setCString copies value into a fixed-size name field, truncating to
// leave room for the terminating NUL.
func setCString(field []byte, value string) {
	clear(field)
	copy(field[:len(field)-1], value)
}
