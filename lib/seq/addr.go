// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"fmt"
	"strconv"
	"strings"
	"syscall"
)

// Addr identifies a port in the sequencer namespace.
type Addr struct {
	Client uint8
	Port   uint8
}

// String formats the address as "client:port".
func (a Addr) String() string {
	return fmt.Sprintf("%d:%d", a.Client, a.Port)
}

// ParseAddr parses a numeric "client:port" or "client.port" address.
// A missing port selects port 0. Client names are not resolved; use
// [ParseAddress] for that.
func ParseAddr(text string) (Addr, error) {
	clientText, portText, hasPort := cutSeparator(text)
	client, err := parseUint8(clientText)
	if err != nil {
		return Addr{}, fmt.Errorf("invalid client in address %q: %w", text, err)
	}
	var port uint8
	if hasPort {
		port, err = parseUint8(portText)
		if err != nil {
			return Addr{}, fmt.Errorf("invalid port in address %q: %w", text, err)
		}
	}
	return Addr{Client: client, Port: port}, nil
}

// ParseAddress resolves an address string the way the sequencer's own
// tools do. The client part is either a number or a client name; names
// may be wrapped in single or double quotes so they can contain ':' or
// '.'. An exact name match wins, otherwise the first client whose name
// starts with the given text is used. The port part is optional.
//
// Malformed strings return an error wrapping EINVAL; an unmatched
// client name returns an error wrapping ENOENT.
func ParseAddress(clients ClientEnumerator, text string) (Addr, error) {
	if text == "" {
		return Addr{}, parseError(syscall.EINVAL)
	}

	var name, portText string
	var hasPort bool

	quote := text[0]
	if quote == '"' || quote == '\'' {
		end := strings.IndexByte(text[1:], quote)
		rest := ""
		if end < 0 {
			name = text[1:]
		} else {
			name = text[1 : end+1]
			rest = text[end+2:]
		}
		if rest != "" {
			if rest[0] != ':' && rest[0] != '.' {
				return Addr{}, parseError(syscall.EINVAL)
			}
			portText, hasPort = rest[1:], true
		}
	} else {
		name, portText, hasPort = cutSeparator(text)
	}

	var addr Addr
	if hasPort {
		port, err := parseUint8(portText)
		if err != nil {
			return Addr{}, parseError(syscall.EINVAL)
		}
		addr.Port = port
	}

	if name != "" && isDigit(name[0]) {
		client, err := parseUint8(name)
		if err != nil {
			return Addr{}, parseError(syscall.EINVAL)
		}
		addr.Client = client
		return addr, nil
	}

	if clients == nil || name == "" {
		return Addr{}, parseError(syscall.EINVAL)
	}

	client, err := lookupClient(clients, name)
	if err != nil {
		return Addr{}, err
	}
	addr.Client = uint8(client)
	return addr, nil
}

// lookupClient walks the registry for a client called name.
func lookupClient(clients ClientEnumerator, name string) (int, error) {
	prefixMatch := -1
	previous := -1
	for {
		info, err := clients.NextClient(previous)
		if err != nil {
			if IsNotFound(err) {
				break
			}
			return 0, err
		}
		previous = info.ID
		if info.Name == name {
			return info.ID, nil
		}
		if prefixMatch < 0 && strings.HasPrefix(info.Name, name) {
			prefixMatch = info.ID
		}
	}
	if prefixMatch >= 0 {
		return prefixMatch, nil
	}
	return 0, parseError(syscall.ENOENT)
}

func parseError(errno syscall.Errno) error {
	return &Error{Op: "parse address", Err: errno}
}

// cutSeparator splits at the first ':' or '.'.
func cutSeparator(text string) (before, after string, found bool) {
	index := strings.IndexAny(text, ":.")
	if index < 0 {
		return text, "", false
	}
	return text[:index], text[index+1:], true
}

func parseUint8(text string) (uint8, error) {
	value, err := strconv.ParseUint(text, 10, 8)
	if err != nil {
		return 0, err
	}
	return uint8(value), nil
}

func isDigit(character byte) bool {
	return character >= '0' && character <= '9'
}
