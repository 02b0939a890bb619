// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"syscall"
	"testing"
)

func TestDescribe(t *testing.T) {
	wrapped := fmt.Errorf("subscribe 20:0 -> 128:0: %w", &Error{Op: "subscribe", Err: syscall.EPERM})
	if got, want := Describe(wrapped), syscall.EPERM.Error(); got != want {
		t.Errorf("Describe(errno) = %q, want %q", got, want)
	}
	plain := errors.New("handle closed")
	if got := Describe(plain); got != "handle closed" {
		t.Errorf("Describe(plain) = %q", got)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(&Error{Op: "query", Err: syscall.ENOENT}) {
		t.Error("IsNotFound(ENOENT) = false")
	}
	if IsNotFound(&Error{Op: "query", Err: syscall.EBUSY}) {
		t.Error("IsNotFound(EBUSY) = true")
	}
}

func TestLogErrors_DropsNotFound(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buffer, nil))
	hook := LogErrors(logger)

	hook("get subscription", syscall.ENOENT)
	if buffer.Len() != 0 {
		t.Fatalf("ENOENT was logged: %q", buffer.String())
	}

	hook("subscribe", syscall.EPERM)
	output := buffer.String()
	if !strings.Contains(output, "op=subscribe") || !strings.Contains(output, syscall.EPERM.Error()) {
		t.Errorf("log output = %q, want op and errno text", output)
	}
}

func TestCapabilityNames(t *testing.T) {
	capability := CapRead | CapSubsRead | CapNoExport
	if got, want := capability.String(), "read|subs-read|no-export"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !capability.Has(CapRead | CapSubsRead) {
		t.Error("Has(read|subs-read) = false")
	}
	if capability.Has(CapRead | CapWrite) {
		t.Error("Has(read|write) = true")
	}
	if names := Capability(0).Names(); len(names) != 0 {
		t.Errorf("Names() of zero = %v", names)
	}
}
