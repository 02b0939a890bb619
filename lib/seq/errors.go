// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"errors"
	"log/slog"
	"syscall"
)

// Error is a failed sequencer operation. Err is usually a
// syscall.Errno returned by the kernel.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err carries ENOENT.
func IsNotFound(err error) bool {
	return errors.Is(err, syscall.ENOENT)
}

// Describe returns the service's text for err: the errno description
// when one is wrapped, otherwise the error string.
func Describe(err error) string {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno.Error()
	}
	return err.Error()
}

// ErrorHook receives every failed service call as it happens, before
// the error is returned to the caller.
type ErrorHook func(op string, err error)

// LogErrors returns an ErrorHook that logs failures to logger at warn
// level. ENOENT is dropped: the kernel returns it at the end of every
// enumeration and for every probe of a missing subscription, so it
// never indicates a problem on its own.
func LogErrors(logger *slog.Logger) ErrorHook {
	return func(op string, err error) {
		if IsNotFound(err) {
			return
		}
		logger.Warn("sequencer call failed", "op", op, "error", Describe(err))
	}
}
