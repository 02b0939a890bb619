// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(report(run(), os.Stderr))
}

func run() error {
	return newCommand(environment{
		stdout: os.Stdout,
		stderr: os.Stderr,
		open:   openSequencer,
	}).Execute(os.Args[1:])
}

// report prints err to stderr and returns the process exit code.
func report(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	// Usage errors have already printed their message and the help
	// text. Don't print a redundant "error:" line for those.
	if coder, ok := err.(interface{ ExitCode() int }); ok {
		return coder.ExitCode()
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return 1
}
