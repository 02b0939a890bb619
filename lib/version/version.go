// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
)

// Release builds of aconnect stamp these with -ldflags -X; a plain
// go build leaves the defaults.
var (
	GitCommit = "unknown"
	GitDirty  = "false" // "true" when built from a modified tree
	BuildTime = "unknown"

	// Version is bumped by hand when aconnect is tagged.
	Version = "0.1.0-dev"
)

// Info returns the aconnect release, commit, and build time shown on
// the first line of --version.
func Info() string {
	dirty := ""
	if GitDirty == "true" {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", Version, GitCommit, dirty, BuildTime)
}

// Full is the complete --version text: Info followed by the Go
// toolchain and the platform the binary targets.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
