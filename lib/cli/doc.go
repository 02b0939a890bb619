// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line plumbing for aconnect.
//
// [Command] pairs a [pflag.FlagSet] factory with a Run function and
// handles parsing, -h/--help, and structured help output with examples.
// Flags are usually declared as tagged fields of a params struct and
// bound with [FlagsFromParams]; see [BindFlags] for the tag syntax.
//
// Usage mistakes, whether reported by pflag or returned from Run as a
// [UsageError], print the error followed by the help text and turn into
// an [ExitError] with code 1. When a user mistypes a long flag, the
// closest defined flag by Levenshtein distance is suggested.
//
// [JSONOutput] adds a --json flag to a params struct, and
// [NewCommandLogger] builds the slog logger shared by commands.
package cli
