// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"list", "list", 0},
		{"lsit", "list", 2},
		{"remove", "removeall", 3},
		{"kitten", "sitting", 3},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.BoolP("disconnect", "d", false, "")
	flagSet.BoolP("removeall", "x", false, "")
	flagSet.Bool("json", false, "")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"close typo", []string{"--disconect", "a", "b"}, "--disconnect"},
		{"with value", []string{"--jsn=true"}, "--json"},
		{"defined flags skipped", []string{"--json", "--removall"}, "--removeall"},
		{"too far", []string{"--completely-different"}, ""},
		{"after terminator", []string{"--", "--disconect"}, ""},
		{"short flags ignored", []string{"-q"}, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := suggestFlag(test.args, flagSet); got != test.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}
