// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// countingValue is a pflag.Value that remembers whether it was set.
type countingValue struct {
	value int
	set   bool
}

func (c *countingValue) String() string { return strconv.Itoa(c.value) }
func (c *countingValue) Type() string   { return "n" }

func (c *countingValue) Set(text string) error {
	parsed, err := strconv.Atoi(text)
	if err != nil {
		return err
	}
	c.value = parsed
	c.set = true
	return nil
}

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Name     string        `flag:"name" desc:"the name"`
		Verbose  bool          `flag:"verbose,v" desc:"enable verbose output"`
		Count    int           `flag:"count" desc:"number of items"`
		Queue    countingValue `flag:"queue,q" desc:"queue number"`
		Untagged string
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"--name", "alice",
		"-v",
		"--count", "42",
		"-q", "7",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Name != "alice" {
		t.Errorf("Name = %q, want %q", p.Name, "alice")
	}
	if !p.Verbose {
		t.Error("Verbose = false, want true")
	}
	if p.Count != 42 {
		t.Errorf("Count = %d, want 42", p.Count)
	}
	if !p.Queue.set || p.Queue.value != 7 {
		t.Errorf("Queue = %+v, want set to 7", p.Queue)
	}
	if p.Untagged != "" {
		t.Errorf("Untagged = %q, want empty (should be skipped)", p.Untagged)
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		Device string `flag:"device" desc:"device path" default:"/dev/snd/seq"`
		Port   int    `flag:"port" desc:"port" default:"8"`
		Debug  bool   `flag:"debug" desc:"debug mode" default:"true"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Device != "/dev/snd/seq" {
		t.Errorf("Device = %q, want %q", p.Device, "/dev/snd/seq")
	}
	if p.Port != 8 {
		t.Errorf("Port = %d, want 8", p.Port)
	}
	if !p.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestBindFlags_ValueUnsetKeepsZero(t *testing.T) {
	type params struct {
		Queue countingValue `flag:"queue" desc:"queue number"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"positional"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Queue.set {
		t.Error("Queue.set = true without the flag")
	}
}

func TestBindFlags_EmbeddedStructRecursion(t *testing.T) {
	type params struct {
		JSONOutput
		Name string `flag:"name" desc:"name"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--json", "--name", "x"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.OutputJSON {
		t.Error("OutputJSON = false, want true")
	}
	if p.Name != "x" {
		t.Errorf("Name = %q, want %q", p.Name, "x")
	}
}

func TestBindFlags_Shorthand(t *testing.T) {
	type params struct {
		List bool `flag:"list,l" desc:"list"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	flag := flagSet.Lookup("list")
	if flag == nil {
		t.Fatal("--list not registered")
	}
	if flag.Shorthand != "l" {
		t.Errorf("Shorthand = %q, want %q", flag.Shorthand, "l")
	}
}

func TestBindFlags_ErrorNotPointer(t *testing.T) {
	type params struct {
		Name string `flag:"name"`
	}
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(params{}, flagSet)
	if err == nil {
		t.Fatal("expected error for non-pointer params")
	}
	if !strings.Contains(err.Error(), "pointer to a struct") {
		t.Errorf("error = %v, want mention of pointer to a struct", err)
	}
}

func TestBindFlags_ErrorUnsupportedType(t *testing.T) {
	type params struct {
		Ratio float32 `flag:"ratio"`
	}
	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(&p, flagSet)
	if err == nil {
		t.Fatal("expected error for unsupported field type")
	}
	if !strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("error = %v, want mention of unsupported type", err)
	}
}

func TestBindFlags_ErrorBadDefault(t *testing.T) {
	type params struct {
		Count int `flag:"count" default:"many"`
	}
	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err == nil {
		t.Fatal("expected error for unparseable default")
	}
}

func TestFlagsFromParams_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FlagsFromParams did not panic on non-pointer params")
		}
	}()
	FlagsFromParams("test", struct{}{})
}
