// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package connector

import (
	"errors"
	"slices"
	"syscall"
	"testing"

	"github.com/bureau-foundation/aconnect/lib/seq"
	"github.com/bureau-foundation/aconnect/lib/seq/seqtest"
)

// visitedPorts runs SearchPorts and returns the visited addresses.
func visitedPorts(t *testing.T, sequencer seq.Sequencer, options SearchOptions) []string {
	t.Helper()
	var visited []string
	err := SearchPorts(sequencer, options, func(_ seq.ClientInfo, port seq.PortInfo, _ int) error {
		visited = append(visited, port.Addr.String())
		return nil
	})
	if err != nil {
		t.Fatalf("SearchPorts: %v", err)
	}
	return visited
}

func TestSearchPorts_Filters(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all", 0, []string{"0:0", "0:1", "14:0", "20:0", "128:0", "128:1", "129:0"}},
		{"input", ListInput, []string{"0:0", "0:1", "14:0", "20:0", "128:1"}},
		{"output", ListOutput, []string{"0:0", "14:0", "128:0", "129:0"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := visitedPorts(t, seqtest.Studio(), SearchOptions{Filter: test.filter})
			if !slices.Equal(got, test.want) {
				t.Errorf("visited %v, want %v", got, test.want)
			}
		})
	}
}

func TestSearchPorts_IndexCountsPerClient(t *testing.T) {
	var indexes []int
	err := SearchPorts(seqtest.Studio(), SearchOptions{}, func(client seq.ClientInfo, _ seq.PortInfo, index int) error {
		if client.ID == 0 || client.ID == 128 {
			indexes = append(indexes, index)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("SearchPorts: %v", err)
	}
	if want := []int{0, 1, 0, 1}; !slices.Equal(indexes, want) {
		t.Errorf("indexes = %v, want %v", indexes, want)
	}
}

func TestSearchPorts_Inactive(t *testing.T) {
	fake := seqtest.New(130)
	fake.AddClient(seqtest.UserClient(140, "UMP Device", 7))
	fake.AddPort(seqtest.Port(140, 0, "MIDI 2.0", seqtest.Duplex))
	fake.AddPort(seqtest.Port(140, 1, "Group 2", seqtest.Duplex|seq.CapInactive))

	if got := visitedPorts(t, fake, SearchOptions{}); !slices.Equal(got, []string{"140:0"}) {
		t.Errorf("without inactive: %v", got)
	}
	if got := visitedPorts(t, fake, SearchOptions{IncludeInactive: true}); !slices.Equal(got, []string{"140:0", "140:1"}) {
		t.Errorf("with inactive: %v", got)
	}
}

func TestSearchPorts_VisitorErrorStops(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := SearchPorts(seqtest.Studio(), SearchOptions{}, func(seq.ClientInfo, seq.PortInfo, int) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("SearchPorts() = %v, want visitor error", err)
	}
	if calls != 1 {
		t.Errorf("visitor called %d times, want 1", calls)
	}
}

func TestSearchPorts_ClientEnumerationFailureEndsWalk(t *testing.T) {
	fake := seqtest.Studio()
	fake.Fail("NextClient", syscall.EIO)
	var hooked []string
	fake.SetErrorHook(func(op string, err error) { hooked = append(hooked, op) })

	if visited := visitedPorts(t, fake, SearchOptions{}); len(visited) != 0 {
		t.Errorf("visited = %v, want none", visited)
	}
	if !slices.Equal(hooked, []string{"NextClient"}) {
		t.Errorf("error hook saw %v, want the NextClient failure", hooked)
	}
}
