// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package connector

import "github.com/bureau-foundation/aconnect/lib/seq"

// SearchOptions controls SearchPorts.
type SearchOptions struct {
	Filter Filter

	// IncludeInactive also visits ports of inactive UMP groups.
	IncludeInactive bool
}

// PortVisitor is called for each port SearchPorts selects. index counts
// the selected ports of client so far, starting at 0, so a visitor can
// print a client header before the first one. A non-nil error stops the
// walk and is returned from SearchPorts.
type PortVisitor func(client seq.ClientInfo, port seq.PortInfo, index int) error

// SearchPorts visits every port of every client that passes the filter,
// in the order the sequencer enumerates them. Any enumeration error
// ends the walk at that point: ENOENT marks the last client or port,
// and other failures have already been reported to the error hook.
// Only a visitor error is returned.
func SearchPorts(sequencer seq.Sequencer, options SearchOptions, visit PortVisitor) error {
	previousClient := -1
	for {
		client, err := sequencer.NextClient(previousClient)
		if err != nil || client.ID <= previousClient {
			return nil
		}
		previousClient = client.ID

		index := 0
		previousPort := -1
		for {
			port, err := sequencer.NextPort(client.ID, previousPort, options.IncludeInactive)
			if err != nil || int(port.Addr.Port) <= previousPort {
				break
			}
			previousPort = int(port.Addr.Port)

			if !PortAllowed(port, options.Filter) {
				continue
			}
			if err := visit(client, port, index); err != nil {
				return err
			}
			index++
		}
	}
}
