// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package connector

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/aconnect/lib/seq"
)

// ColorMode controls styling of listing output.
type ColorMode string

const (
	// ColorAuto styles output only when it goes to a color terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways styles output unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever disables styling.
	ColorNever ColorMode = "never"
)

// Printer writes port listings in the aconnect text layout:
//
//	client 20: 'USB Keyboard' [type=kernel,card=1]
//	    0 'Keys            '
//		Connecting To: 128:0[ex], 129:0[real:0]
//		Connected From: 14:0
type Printer struct {
	out    io.Writer
	header lipgloss.Style
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer, mode ColorMode) *Printer {
	renderer := lipgloss.NewRenderer(out)
	switch mode {
	case ColorNever:
		renderer.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		renderer.SetColorProfile(termenv.ANSI256)
	}
	return &Printer{
		out:    out,
		header: renderer.NewStyle().Bold(true),
	}
}

// PrintPort writes one port line, preceded by the client header when
// index is 0.
func (p *Printer) PrintPort(client seq.ClientInfo, port seq.PortInfo, index int) error {
	if index == 0 {
		if _, err := fmt.Fprintln(p.out, p.header.Render(clientHeader(client, port))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(p.out, "  %3d '%-16s'\n", port.Addr.Port, port.Name)
	return err
}

// PrintSubscribers writes the "Connecting To" and "Connected From"
// lines. A side without subscribers produces no line.
func (p *Printer) PrintSubscribers(subscribers Subscribers) error {
	if err := p.printSide("Connecting To", subscribers.ConnectingTo); err != nil {
		return err
	}
	return p.printSide("Connected From", subscribers.ConnectedFrom)
}

func (p *Printer) printSide(label string, subscribers []seq.Subscriber) error {
	if len(subscribers) == 0 {
		return nil
	}
	peers := make([]string, len(subscribers))
	for i, subscriber := range subscribers {
		peers[i] = formatSubscriber(subscriber)
	}
	_, err := fmt.Fprintf(p.out, "\t%s: %s\n", label, strings.Join(peers, ", "))
	return err
}

// clientHeader formats the client line. The INACTIVE marker reflects
// the first listed port, which is the one that triggers the header.
func clientHeader(client seq.ClientInfo, port seq.PortInfo) string {
	var builder strings.Builder
	kind := "user"
	if client.Type != seq.ClientTypeUser {
		kind = "kernel"
	}
	fmt.Fprintf(&builder, "client %d: '%s' [type=%s", client.ID, client.Name, kind)
	switch client.MIDIVersion {
	case seq.MIDIUMP1:
		builder.WriteString(",UMP-MIDI1")
	case seq.MIDIUMP2:
		builder.WriteString(",UMP-MIDI2")
	}
	if port.Inactive() {
		builder.WriteString(",INACTIVE")
	}
	if client.Card != -1 {
		fmt.Fprintf(&builder, ",card=%d", client.Card)
	}
	if client.PID != -1 {
		fmt.Fprintf(&builder, ",pid=%d", client.PID)
	}
	builder.WriteString("]")
	return builder.String()
}

// formatSubscriber renders a peer address with its [ex] and
// [real:Q]/[tick:Q] markers.
func formatSubscriber(subscriber seq.Subscriber) string {
	text := subscriber.Addr.String()
	if subscriber.Exclusive {
		text += "[ex]"
	}
	if subscriber.TimeUpdate {
		mode := "tick"
		if subscriber.TimeReal {
			mode = "real"
		}
		text += fmt.Sprintf("[%s:%d]", mode, subscriber.Queue)
	}
	return text
}
