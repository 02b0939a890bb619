// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/aconnect/lib/cli"
	"github.com/bureau-foundation/aconnect/lib/config"
	"github.com/bureau-foundation/aconnect/lib/connector"
	"github.com/bureau-foundation/aconnect/lib/seq"
	"github.com/bureau-foundation/aconnect/lib/version"
)

// environment is everything the command touches outside its own
// arguments. Tests substitute the sequencer opener.
type environment struct {
	stdout io.Writer
	stderr io.Writer
	open   func(device string, logger *slog.Logger) (seq.Sequencer, error)
}

// queueFlag is the value of -r and -t: a queue number that remembers
// whether it was given.
type queueFlag struct {
	queue uint8
	set   bool
}

func (q *queueFlag) String() string { return strconv.Itoa(int(q.queue)) }
func (q *queueFlag) Type() string   { return "queue" }

func (q *queueFlag) Set(text string) error {
	queue, err := strconv.ParseUint(text, 10, 8)
	if err != nil {
		return fmt.Errorf("queue must be a number from 0 to 255")
	}
	q.queue = uint8(queue)
	q.set = true
	return nil
}

type aconnectParams struct {
	Disconnect bool      `flag:"disconnect,d" desc:"disconnect the sender from the receiver"`
	Exclusive  bool      `flag:"exclusive,e" desc:"make the connection exclusive"`
	Real       queueFlag `flag:"real,r" desc:"convert time stamps to real time on queue"`
	Tick       queueFlag `flag:"tick,t" desc:"convert time stamps to ticks on queue"`
	Input      bool      `flag:"input,i" desc:"list input (readable) ports"`
	Output     bool      `flag:"output,o" desc:"list output (writable) ports"`
	All        bool      `flag:"all,a" desc:"list inactive ports, too"`
	List       bool      `flag:"list,l" desc:"list current connections of each port"`
	RemoveAll  bool      `flag:"removeall,x" desc:"remove all exported connections"`
	cli.JSONOutput
	Config  string `flag:"config" desc:"configuration file (default $ACONNECT_CONFIG)"`
	Version bool   `flag:"version" desc:"print version information and exit"`
}

type action int

const (
	actionConnect action = iota
	actionDisconnect
	actionList
	actionRemoveAll
)

func newCommand(env environment) *cli.Command {
	var params aconnectParams

	return &cli.Command{
		Name:    "aconnect",
		Summary: "ALSA sequencer connection manager",
		Description: `aconnect - ALSA sequencer connection manager

Connects, disconnects, and lists subscriptions between sequencer ports.
Addresses are client:port pairs; the client may be a number or a name,
quoted when it contains a colon, and the port defaults to 0.`,
		Usage: []string{
			"aconnect [-d] [-e] [-r queue|-t queue] sender receiver",
			"aconnect -i|-o [-a] [-l] [--json]",
			"aconnect -x",
		},
		Examples: []cli.Example{
			{
				Description: "Route a keyboard into a synthesizer",
				Command:     "aconnect 20:0 128:0",
			},
			{
				Description: "Connect by client name with real-time stamps on queue 1",
				Command:     "aconnect -r 1 'USB Keyboard' Synth",
			},
			{
				Description: "Undo a connection",
				Command:     "aconnect -d 20:0 128:0",
			},
			{
				Description: "List readable ports and where they are connected",
				Command:     "aconnect -i -l",
			},
			{
				Description: "Remove every exported connection",
				Command:     "aconnect -x",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("aconnect", &params)
		},
		Run: func(args []string) error {
			if params.Version {
				_, err := fmt.Fprintf(env.stdout, "aconnect %s\n", version.Full())
				return err
			}

			chosen, err := resolveAction(&params, args)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(params.Config)
			if err != nil {
				return err
			}
			logger := cli.NewCommandLogger(env.stderr, cfg.SlogLevel())

			sequencer, err := env.open(cfg.Device, logger)
			if err != nil {
				return fmt.Errorf("can't open sequencer: %w", err)
			}
			defer func() {
				if err := sequencer.Close(); err != nil {
					logger.Warn("closing sequencer", "error", err)
				}
			}()

			switch chosen {
			case actionList:
				return list(sequencer, &params, cfg, env.stdout)
			case actionRemoveAll:
				removed, err := connector.RemoveAll(sequencer, logger)
				if err != nil {
					return err
				}
				logger.Info("removed subscriptions", "count", removed)
				return nil
			default:
				return subscribe(sequencer, &params, chosen, cfg, logger, args[0], args[1])
			}
		},
	}
}

// resolveAction picks the action from the flags and checks that the
// flags and positional arguments fit it. Every error it returns is a
// usage error.
func resolveAction(params *aconnectParams, args []string) (action, error) {
	listing := params.Input || params.Output || params.All || params.List

	modes := 0
	for _, selected := range []bool{listing, params.RemoveAll, params.Disconnect} {
		if selected {
			modes++
		}
	}
	if modes > 1 {
		return 0, cli.Usagef("-d, -x, and the listing flags (-i, -o, -a, -l) cannot be combined")
	}
	if params.Real.set && params.Tick.set {
		return 0, cli.Usagef("-r and -t cannot be combined")
	}

	chosen := actionConnect
	switch {
	case listing:
		chosen = actionList
	case params.RemoveAll:
		chosen = actionRemoveAll
	case params.Disconnect:
		chosen = actionDisconnect
	}

	if params.OutputJSON && chosen != actionList {
		return 0, cli.Usagef("--json only applies to listing")
	}

	if chosen == actionList || chosen == actionRemoveAll {
		if params.Exclusive || params.Real.set || params.Tick.set {
			return 0, cli.Usagef("-e, -r, and -t only apply to connecting and disconnecting")
		}
		if len(args) > 0 {
			return 0, cli.Usagef("unexpected arguments %q", args)
		}
		return chosen, nil
	}

	if len(args) != 2 {
		return 0, cli.Usagef("expected sender and receiver addresses, got %d argument(s)", len(args))
	}
	return chosen, nil
}

func loadConfig(path string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func list(sequencer seq.Sequencer, params *aconnectParams, cfg *config.Config, stdout io.Writer) error {
	var filter connector.Filter
	if params.Input {
		filter |= connector.ListInput
	}
	if params.Output {
		filter |= connector.ListOutput
	}
	options := connector.ListOptions{
		SearchOptions: connector.SearchOptions{
			Filter:          filter,
			IncludeInactive: params.All,
		},
		Subscriptions: params.List,
	}

	if params.OutputJSON {
		entries, err := connector.Collect(sequencer, options)
		if err != nil {
			return err
		}
		_, err = params.EmitJSON(stdout, entries)
		return err
	}

	printer := connector.NewPrinter(stdout, connector.ColorMode(cfg.Color))
	return connector.List(sequencer, options, printer)
}

// subscribe performs a connect or disconnect between the ports named
// by senderText and destText.
func subscribe(sequencer seq.Sequencer, params *aconnectParams, chosen action, cfg *config.Config, logger *slog.Logger, senderText, destText string) error {
	client, err := sequencer.ClientID()
	if err != nil {
		return fmt.Errorf("can't get client id: %w", err)
	}
	if err := sequencer.SetClientName(cfg.ClientName); err != nil {
		return fmt.Errorf("can't set client info: %w", err)
	}

	sender, err := seq.ParseAddress(sequencer, senderText)
	if err != nil {
		logger.Debug("parsing sender address", "address", senderText, "error", seq.Describe(err))
		return fmt.Errorf("invalid sender address %s", senderText)
	}
	dest, err := seq.ParseAddress(sequencer, destText)
	if err != nil {
		logger.Debug("parsing destination address", "address", destText, "error", seq.Describe(err))
		return fmt.Errorf("invalid destination address %s", destText)
	}

	subscription := seq.Subscription{
		Sender:     sender,
		Dest:       dest,
		Exclusive:  params.Exclusive,
		TimeUpdate: params.Real.set || params.Tick.set,
		TimeReal:   params.Real.set,
	}
	switch {
	case params.Real.set:
		subscription.Queue = params.Real.queue
	case params.Tick.set:
		subscription.Queue = params.Tick.queue
	}

	logger = logger.With("client", client, "sender", sender.String(), "dest", dest.String())
	if chosen == actionDisconnect {
		if err := connector.Disconnect(sequencer, subscription); err != nil {
			return err
		}
		logger.Info("disconnected")
		return nil
	}

	if err := connector.Connect(sequencer, subscription); err != nil {
		return err
	}
	logger.Info("connected")
	return nil
}
