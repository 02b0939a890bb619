// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// Command is a single CLI command.
type Command struct {
	// Name is the program name shown in help output.
	Name string

	// Summary is a one-line description, used when Description is empty.
	Summary string

	// Description is a detailed multi-line description shown in help.
	Description string

	// Usage holds the usage lines (e.g., "aconnect [flags] sender receiver").
	// If empty, "<name> [flags]" is used.
	Usage []string

	// Examples are shown in the help output after the flags.
	Examples []Example

	// Flags returns a configured *pflag.FlagSet for this command. It is
	// called once for parsing and again for each help rendering, so it
	// must return a fresh FlagSet bound to the same targets each time.
	// If nil, the command accepts no flags.
	Flags func() *pflag.FlagSet

	// Run executes the command with the positional args left after flag
	// parsing.
	Run func(args []string) error

	// Stderr receives help text and usage errors. Defaults to os.Stderr.
	Stderr io.Writer
}

// Example is a usage example shown in help output.
type Example struct {
	// Description explains what the example does.
	Description string
	// Command is the literal command line.
	Command string
}

// UsageError reports a command line the command cannot act on. Execute
// prints it together with the help text.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// Usagef returns a *UsageError with a formatted message.
func Usagef(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// Execute parses args and runs the command.
func (c *Command) Execute(args []string) error {
	if c.Flags != nil {
		flagSet := c.Flags()

		// pflag's own error output and usage dump are replaced by ours.
		flagSet.SetOutput(io.Discard)
		flagSet.Usage = func() {}

		if err := flagSet.Parse(args); err != nil {
			if errors.Is(err, pflag.ErrHelp) {
				c.PrintHelp(c.stderr())
				return nil
			}

			message := err.Error()
			if strings.HasPrefix(message, "unknown flag") {
				if suggestion := suggestFlag(args, c.Flags()); suggestion != "" {
					message = fmt.Sprintf("%s (did you mean %s?)", message, suggestion)
				}
			}
			return c.usageFailure(message)
		}
		args = flagSet.Args()
	}

	if c.Run == nil {
		c.PrintHelp(c.stderr())
		return fmt.Errorf("no action defined for %q", c.Name)
	}

	err := c.Run(args)
	var usage *UsageError
	if errors.As(err, &usage) {
		return c.usageFailure(usage.Message)
	}
	return err
}

// usageFailure prints message and the help text, then returns the exit
// status for a usage error.
func (c *Command) usageFailure(message string) error {
	stderr := c.stderr()
	fmt.Fprintf(stderr, "error: %s\n\n", message)
	c.PrintHelp(stderr)
	return &ExitError{Code: 1}
}

// PrintHelp writes structured help output to w.
func (c *Command) PrintHelp(w io.Writer) {
	if c.Description != "" {
		fmt.Fprintf(w, "%s\n\n", c.Description)
	} else if c.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	fmt.Fprintf(w, "Usage:\n")
	if len(c.Usage) == 0 {
		fmt.Fprintf(w, "  %s [flags]\n", c.Name)
	}
	for _, line := range c.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}

	if c.Flags != nil {
		flagSet := c.Flags()
		var flagHelp strings.Builder
		flagSet.SetOutput(&flagHelp)
		flagSet.PrintDefaults()
		if flagHelp.Len() > 0 {
			fmt.Fprintf(w, "\nFlags:\n%s", flagHelp.String())
		}
	}

	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", example.Command)
			if example.Description != "" {
				fmt.Fprintln(w)
			}
		}
	}
}

func (c *Command) stderr() io.Writer {
	if c.Stderr != nil {
		return c.Stderr
	}
	return os.Stderr
}
