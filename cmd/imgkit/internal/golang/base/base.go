// Package base defines shared basic pieces of the imgkit command, in
// particular the Command structure and exit status handling.
//
// Modelled after cmd/go/internal/base.
package base

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rusq/imgkit/cmd/imgkit/internal/cfg"
)

// A Command is an implementation of an imgkit command like imgkit move or
// imgkit icons.
type Command struct {
	// Run runs the command.
	// The args are the arguments after the command name.
	Run func(ctx context.Context, cmd *Command, args []string) error

	// UsageLine is the one-line usage message.
	// The words between "imgkit" and the first flag or argument in the line
	// are taken to be the command name.
	UsageLine string

	// Short is the short description shown in the 'imgkit help' output.
	Short string

	// Long is the long message shown in the 'imgkit help <this-command>'
	// output.
	Long string

	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet

	// FlagMask is a set of global flags that are omitted for the command.
	FlagMask cfg.FlagMask

	// PrintFlags tells help to print the flag defaults.
	PrintFlags bool

	// CustomFlags indicates that the command will do its own flag parsing.
	CustomFlags bool

	// Commands lists the available commands and help topics.  The order
	// here is the order in which they are printed by 'imgkit help'.
	Commands []*Command
}

// ImgkitCommand is the root command.
var ImgkitCommand = &Command{
	UsageLine: "imgkit",
	Long:      `Imgkit is a set of tools to batch process image files.`,
	// Commands initialised in package main
}

// CmdName is the name of the command being run, i.e. "move".
var CmdName string

// LongName returns the command's long name: all the words in the usage line
// between "imgkit" and a flag or argument.
func (c *Command) LongName() string {
	name := c.UsageLine
	if i := strings.Index(name, " ["); i >= 0 {
		name = name[:i]
	}
	if i := strings.Index(name, " <"); i >= 0 {
		name = name[:i]
	}
	if name == "imgkit" {
		return ""
	}
	return strings.TrimPrefix(name, "imgkit ")
}

// Name returns the command's short name: the last word in the usage line
// before a flag or argument.
func (c *Command) Name() string {
	name := c.LongName()
	if i := strings.LastIndex(name, " "); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func (c *Command) Usage() {
	fmt.Fprintf(os.Stderr, "usage: %s\n", c.UsageLine)
	fmt.Fprintf(os.Stderr, "Run 'imgkit help %s' for details.\n", c.LongName())
	SetExitStatus(SInvalidParameters)
	Exit()
}

// Runnable reports whether the command can be run; otherwise it is a
// documentation pseudo-command.
func (c *Command) Runnable() bool {
	return c.Run != nil
}

// Usage is the usage-reporting function, filled in by package main but here
// for reference by other packages.
var Usage func()
