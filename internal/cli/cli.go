// Package cli implements the bimatch command-line interface.
//
// # Commands
//
//   - enumerate: list every maximum matching of a graph file
//   - count: count them without keeping them
//   - check: validate a graph file and, optionally, a proposed maximum matching
//
// Graph files are TOML or JSON (see package graphio). All commands accept
// --verbose (-v) for debug logging; the logger travels in the command context.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "bimatch"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// ErrInvalidFlag is returned for flag values the commands cannot use.
var ErrInvalidFlag = errors.New("cli: invalid flag value")

var (
	version = "dev" // semantic version, set with SetVersion
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "bimatch enumerates the maximum matchings of bipartite graphs",
		Long: `bimatch reads a bipartite graph from a TOML or JSON file and lists, counts
or checks its maximum matchings. Every maximum matching is reported exactly once.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.enumerateCommand())
	root.AddCommand(c.countCommand())
	root.AddCommand(c.checkCommand())

	return root
}
