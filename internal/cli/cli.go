// Package cli implements the tspanneal command-line interface.
//
// The CLI loads or generates a planar point set, anneals it with the tsp
// package and reports the shortest closed tour found. It is built on cobra
// and logs through charmbracelet/log.
//
// # Commands
//
//   - solve: anneal a point set and report the best tour
//   - points: generate a point file for later runs
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs every sweep. Loggers travel in context.Context so observers running
// inside the annealing loop can reach them.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the binary name used for display.
	appName = "tspanneal"

	// defaultEvery is the default number of sweeps between progress lines.
	defaultEvery = 100

	// defaultSide is the default width and height of generated point sets.
	defaultSide = 100.0
)

// Log levels accepted by New and SetLogLevel.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Values are usually injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Its PersistentPreRunE applies --verbose and attaches the CLI logger to the
// command context.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "tspanneal finds short round trips through planar points",
		Long: `tspanneal approximates the Euclidean travelling salesman problem with
simulated annealing over 2-opt moves. It reads or generates a point set,
anneals until the best tour stops improving and reports the result.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging, one line per sweep")
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.pointsCommand())

	return root
}
