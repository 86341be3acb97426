// Package cli implements the wallcalc command-line interface.
//
// The CLI is built using cobra and logs through charmbracelet/log. Data files
// (config, roll catalog, room templates) live in the directory named by
// WALLCALC_HOME, ~/.wallcalc by default, or by the --home flag.
//
// # Commands
//
//   - calc: Compute strips and rolls for a room
//   - catalog: List, add, remove and import roll presets
//   - template: Save rooms for reuse
//   - config: Show or initialise application defaults
//   - backup: Export and import all data in one file
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/WallCalc/internal/project"
)

const appName = "wallcalc"

// recentLimit caps the recent projects list in the config.
const recentLimit = 10

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer
	Env    project.Env
}

// New creates a CLI that prints results to out and logs to logw.
// The log level comes from the environment unless overridden later.
func New(out, logw io.Writer, env project.Env) *CLI {
	return &CLI{
		Logger: newLogger(logw, parseLevel(env.LogLevel)),
		Out:    out,
		Env:    env,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Paths returns the data file locations for the current home directory.
func (c *CLI) Paths() project.Paths {
	return c.Env.Paths()
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose bool
		home    string
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "WallCalc works out how many wallpaper rolls a room needs",
		Long:          `WallCalc computes strips per roll, strips needed, rolls to buy and waste for a room, taking pattern repeat, windows and doors into account.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			if home != "" {
				c.Env.Home = home
			}
			c.Logger.Debug("using data directory", "dir", c.Env.Home)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetOut(c.Out)
	root.SetVersionTemplate("wallcalc " + version + "\ncommit: " + commit + "\nbuilt: " + date + "\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&home, "home", "", "data directory (default $WALLCALC_HOME or ~/.wallcalc)")

	root.AddCommand(c.calcCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.templateCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.backupCommand())

	return root
}

// Execute runs the command tree with the given arguments.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// parseLevel maps WALLCALC_LOG_LEVEL to a log level, defaulting to info.
func parseLevel(s string) log.Level {
	if s == "" {
		return log.InfoLevel
	}
	level, err := log.ParseLevel(strings.ToLower(s))
	if err != nil {
		return log.InfoLevel
	}
	return level
}
