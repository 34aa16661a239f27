package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// logLevel is shared by the default handler so commands can raise or lower
// verbosity after the configuration file has been read.
var logLevel = new(slog.LevelVar)

// CLI definition & global flags. Running the binary with no arguments builds
// the site using ./blogbuilder.yaml if present and defaults otherwise.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (optional)" default:"blogbuilder.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" default:"1" help:"Build the site from the posts directory (default)"`
	Init  InitCmd  `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logLevel.Set(slog.LevelInfo)
	if c.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
	return nil
}

// applyConfiguredLevel honours log_level from the configuration file unless
// --verbose already forced debug output.
func applyConfiguredLevel(root *CLI, cfg *config.Config) {
	if root.Verbose {
		return
	}
	logLevel.Set(cfg.LogLevel.SlogLevel())
}
