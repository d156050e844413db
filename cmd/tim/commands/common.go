package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/timsite/tim/internal/config"
	"github.com/timsite/tim/internal/console"
	"github.com/timsite/tim/internal/site"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"tim.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	New     NewCmd     `cmd:"" help:"Create a site folder from the example site"`
	Build   BuildCmd   `cmd:"" help:"Build a site into its output folder"`
	Clean   CleanCmd   `cmd:"" help:"Empty the output folder of a site"`
	Info    InfoCmd    `cmd:"" help:"Show what a site folder holds"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a whole site folder"`
	Pack    PackCmd    `cmd:"" help:"Collapse whitespace in built files to reduce their size"`
	Preview PreviewCmd `cmd:"" help:"Serve a site and rebuild it on every change"`
	Todo    TodoCmd    `cmd:"" help:"Print the list of open items"`

	settings *config.Config
}

// AfterApply runs after flag parsing; it loads the tool configuration and
// sets up logging once.
func (c *CLI) AfterApply() error {
	// Log config loading problems at the level the flags and environment ask for.
	slog.SetDefault(newLogger(parseLogLevel(c.Verbose, "")))

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.settings = cfg
	slog.SetDefault(newLogger(parseLogLevel(c.Verbose, cfg.LogLevel)))
	return nil
}

// Settings returns the loaded tool configuration, or the defaults before
// AfterApply ran.
func (c *CLI) Settings() *config.Config {
	if c.settings == nil {
		return config.Default()
	}
	return c.settings
}

// site resolves the named site under the configured sites directory.
func (c *CLI) site(name string) (*site.Site, error) {
	return site.New(c.Settings().SitesDir, name)
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// parseLogLevel resolves the log level: --verbose wins, then TIM_LOG_LEVEL,
// then the config file, then info.
func parseLogLevel(verbose bool, configured config.LogLevel) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	if env := os.Getenv("TIM_LOG_LEVEL"); env != "" {
		return config.NormalizeLogLevel(env).SlogLevel()
	}
	if configured != "" {
		return configured.SlogLevel()
	}
	return slog.LevelInfo
}

// report prints the task outcome line and passes err through.
func report(err error, success, failure string) error {
	if err != nil {
		console.Failure("%s", failure)
		return err
	}
	console.Success("%s", success)
	return nil
}
