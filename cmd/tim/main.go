package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/timsite/tim/cmd/tim/commands"
	"github.com/timsite/tim/internal/errors"
	"github.com/timsite/tim/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Must(cli,
		kong.Name("tim"),
		kong.Description(version.Name+": renders static sites from a base template and a tree of content files."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		// Config failures surface from the AfterApply hook as classified errors.
		if errors.IsClassified(err) {
			errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
		}
		parser.FatalIfErrorf(err)
	}

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}, cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
