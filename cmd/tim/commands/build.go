package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/timsite/tim/internal/build"
	"github.com/timsite/tim/internal/console"
	"github.com/timsite/tim/internal/logfields"
	"github.com/timsite/tim/internal/metrics"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Site            string `arg:"" help:"Name of the site to build"`
	MetricsTextfile string `name:"metrics-textfile" help:"Write build metrics to this file in Prometheus text format (overrides metrics.textfile)." type:"path"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	textfile := b.MetricsTextfile
	if textfile == "" {
		textfile = root.Settings().Metrics.Textfile
	}
	return RunBuild(ctx, g, root.Settings().SitesDir, b.Site, textfile)
}

// RunBuild builds one site and reports the outcome. When textfile is set the
// build's metrics are written there, whatever the outcome.
func RunBuild(ctx context.Context, g *Global, sitesDir, name, textfile string) error {
	svc := build.NewBuildService()
	if g != nil && g.Logger != nil {
		svc.WithLogger(g.Logger)
	}
	var reg *prom.Registry
	if textfile != "" {
		reg = prom.NewRegistry()
		svc.WithRecorder(metrics.NewPrometheusRecorder(reg))
	}

	result, err := svc.Run(ctx, build.BuildRequest{SitesDir: sitesDir, Name: name})
	if err == nil {
		console.Line("Generated %d pages, omitted %d files in %s", result.Pages, result.FilesOmitted, result.Duration.Round(time.Millisecond))
	}

	if reg != nil {
		if werr := metrics.WriteTextfile(reg, textfile); werr != nil {
			slog.Warn("Metrics were NOT written", logfields.Path(textfile), logfields.Error(werr))
		}
	}
	return report(err, name+" was built successfully", fmt.Sprintf("%s was NOT built successfully", name))
}
