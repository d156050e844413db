package commands

import (
	"context"
	"net"
	"os/signal"
	"strconv"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/timsite/tim/internal/build"
	"github.com/timsite/tim/internal/metrics"
	"github.com/timsite/tim/internal/preview"
)

// PreviewCmd serves a site locally and rebuilds it when its sources change.
type PreviewCmd struct {
	Site string `arg:"" help:"Name of the site to preview"`
	Host string `name:"host" default:"localhost" help:"Interface to listen on."`
	Port int    `name:"port" help:"Port to listen on (overrides preview.port)."`
}

func (p *PreviewCmd) Run(g *Global, root *CLI) error {
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := root.Settings()
	port := p.Port
	if port == 0 {
		port = cfg.Preview.Port
	}

	reg := prom.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	svc := build.NewBuildService().WithRecorder(metrics.NewPrometheusRecorder(reg))
	if g != nil && g.Logger != nil {
		svc.WithLogger(g.Logger)
	}

	srv, err := preview.New(preview.Options{
		SitesDir: cfg.SitesDir,
		Name:     p.Site,
		Addr:     net.JoinHostPort(p.Host, strconv.Itoa(port)),
		Debounce: cfg.Preview.Debounce,
		Service:  svc,
		Registry: reg,
	})
	if err != nil {
		return err
	}
	return srv.Run(sigctx)
}
