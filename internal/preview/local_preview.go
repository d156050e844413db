package preview

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/timsite/tim/internal/build"
	"github.com/timsite/tim/internal/console"
	"github.com/timsite/tim/internal/logfields"
	"github.com/timsite/tim/internal/site"
)

const shutdownTimeout = 5 * time.Second

// Options configures a preview server.
type Options struct {
	SitesDir string
	Name     string
	// Addr is the listen address, e.g. "localhost:1316". Port 0 picks a free port.
	Addr string
	// Debounce is how long the sources must stay quiet before a rebuild starts.
	Debounce time.Duration
	// Service runs the builds. Defaults to build.NewBuildService().
	Service build.BuildService
	// Registry, when set, is served under /metrics.
	Registry *prom.Registry
}

// Server is a running preview of one site.
type Server struct {
	opts  Options
	site  *site.Site
	ready chan struct{}
	addr  string
}

// New validates opts and resolves the site. Nothing is started until Run.
func New(opts Options) (*Server, error) {
	s, err := site.New(opts.SitesDir, opts.Name)
	if err != nil {
		return nil, err
	}
	if opts.Service == nil {
		opts.Service = build.NewBuildService()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 300 * time.Millisecond
	}
	return &Server{opts: opts, site: s, ready: make(chan struct{})}, nil
}

// Ready is closed once the HTTP listener is bound and the watcher is running.
func (p *Server) Ready() <-chan struct{} { return p.ready }

// Addr returns the bound listen address. Valid after Ready.
func (p *Server) Addr() string { return p.addr }

// Run performs an initial build, serves the output directory and rebuilds on
// every debounced change below the site directory until ctx is done. The
// output directory itself is not watched.
func (p *Server) Run(ctx context.Context) error {
	p.rebuild(ctx)

	ln, err := net.Listen("tcp", p.opts.Addr)
	if err != nil {
		return fmt.Errorf("preview listen on %s: %w", p.opts.Addr, err)
	}
	p.addr = ln.Addr().String()
	httpServer := &http.Server{
		Handler:           newHandler(p.site.OutputDir, p.opts.Registry),
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	watcher, err := setupFileWatcher(p.site.Directory, p.site.OutputDir)
	if err != nil {
		_ = httpServer.Close()
		return err
	}
	defer func() { _ = watcher.Close() }()

	rebuildReq, trigger := setupRebuildDebouncer(p.opts.Debounce)
	var wg sync.WaitGroup
	startRebuildWorker(ctx, &wg, rebuildReq, p.rebuild)

	slog.Info("Preview server listening", logfields.Site(p.site.Name), slog.String("url", "http://"+p.addr))
	console.Line("Serving %s at http://%s", p.site.Name, p.addr)
	close(p.ready)

	loopErr := runPreviewLoop(ctx, watcher, p.site.OutputDir, trigger, serveErr)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", logfields.Error(err))
	}
	wg.Wait()
	return loopErr
}

// rebuild runs one full build and reports the outcome.
func (p *Server) rebuild(ctx context.Context) {
	res, err := p.opts.Service.Run(ctx, build.BuildRequest{SitesDir: p.opts.SitesDir, Name: p.opts.Name})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		slog.Warn("Rebuild failed", logfields.Site(p.site.Name), logfields.Error(err))
		console.Failure("%s was NOT built successfully", p.site.Name)
		return
	}
	console.Success("%s was built successfully (%d pages)", p.site.Name, res.Pages)
}

// setupRebuildDebouncer creates the rebuild channel and a trigger that sends
// on it once the triggers stop for the debounce period.
func setupRebuildDebouncer(debounce time.Duration) (chan struct{}, func()) {
	var mu sync.Mutex
	var timer *time.Timer
	rebuildReq := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, func() {
			select {
			case rebuildReq <- struct{}{}:
			default:
			}
		})
	}
	return rebuildReq, trigger
}

// startRebuildWorker processes rebuild requests one at a time. A request that
// arrives during a rebuild waits in the channel buffer, so bursts collapse
// into a single follow-up build.
func startRebuildWorker(ctx context.Context, wg *sync.WaitGroup, rebuildReq <-chan struct{}, rebuild func(context.Context)) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-rebuildReq:
				slog.Info("Change detected; rebuilding site")
				rebuild(ctx)
			}
		}
	}()
}
