package preview

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/timsite/tim/internal/metrics"
)

const noCache = "no-cache, must-revalidate"

// newHandler serves outputDir with caching disabled, since every rebuild
// replaces the files, plus /metrics when reg is set.
func newHandler(outputDir string, reg *prom.Registry) http.Handler {
	mux := http.NewServeMux()
	if reg != nil {
		mux.Handle("/metrics", metrics.HTTPHandler(reg))
	}
	mux.Handle("/", addCacheControlHeaders(http.FileServer(http.Dir(outputDir))))
	return mux
}

func addCacheControlHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", noCache)
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}
