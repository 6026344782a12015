package assets

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/wolfman30/lalalu-site/internal/observability/metrics"
	"github.com/wolfman30/lalalu-site/pkg/logging"
)

// MediaHandler serves GET /media/* from the media bucket when one is
// configured, and from a local directory otherwise.
type MediaHandler struct {
	store   *MediaStore
	local   http.Handler
	metrics *metrics.SiteMetrics
	logger  *logging.Logger
}

// NewMediaHandler builds the handler. localDir may be empty when store is enabled.
func NewMediaHandler(store *MediaStore, localDir string, m *metrics.SiteMetrics, logger *logging.Logger) *MediaHandler {
	if logger == nil {
		logger = logging.Default()
	}
	h := &MediaHandler{store: store, metrics: m, logger: logger}
	if localDir != "" {
		h.local = http.FileServer(http.Dir(localDir))
	}
	return h
}

func (h *MediaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key, ok := CleanKey(strings.TrimPrefix(r.URL.Path, MediaPrefix+"/"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	if !h.store.Enabled() {
		h.serveLocal(w, r, key)
		return
	}

	obj, err := h.store.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.metrics.ObserveMediaFetch("s3", "miss")
			http.NotFound(w, r)
			return
		}
		h.metrics.ObserveMediaFetch("s3", "error")
		h.logger.Error("media fetch failed", "key", key, "error", err)
		http.Error(w, "media unavailable", http.StatusBadGateway)
		return
	}
	defer obj.Body.Close()

	h.metrics.ObserveMediaFetch("s3", "hit")
	if obj.ContentType != "" {
		w.Header().Set("Content-Type", obj.ContentType)
	}
	if obj.ContentLength > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(obj.ContentLength, 10))
	}
	if obj.ETag != "" {
		w.Header().Set("ETag", obj.ETag)
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, obj.Body); err != nil {
		h.logger.Warn("media stream interrupted", "key", key, "error", err)
	}
}

func (h *MediaHandler) serveLocal(w http.ResponseWriter, r *http.Request, key string) {
	if h.local == nil {
		h.metrics.ObserveMediaFetch("local", "miss")
		http.NotFound(w, r)
		return
	}
	h.metrics.ObserveMediaFetch("local", "hit")
	r2 := r.Clone(r.Context())
	r2.URL.Path = "/" + key
	r2.URL.RawPath = ""
	h.local.ServeHTTP(w, r2)
}
