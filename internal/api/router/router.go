package router

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wolfman30/lalalu-site/internal/assets"
	httpmiddleware "github.com/wolfman30/lalalu-site/internal/http/middleware"
	"github.com/wolfman30/lalalu-site/internal/site"
	"github.com/wolfman30/lalalu-site/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	Site           *site.Server
	Media          http.Handler
	MetricsHandler http.Handler
	// StaticDir is served under assets.DefaultStaticPrefix when set.
	StaticDir string
	// CORS applies to /api only; it is skipped when no origins are listed.
	CORS httpmiddleware.CORSOptions

	SessionCookie string
	CookieSecure  bool

	RateLimitRPS   float64
	RateLimitBurst int
	// RateLimiter is created by New when nil and RateLimitRPS > 0. The
	// caller stops it on shutdown.
	RateLimiter *httpmiddleware.RateLimiter
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	if cfg.SessionCookie == "" {
		cfg.SessionCookie = "lalalu_session"
	}
	if cfg.RateLimiter == nil && cfg.RateLimitRPS > 0 {
		cfg.RateLimiter = httpmiddleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(httpmiddleware.Session(cfg.SessionCookie, cfg.CookieSecure))
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Operational endpoints
	r.Group(func(public chi.Router) {
		public.Get("/health", health)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
		if cfg.StaticDir != "" {
			prefix := assets.DefaultStaticPrefix
			public.Handle(prefix+"/*", http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.StaticDir))))
		}
		if cfg.Media != nil {
			public.Handle(assets.MediaPrefix+"/*", cfg.Media)
		}
	})

	// Pages and the JSON API
	r.Group(func(pages chi.Router) {
		if cfg.RateLimiter != nil {
			pages.Use(httpmiddleware.RateLimitWith(cfg.RateLimiter))
		}
		if len(cfg.CORS.Origins) > 0 {
			pages.Use(apiOnly(httpmiddleware.CORS(cfg.CORS)))
		}
		pages.Mount("/", cfg.Site.Routes())
	})

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// apiOnly applies mw to /api requests and passes everything else through.
func apiOnly(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		wrapped := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
				wrapped.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
