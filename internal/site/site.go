// Package site serves the public pages and the read-only JSON API.
package site

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/wolfman30/lalalu-site/internal/aftercare"
	"github.com/wolfman30/lalalu-site/internal/assets"
	"github.com/wolfman30/lalalu-site/internal/catalog"
	"github.com/wolfman30/lalalu-site/internal/detail"
	"github.com/wolfman30/lalalu-site/internal/observability/metrics"
	"github.com/wolfman30/lalalu-site/internal/promo"
	"github.com/wolfman30/lalalu-site/internal/seo"
	"github.com/wolfman30/lalalu-site/pkg/logging"
)

var tracer = otel.Tracer("lalalu.internal.site")

// Config wires the site to its content tables and collaborators. Zero
// fields fall back to the authored defaults.
type Config struct {
	Catalog   *catalog.Catalog
	Aftercare *aftercare.Table
	SEO       seo.Builder
	Assets    assets.Resolver
	Campaign  promo.Campaign
	// Stores picks the promo marker store for a request.
	Stores StoreFunc
	// BookingURL is the external booking link. Empty renders the contact page.
	BookingURL string
	Metrics    *metrics.SiteMetrics
	Logger     *logging.Logger
	Now        func() time.Time
}

// Server renders the site.
type Server struct {
	catalog    *catalog.Catalog
	details    detail.Builder
	seo        seo.Builder
	campaign   promo.Campaign
	stores     StoreFunc
	bookingURL string
	metrics    *metrics.SiteMetrics
	logger     *logging.Logger
	now        func() time.Time
	pages      *renderer
}

// New parses the page templates and returns a ready server.
func New(cfg Config) (*Server, error) {
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	if cfg.Aftercare == nil {
		cfg.Aftercare = aftercare.Default()
	}
	if cfg.SEO == (seo.Builder{}) {
		cfg.SEO = seo.NewBuilder("")
	}
	if cfg.Assets == (assets.Resolver{}) {
		cfg.Assets = assets.NewResolver(assets.DefaultStaticPrefix, "")
	}
	if cfg.Campaign.Key == "" {
		cfg.Campaign = promo.NewYear2026(time.UTC)
	}
	if cfg.Stores == nil {
		cfg.Stores = CookieStores(false)
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	pages, err := newRenderer(cfg.Assets)
	if err != nil {
		return nil, err
	}

	return &Server{
		catalog:    cfg.Catalog,
		details:    detail.Builder{Catalog: cfg.Catalog, Aftercare: cfg.Aftercare, SEO: cfg.SEO},
		seo:        cfg.SEO,
		campaign:   cfg.Campaign,
		stores:     cfg.Stores,
		bookingURL: cfg.BookingURL,
		metrics:    cfg.Metrics,
		logger:     cfg.Logger,
		now:        cfg.Now,
		pages:      pages,
	}, nil
}

// Routes returns the page and API routes. The router is expected to run the
// session middleware in front of it.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.Home)
	r.Get("/services", s.Services)
	r.Get("/services/{id}", s.ServiceDetail)
	r.Get("/concerns/{slug}", s.Concern)
	r.Get("/products", s.Products)
	r.Get("/about", s.About)
	r.Get("/book", s.Book)
	r.Post("/promo/dismiss", s.DismissPromo)

	r.Route("/api", func(api chi.Router) {
		api.Get("/services", s.APIServices)
		api.Get("/services/{id}", s.APIService)
		api.Get("/concerns", s.APIConcerns)
		api.Get("/concerns/{slug}", s.APIConcern)
		api.Get("/promo", s.APIPromo)
		api.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeAPIError(w, r, http.StatusNotFound, "not found")
		})
	})

	r.NotFound(s.NotFound)
	return r
}

// page is the data every template receives.
type page struct {
	Meta       seo.Meta
	Path       string
	Clinic     catalog.Clinic
	Offers     []catalog.Offer
	Promo      *promoView
	BookingURL string
	Body       any
}

func (s *Server) newPage(w http.ResponseWriter, r *http.Request, meta seo.Meta, body any) page {
	return page{
		Meta:       meta,
		Path:       r.URL.Path,
		Clinic:     catalog.ClinicInfo(),
		Offers:     catalog.StandingOffers(),
		Promo:      s.mountPromo(w, r),
		BookingURL: seo.BookingPath,
		Body:       body,
	}
}

// render executes a page into a buffer so template errors become clean 500s.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, p page) {
	start := s.now()
	var buf bytes.Buffer
	if err := s.pages.execute(&buf, name, p); err != nil {
		trace.SpanFromContext(r.Context()).RecordError(err)
		s.logger.Error("page render failed", "page", name, "error", err)
		s.metrics.ObservePage(name, http.StatusInternalServerError)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn("page write interrupted", "page", name, "error", err)
	}
	s.metrics.ObservePage(name, status)
	s.metrics.ObservePageLatency(name, s.now().Sub(start).Seconds())
}

type notFoundBody struct {
	Message string
	Back    string
	BackURL string
}

// NotFound renders the generic not-found page.
func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	s.metrics.ObserveNotFound("page")
	s.notFound(w, r, notFoundBody{Message: "Page not found.", Back: "Back to home", BackURL: "/"})
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request, body notFoundBody) {
	s.render(w, r, http.StatusNotFound, "notfound.html", s.newPage(w, r, s.seo.NotFound(r.URL.Path), body))
}

func (s *Server) startSpan(r *http.Request, name string, attrs ...attribute.KeyValue) (*http.Request, trace.Span) {
	ctx, span := tracer.Start(r.Context(), name, trace.WithAttributes(attrs...))
	return r.WithContext(ctx), span
}
