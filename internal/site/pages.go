package site

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/wolfman30/lalalu-site/internal/catalog"
	"github.com/wolfman30/lalalu-site/internal/detail"
	"github.com/wolfman30/lalalu-site/internal/gallery"
	"github.com/wolfman30/lalalu-site/internal/listing"
	"github.com/wolfman30/lalalu-site/internal/seo"
)

// card is a service tile on the listing and concern pages.
type card struct {
	Service catalog.Service
	Price   string
	Was     string
	Pill    *catalog.Badge
}

func newCard(s catalog.Service) card {
	c := card{Service: s}
	if s.HasTiers() {
		c.Price = "From $" + strconv.Itoa(s.LowestPrice())
	} else {
		c.Price = "$" + s.Price.String()
		if s.Discounted() {
			c.Was = "$" + strconv.Itoa(*s.OriginalPrice)
		}
	}
	if b, ok := s.Pill(); ok {
		c.Pill = &b
	}
	return c
}

func cards(services []catalog.Service) []card {
	out := make([]card, 0, len(services))
	for _, s := range services {
		out = append(out, newCard(s))
	}
	return out
}

type review struct {
	Name      string
	Rating    int
	Excerpt   string
	Full      string
	Truncated bool
}

type homeBody struct {
	Features        []catalog.Feature
	Reviews         []review
	Concerns        []catalog.Concern
	RevealThreshold float64
}

// Home renders the landing page.
// GET /
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	r, span := s.startSpan(r, "site.home")
	defer span.End()

	testimonials := catalog.Testimonials()
	reviews := make([]review, 0, len(testimonials))
	for _, t := range testimonials {
		excerpt, cut := t.Excerpt(catalog.ReadMoreLimit)
		reviews = append(reviews, review{Name: t.Name, Rating: t.Rating, Excerpt: excerpt, Full: t.Text, Truncated: cut})
	}

	body := homeBody{
		Features:        catalog.HomeFeatures(),
		Reviews:         reviews,
		Concerns:        s.catalog.Concerns(),
		RevealThreshold: gallery.RevealThreshold,
	}
	s.render(w, r, http.StatusOK, "home.html", s.newPage(w, r, s.seo.Home(), body))
}

type servicesBody struct {
	View    listing.View
	Normal  []card
	Special []card
}

// Services renders the filterable listing.
// GET /services?q=&category=
func (s *Server) Services(w http.ResponseWriter, r *http.Request) {
	r, span := s.startSpan(r, "site.services")
	defer span.End()

	q := r.URL.Query()
	view := listing.Build(s.catalog.All(), q.Get("q"), q.Get("category"))
	span.SetAttributes(
		attribute.String("listing.category", string(view.Category)),
		attribute.Int("listing.count", view.Count()),
	)
	if view.Invalid != "" {
		s.logger.Debug("unknown category requested", "category", view.Invalid)
	}
	s.metrics.ObserveFilter(string(view.Category), view.Query != "")

	body := servicesBody{View: view, Normal: cards(view.Normal), Special: cards(view.Special)}
	s.render(w, r, http.StatusOK, "services.html", s.newPage(w, r, s.seo.Services(s.catalog.All()), body))
}

// ServiceDetail renders one service with pricing, aftercare and gallery.
// GET /services/{id}?media=N
func (s *Server) ServiceDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	r, span := s.startSpan(r, "site.service_detail", attribute.String("service.id", id))
	defer span.End()

	svc, err := s.catalog.Find(id)
	if err != nil {
		s.metrics.ObserveNotFound("service")
		s.notFound(w, r, notFoundBody{Message: "Service not found.", Back: "Back to services", BackURL: "/services"})
		return
	}

	view, err := s.details.Build(svc.ID, detail.ParseMediaIndex(r.URL.Query().Get("media"), len(svc.Media)))
	if err != nil {
		span.RecordError(err)
		s.logger.Error("detail build failed", "service_id", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	s.render(w, r, http.StatusOK, "service.html", s.newPage(w, r, view.Meta, view))
}

type concernBody struct {
	Concern  catalog.Concern
	Services []card
}

// Concern renders a skin concern with its recommended services.
// GET /concerns/{slug}
func (s *Server) Concern(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	r, span := s.startSpan(r, "site.concern", attribute.String("concern.slug", slug))
	defer span.End()

	cn, err := s.catalog.Concern(slug)
	if err != nil {
		s.metrics.ObserveNotFound("concern")
		s.notFound(w, r, notFoundBody{Message: "Concern not found.", Back: "Back to home", BackURL: "/"})
		return
	}
	body := concernBody{Concern: cn, Services: cards(s.catalog.Recommended(cn))}
	s.render(w, r, http.StatusOK, "concern.html", s.newPage(w, r, s.seo.Concern(cn), body))
}

type lightboxView struct {
	Current  catalog.Media
	Index    int
	Len      int
	Next     int
	Previous int
}

type productsBody struct {
	Content  catalog.ProductsContent
	Slides   *gallery.Carousel
	Autoplay time.Duration
	Lightbox *lightboxView

	RevealThreshold   float64
	PlaybackThreshold float64
}

// Products renders the Circadia page. slide positions the transformation
// carousel and lightbox opens the ambient strip at that item.
// GET /products?slide=N&lightbox=N
func (s *Server) Products(w http.ResponseWriter, r *http.Request) {
	r, span := s.startSpan(r, "site.products")
	defer span.End()

	content := catalog.Products()
	q := r.URL.Query()
	body := productsBody{
		Content:           content,
		Autoplay:          time.Duration(content.AutoplayMillis) * time.Millisecond,
		RevealThreshold:   gallery.RevealThreshold,
		PlaybackThreshold: gallery.PlaybackThreshold,
	}

	if slides, err := gallery.New(content.Transformations); err == nil {
		slides.JumpTo(detail.ParseMediaIndex(q.Get("slide"), slides.Len()))
		body.Slides = slides
	}

	if raw := q.Get("lightbox"); raw != "" {
		if lb, err := gallery.NewLightbox(content.AmbientStrip, gallery.NewKeymap()); err == nil {
			lb.Open(detail.ParseMediaIndex(raw, lb.Len()))
			i, n := lb.Index(), lb.Len()
			body.Lightbox = &lightboxView{
				Current:  lb.Current(),
				Index:    i,
				Len:      n,
				Next:     (i + 1) % n,
				Previous: (i - 1 + n) % n,
			}
		}
	}

	s.render(w, r, http.StatusOK, "products.html", s.newPage(w, r, s.seo.Products(), body))
}

type aboutBody struct {
	Values []catalog.Feature
}

// About renders the about page.
// GET /about
func (s *Server) About(w http.ResponseWriter, r *http.Request) {
	r, span := s.startSpan(r, "site.about")
	defer span.End()
	s.render(w, r, http.StatusOK, "about.html", s.newPage(w, r, s.seo.About(), aboutBody{Values: catalog.AboutValues()}))
}

// Book sends visitors to the external booking page, or shows the clinic's
// contact details when no booking link is configured.
// GET /book
func (s *Server) Book(w http.ResponseWriter, r *http.Request) {
	if s.bookingURL != "" {
		http.Redirect(w, r, s.bookingURL, http.StatusFound)
		return
	}
	meta := s.seo.NotFound(r.URL.Path)
	meta.Title = "Book | " + seo.SiteName
	s.render(w, r, http.StatusOK, "book.html", s.newPage(w, r, meta, nil))
}
