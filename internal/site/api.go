package site

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/wolfman30/lalalu-site/internal/aftercare"
	"github.com/wolfman30/lalalu-site/internal/catalog"
	"github.com/wolfman30/lalalu-site/internal/detail"
	"github.com/wolfman30/lalalu-site/internal/listing"
)

type apiError struct {
	Error string `json:"error"`
}

func writeAPIError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, apiError{Error: msg})
}

type servicesResponse struct {
	Query    string            `json:"query"`
	Category catalog.Category  `json:"category"`
	Count    int               `json:"count"`
	Services []catalog.Service `json:"services"`
	Special  []catalog.Service `json:"special"`
}

// APIServices returns the filtered service list. Unknown categories are
// rejected rather than widened to all.
// GET /api/services?q=&category=
func (s *Server) APIServices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category, err := listing.ParseCategory(q.Get("category"))
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	query := q.Get("q")
	s.metrics.ObserveFilter(string(category), query != "")

	normal, special := listing.Partition(listing.Filter(s.catalog.All(), query, category), listing.DefaultSpecialIDs)
	render.JSON(w, r, servicesResponse{
		Query:    query,
		Category: category,
		Count:    len(normal) + len(special),
		Services: normal,
		Special:  special,
	})
}

type serviceResponse struct {
	Service   catalog.Service     `json:"service"`
	Pricing   []detail.PricingRow `json:"pricing"`
	Aftercare aftercare.Entry     `json:"aftercare"`
	Groups    []aftercare.Group   `json:"aftercare_groups"`
}

// APIService returns one service with its pricing rows and aftercare.
// GET /api/services/{id}
func (s *Server) APIService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, err := s.details.Build(id, 0)
	if err != nil {
		if errors.Is(err, detail.ErrServiceNotFound) {
			s.metrics.ObserveNotFound("service")
			writeAPIError(w, r, http.StatusNotFound, "service not found")
			return
		}
		s.logger.Error("detail build failed", "service_id", id, "error", err)
		writeAPIError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	render.JSON(w, r, serviceResponse{
		Service:   view.Service,
		Pricing:   view.Pricing,
		Aftercare: view.Aftercare,
		Groups:    view.Groups,
	})
}

// APIConcerns lists every concern.
// GET /api/concerns
func (s *Server) APIConcerns(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]any{"concerns": s.catalog.Concerns()})
}

type concernResponse struct {
	Concern  catalog.Concern   `json:"concern"`
	Services []catalog.Service `json:"services"`
}

// APIConcern returns a concern with its resolved recommended services.
// GET /api/concerns/{slug}
func (s *Server) APIConcern(w http.ResponseWriter, r *http.Request) {
	cn, err := s.catalog.Concern(chi.URLParam(r, "slug"))
	if err != nil {
		s.metrics.ObserveNotFound("concern")
		writeAPIError(w, r, http.StatusNotFound, "concern not found")
		return
	}
	render.JSON(w, r, concernResponse{Concern: cn, Services: s.catalog.Recommended(cn)})
}
