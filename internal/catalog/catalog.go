package catalog

import (
	"errors"
	"slices"
)

var (
	// ErrServiceNotFound is returned when no service has the requested ID.
	ErrServiceNotFound = errors.New("service not found")

	// ErrConcernNotFound is returned when no concern has the requested slug.
	ErrConcernNotFound = errors.New("concern not found")
)

// Catalog indexes the service and concern tables. It is read-only after New
// and safe for concurrent use.
type Catalog struct {
	services []Service
	byID     map[string]int
	concerns []Concern
	bySlug   map[string]int
}

// New builds a catalog over the given tables. Later duplicates of an ID or
// slug are unreachable by lookup.
func New(services []Service, concerns []Concern) *Catalog {
	c := &Catalog{
		services: cloneServices(services),
		byID:     make(map[string]int, len(services)),
		concerns: cloneConcerns(concerns),
		bySlug:   make(map[string]int, len(concerns)),
	}
	for i, s := range c.services {
		if _, ok := c.byID[s.ID]; !ok {
			c.byID[s.ID] = i
		}
	}
	for i, cn := range c.concerns {
		if _, ok := c.bySlug[cn.Slug]; !ok {
			c.bySlug[cn.Slug] = i
		}
	}
	return c
}

// Default returns the catalog of the site's authored content.
func Default() *Catalog {
	return New(services, concerns)
}

// All returns every service in declaration order.
func (c *Catalog) All() []Service {
	return cloneServices(c.services)
}

// Find returns the service with the given ID.
func (c *Catalog) Find(id string) (Service, error) {
	i, ok := c.byID[id]
	if !ok {
		return Service{}, ErrServiceNotFound
	}
	return c.services[i].clone(), nil
}

// Concerns returns every concern in declaration order.
func (c *Catalog) Concerns() []Concern {
	return cloneConcerns(c.concerns)
}

// Concern returns the concern with the given slug.
func (c *Catalog) Concern(slug string) (Concern, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Concern{}, ErrConcernNotFound
	}
	return c.concerns[i].clone(), nil
}

// Recommended resolves a concern's recommended services in declaration order.
// IDs with no matching service are skipped.
func (c *Catalog) Recommended(cn Concern) []Service {
	out := make([]Service, 0, len(cn.RecommendedServiceIDs))
	for _, id := range cn.RecommendedServiceIDs {
		if s, err := c.Find(id); err == nil {
			out = append(out, s)
		}
	}
	return out
}

// DanglingReference is a recommended service ID that resolves to nothing.
type DanglingReference struct {
	ConcernSlug string
	ServiceID   string
}

// DanglingReferences lists recommended service IDs with no matching service.
func (c *Catalog) DanglingReferences() []DanglingReference {
	var out []DanglingReference
	for _, cn := range c.concerns {
		for _, id := range cn.RecommendedServiceIDs {
			if _, ok := c.byID[id]; !ok {
				out = append(out, DanglingReference{ConcernSlug: cn.Slug, ServiceID: id})
			}
		}
	}
	return out
}

// Callers get values that share no memory with the tables.

func cloneServices(in []Service) []Service {
	out := make([]Service, len(in))
	for i, s := range in {
		out[i] = s.clone()
	}
	return out
}

func cloneConcerns(in []Concern) []Concern {
	out := make([]Concern, len(in))
	for i, cn := range in {
		out[i] = cn.clone()
	}
	return out
}

func (s Service) clone() Service {
	s.OriginalPrice = cloneInt(s.OriginalPrice)
	s.Benefits = slices.Clone(s.Benefits)
	s.Badges = slices.Clone(s.Badges)
	if s.Tiers != nil {
		tiers := make([]Tier, len(s.Tiers))
		for i, t := range s.Tiers {
			t.OriginalPrice = cloneInt(t.OriginalPrice)
			t.Badges = slices.Clone(t.Badges)
			tiers[i] = t
		}
		s.Tiers = tiers
	}
	if s.Media != nil {
		media := make([]Media, len(s.Media))
		for i, m := range s.Media {
			media[i] = m.clone()
		}
		s.Media = media
	}
	return s
}

func (cn Concern) clone() Concern {
	cn.Intro = slices.Clone(cn.Intro)
	cn.RecommendedServiceIDs = slices.Clone(cn.RecommendedServiceIDs)
	return cn
}

func (m Media) clone() Media {
	if m.Image != nil {
		img := *m.Image
		m.Image = &img
	}
	if m.Video != nil {
		vid := *m.Video
		m.Video = &vid
	}
	return m
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	return was(*p)
}
