// Package detail assembles the per-service detail page.
package detail

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/wolfman30/lalalu-site/internal/aftercare"
	"github.com/wolfman30/lalalu-site/internal/catalog"
	"github.com/wolfman30/lalalu-site/internal/gallery"
	"github.com/wolfman30/lalalu-site/internal/seo"
)

// ErrServiceNotFound is returned for IDs that have no service row.
var ErrServiceNotFound = catalog.ErrServiceNotFound

// ErrMediaIndex is returned when the requested gallery position does not exist.
var ErrMediaIndex = errors.New("detail: media index out of range")

// PricingRow is one line of the pricing card.
type PricingRow struct {
	Name        string         `json:"name,omitempty"`
	Price       string         `json:"price"`
	Was         string         `json:"was,omitempty"`
	Pill        *catalog.Badge `json:"pill,omitempty"`
	Description string         `json:"description,omitempty"`
}

// View is everything the detail page renders.
type View struct {
	Service   catalog.Service
	Pricing   []PricingRow
	Aftercare aftercare.Entry
	Groups    []aftercare.Group
	// Gallery is nil when the service has no media.
	Gallery *gallery.Carousel
	Meta    seo.Meta
}

// Builder holds the tables a detail view is built from.
type Builder struct {
	Catalog   *catalog.Catalog
	Aftercare *aftercare.Table
	SEO       seo.Builder
}

// Build returns the view for service id with its gallery positioned at
// mediaIndex. Services without media ignore mediaIndex.
func (b Builder) Build(id string, mediaIndex int) (View, error) {
	svc, err := b.Catalog.Find(id)
	if err != nil {
		return View{}, err
	}

	entry := b.Aftercare.Lookup(svc.ID)
	v := View{
		Service:   svc,
		Pricing:   Pricing(svc),
		Aftercare: entry,
		Groups:    entry.Groups(),
		Meta:      b.SEO.ServiceDetail(svc),
	}

	if len(svc.Media) > 0 {
		if mediaIndex < 0 || mediaIndex >= len(svc.Media) {
			return View{}, fmt.Errorf("%w: %d of %d", ErrMediaIndex, mediaIndex, len(svc.Media))
		}
		c, err := gallery.New(svc.Media)
		if err != nil {
			return View{}, fmt.Errorf("detail: gallery for %s: %w", svc.ID, err)
		}
		c.JumpTo(mediaIndex)
		v.Gallery = c
	}
	return v, nil
}

// Pricing returns one row per tier in declaration order, or a single row for
// the base price when the service has no tiers.
func Pricing(s catalog.Service) []PricingRow {
	if !s.HasTiers() {
		return []PricingRow{row("", s.Price, s.OriginalPrice, s.Discounted(), "", pillOf(s.Pill()))}
	}

	rows := make([]PricingRow, 0, len(s.Tiers))
	for _, t := range s.Tiers {
		rows = append(rows, row(t.Name, t.Price, t.OriginalPrice, t.Discounted(), t.Description, pillOf(t.Pill())))
	}
	return rows
}

func row(name string, price catalog.Price, original *int, discounted bool, desc string, pill *catalog.Badge) PricingRow {
	r := PricingRow{
		Name:        name,
		Price:       "$" + price.String(),
		Pill:        pill,
		Description: desc,
	}
	if discounted {
		r.Was = "$" + strconv.Itoa(*original)
	}
	return r
}

func pillOf(b catalog.Badge, ok bool) *catalog.Badge {
	if !ok {
		return nil
	}
	return &b
}

// ParseMediaIndex turns an untrusted query value into a gallery position.
// Anything that is not an in-range integer selects the first item.
func ParseMediaIndex(raw string, n int) int {
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= n {
		return 0
	}
	return i
}
