// Package seo builds page titles, Open Graph tags and schema.org JSON-LD.
package seo

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/wolfman30/lalalu-site/internal/catalog"
)

const (
	SiteName = "Lalalu Skin & Laser"
	Locale   = "en_CA"
	Currency = "CAD"

	DefaultBaseURL = "https://lalaluskinlaser.com"
	BookingPath    = "/book"

	ogImagePath   = "/og-image.jpg"
	ogImageWidth  = 1200
	ogImageHeight = 630
	ogImageAlt    = "Lalalu Skin & Laser — Calgary"
	schemaContext = "https://schema.org"
)

// OpenGraph is the og:* tag set.
type OpenGraph struct {
	Type        string
	Title       string
	Description string
	URL         string
	Image       string
	ImageAlt    string
	ImageWidth  int
	ImageHeight int
	SiteName    string
	Locale      string
}

// Meta is everything a page puts in its <head>.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	// PriceAmount and PriceCurrency are set for product pages.
	PriceAmount   string
	PriceCurrency string
	JSONLD        []template.JS
}

// Builder derives metadata for the site's pages from the content tables.
type Builder struct {
	baseURL string
}

// NewBuilder returns a builder producing absolute URLs under baseURL.
func NewBuilder(baseURL string) Builder {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Builder{baseURL: baseURL}
}

// URL returns the absolute URL of path.
func (b Builder) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return b.baseURL + path
}

func (b Builder) page(title, description, ogDescription, path string) Meta {
	url := b.URL(path)
	return Meta{
		Title:       title,
		Description: description,
		Canonical:   url,
		Robots:      "index,follow",
		OG: OpenGraph{
			Type:        "website",
			Title:       title,
			Description: ogDescription,
			URL:         url,
			Image:       b.URL(ogImagePath),
			ImageAlt:    ogImageAlt,
			ImageWidth:  ogImageWidth,
			ImageHeight: ogImageHeight,
			SiteName:    SiteName,
			Locale:      Locale,
		},
	}
}

// Home describes the landing page.
func (b Builder) Home() Meta {
	const (
		title = "Lalalu Skin & Laser – Relax, Rejuvenate, Renew"
		desc  = "HydraFacials, microneedling (RF), laser skin treatments, and premium facials in Calgary. Book online at Lalalu Skin & Laser."
	)
	m := b.page(title, desc, desc, "/")
	m.JSONLD = mustScripts(map[string]any{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     SiteName,
		"url":      b.URL("/"),
		"logo":     b.URL("/logo.png"),
	})
	return m
}

// Services describes the listing page. Every service is listed with an
// offer at its lowest price.
func (b Builder) Services(services []catalog.Service) Meta {
	m := b.page(
		"Services & Pricing | Lalalu Skin & Laser",
		"Explore facials, HydraFacials, RF microneedling, BB Glow, and advanced laser treatments. Transparent pricing and easy online booking.",
		"Facials, HydraFacials, RF microneedling, BB Glow, and laser. Transparent pricing.",
		"/services",
	)

	items := make([]map[string]any, 0, len(services))
	for i, s := range services {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"item": map[string]any{
				"@type": "Service",
				"name":  s.Name,
				"url":   b.URL("/services/" + s.ID),
				"offers": map[string]any{
					"@type":         "Offer",
					"price":         s.LowestPrice(),
					"priceCurrency": Currency,
					"availability":  "https://schema.org/InStock",
					"url":           b.URL(BookingPath),
				},
			},
		})
	}

	m.JSONLD = mustScripts(
		b.breadcrumbs("Services", "/services"),
		map[string]any{
			"@context":        schemaContext,
			"@type":           "ItemList",
			"itemListElement": items,
		},
	)
	return m
}

// ServiceDetail describes one service page as a product priced at its
// lowest tier.
func (b Builder) ServiceDetail(s catalog.Service) Meta {
	title := fmt.Sprintf("%s | %s", s.Name, SiteName)
	m := b.page(title, fmt.Sprintf("Discover the benefits of %s at %s. %s", s.Name, SiteName, s.Description), s.Description, "/services/"+s.ID)
	m.Robots = ""
	m.OG.Type = "product"
	m.OG.ImageAlt = ""
	m.OG.ImageWidth, m.OG.ImageHeight = 0, 0
	m.PriceAmount = strconv.Itoa(s.LowestPrice())
	m.PriceCurrency = Currency
	return m
}

// Products describes the Circadia products page.
func (b Builder) Products() Meta {
	m := b.page(
		"Circadia Professional Skincare | Lalalu Skin & Laser",
		"Learn how Circadia’s science-backed, barrier-friendly skincare pairs with Lalalu treatments. Explore client-loved categories and real transformations.",
		"Science-backed, barrier-friendly skincare paired with Lalalu treatments.",
		"/products",
	)
	m.OG.ImageAlt = "Lalalu Skin & Laser — Circadia partnership"
	m.JSONLD = mustScripts(
		b.breadcrumbs("Products", "/products"),
		map[string]any{
			"@context":    schemaContext,
			"@type":       "WebPage",
			"name":        "Circadia Professional Skincare",
			"url":         b.URL("/products"),
			"description": "Circadia skincare at Lalalu Skin & Laser in Calgary.",
		},
	)
	return m
}

// About describes the about page.
func (b Builder) About() Meta {
	const desc = "We deliver expert aesthetic care with premium products and modern equipment. Inclusive, professional, and results-driven."
	m := b.page("About | Lalalu Skin & Laser", desc, "Inclusive, professional, and results-driven aesthetic care in Calgary.", "/about")
	m.OG.Title = "About Lalalu Skin & Laser"
	m.JSONLD = mustScripts(
		b.breadcrumbs("About", "/about"),
		map[string]any{
			"@context":    schemaContext,
			"@type":       "AboutPage",
			"name":        "About Lalalu Skin & Laser",
			"url":         b.URL("/about"),
			"description": desc,
		},
	)
	return m
}

// Concern describes a skin concern landing page.
func (b Builder) Concern(cn catalog.Concern) Meta {
	path := "/concerns/" + cn.Slug
	title := fmt.Sprintf("%s | %s", cn.Title, SiteName)
	var desc string
	if len(cn.Intro) > 0 {
		desc = cn.Intro[0]
	}
	m := b.page(title, desc, desc, path)
	m.JSONLD = mustScripts(
		b.breadcrumbs(cn.Title, path),
		map[string]any{
			"@context":    schemaContext,
			"@type":       "WebPage",
			"name":        cn.Title,
			"url":         b.URL(path),
			"description": desc,
		},
	)
	return m
}

// NotFound describes an error page that search engines should skip.
func (b Builder) NotFound(path string) Meta {
	m := b.page("Not found | "+SiteName, "", "", path)
	m.Robots = "noindex"
	m.Canonical = ""
	return m
}

func (b Builder) breadcrumbs(name, path string) map[string]any {
	return map[string]any{
		"@context": schemaContext,
		"@type":    "BreadcrumbList",
		"itemListElement": []map[string]any{
			{"@type": "ListItem", "position": 1, "name": "Home", "item": b.URL("/")},
			{"@type": "ListItem", "position": 2, "name": name, "item": b.URL(path)},
		},
	}
}

// Script marshals v for embedding in a <script type="application/ld+json">
// element. encoding/json escapes <, > and & so the output cannot close the
// script element early.
func Script(v any) (template.JS, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("seo: marshal json-ld: %w", err)
	}
	return template.JS(raw), nil
}

// mustScripts is for documents built from maps of strings and ints, which
// always marshal.
func mustScripts(docs ...any) []template.JS {
	out := make([]template.JS, 0, len(docs))
	for _, d := range docs {
		js, err := Script(d)
		if err != nil {
			panic(err)
		}
		out = append(out, js)
	}
	return out
}
