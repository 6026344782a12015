// Package catalog holds the static content tables of the site: services with
// their pricing tiers, skin concerns, and the page content that references them.
package catalog

import (
	"fmt"
	"strings"
)

// Category groups services on the listing page.
type Category string

const (
	CategoryAll       Category = "all"
	CategoryFacial    Category = "facial"
	CategoryLaser     Category = "laser"
	CategoryTreatment Category = "treatment"
	CategorySlimming  Category = "slimming"
)

// Valid reports whether c is a category a service row can carry.
// CategoryAll is a filter sentinel and is not valid on a row.
func (c Category) Valid() bool {
	switch c {
	case CategoryFacial, CategoryLaser, CategoryTreatment, CategorySlimming:
		return true
	}
	return false
}

// CategoryOption is one entry of the category selector.
type CategoryOption struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
}

// Categories returns the selector options in display order.
func Categories() []CategoryOption {
	return []CategoryOption{
		{ID: CategoryAll, Name: "All Services"},
		{ID: CategoryFacial, Name: "Facials"},
		{ID: CategoryLaser, Name: "Laser Treatments"},
		{ID: CategoryTreatment, Name: "Specialty Treatments"},
		{ID: CategorySlimming, Name: "Body Slimming"},
	}
}

// BadgeColor is the color tag of a badge. The zero value renders as red.
type BadgeColor string

const (
	BadgeRed      BadgeColor = "red"
	BadgeLavender BadgeColor = "lavender"
	BadgeGreen    BadgeColor = "green"
	BadgeGray     BadgeColor = "gray"
)

// Resolved returns the color to render, defaulting unset or unknown values to red.
func (c BadgeColor) Resolved() BadgeColor {
	switch c {
	case BadgeLavender, BadgeGreen, BadgeGray:
		return c
	default:
		return BadgeRed
	}
}

// Badge is a short label shown beside a price ("20% OFF", "New").
type Badge struct {
	Text  string     `json:"text"`
	Color BadgeColor `json:"color,omitempty"`
}

// Price is either a single amount or an inclusive range, in whole dollars.
type Price struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Amount returns a single-valued price.
func Amount(n int) Price {
	return Price{Min: n, Max: n}
}

// Range returns a price spanning lo to hi. Bounds are swapped if reversed.
func Range(lo, hi int) Price {
	if hi < lo {
		lo, hi = hi, lo
	}
	return Price{Min: lo, Max: hi}
}

// IsRange reports whether the price spans more than one amount.
func (p Price) IsRange() bool {
	return p.Min != p.Max
}

func (p Price) String() string {
	if p.IsRange() {
		return fmt.Sprintf("%d–%d", p.Min, p.Max)
	}
	return fmt.Sprintf("%d", p.Min)
}

// discountedFrom reports whether original is strictly above every point of p.
func (p Price) discountedFrom(original *int) bool {
	return original != nil && *original > p.Max
}

// Tier is a priced variant or package of a service.
type Tier struct {
	Name          string  `json:"name"`
	Price         Price   `json:"price"`
	OriginalPrice *int    `json:"original_price,omitempty"`
	Description   string  `json:"description,omitempty"`
	Badges        []Badge `json:"badges,omitempty"`
}

// Discounted reports whether the tier shows a crossed-out original price.
func (t Tier) Discounted() bool {
	return t.Price.discountedFrom(t.OriginalPrice)
}

// Pill returns the inline badge for the tier, if any.
func (t Tier) Pill() (Badge, bool) {
	return pill(t.Badges, t.Discounted())
}

// Service is a bookable treatment.
type Service struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Price           Price    `json:"price"`
	OriginalPrice   *int     `json:"original_price,omitempty"`
	DurationMinutes int      `json:"duration_minutes"`
	Description     string   `json:"description"`
	Category        Category `json:"category"`
	Benefits        []string `json:"benefits"`
	Tiers           []Tier   `json:"tiers,omitempty"`
	Badges          []Badge  `json:"badges,omitempty"`
	Media           []Media  `json:"media,omitempty"`
}

// Discounted reports whether the base price shows a crossed-out original price.
func (s Service) Discounted() bool {
	return s.Price.discountedFrom(s.OriginalPrice)
}

// HasTiers reports whether the service is priced per tier.
func (s Service) HasTiers() bool {
	return len(s.Tiers) > 0
}

// Pill returns the inline badge for the base price, if any.
func (s Service) Pill() (Badge, bool) {
	return pill(s.Badges, s.Discounted())
}

// LowestPrice is the lowest amount a client can pay for the service: the
// lowest tier bound when tiers exist, otherwise the base price.
func (s Service) LowestPrice() int {
	if !s.HasTiers() {
		return s.Price.Min
	}
	lowest := s.Tiers[0].Price.Min
	for _, t := range s.Tiers[1:] {
		if t.Price.Min < lowest {
			lowest = t.Price.Min
		}
	}
	return lowest
}

// Matches reports whether query is a case-insensitive substring of the name or description.
func (s Service) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(s.Name), q) ||
		strings.Contains(strings.ToLower(s.Description), q)
}

// pill picks the first explicit badge, falling back to a red "Sale" pill
// when the price is discounted.
func pill(badges []Badge, discounted bool) (Badge, bool) {
	if len(badges) > 0 {
		b := badges[0]
		b.Color = b.Color.Resolved()
		return b, true
	}
	if discounted {
		return Badge{Text: "Sale", Color: BadgeRed}, true
	}
	return Badge{}, false
}

// Concern is a skin-condition topic that recommends a set of services.
type Concern struct {
	Slug                  string   `json:"slug"`
	Title                 string   `json:"title"`
	Intro                 []string `json:"intro"`
	RecommendedServiceIDs []string `json:"recommended_service_ids"`
	Image                 string   `json:"image"`
}

func was(n int) *int {
	return &n
}
