// Package promo shows a seasonal offer overlay at most once per browser session.
package promo

import (
	"fmt"
	"time"
)

// DefaultKey is the session marker of the New Year 2026 campaign.
const DefaultKey = "lalalu_new_year_2026_seen"

// EndLayout is the wall-clock format of a campaign end time.
const EndLayout = "2006-01-02T15:04:05"

// Offer is one priced card in the overlay.
type Offer struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// Campaign is the content and lifetime of a promo.
type Campaign struct {
	Key      string    `json:"key"`
	Headline string    `json:"headline"`
	Lead     string    `json:"lead"`
	Subline  string    `json:"subline"`
	EndsAt   time.Time `json:"ends_at"`
	Offers   []Offer   `json:"offers"`
	AddOn    string    `json:"add_on"`
	CTA      string    `json:"cta"`
	CTAPath  string    `json:"cta_path"`
	Phone    string    `json:"phone"`
}

// Active reports whether the campaign is still running at now. The end
// instant itself is included.
func (c Campaign) Active(now time.Time) bool {
	return !now.After(c.EndsAt)
}

// ParseEnd reads a wall-clock end time in the clinic's time zone.
func ParseEnd(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(EndLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("promo: parse end %q: %w", raw, err)
	}
	return t, nil
}

// NewYear2026 returns the January 2026 campaign ending at the close of
// January 31 in loc.
func NewYear2026(loc *time.Location) Campaign {
	if loc == nil {
		loc = time.UTC
	}
	return Campaign{
		Key:      DefaultKey,
		Headline: "New Year, New Glow",
		Lead:     "If you’ve been thinking about addressing your skin concerns, this is your sign.",
		Subline:  "January-only treatments designed for visible results.",
		EndsAt:   time.Date(2026, time.January, 31, 23, 59, 59, 0, loc),
		Offers: []Offer{
			{Title: "Cocoa Enzyme + HydraFacial", Price: "$80", Description: "Deeply exfoliates, hydrates & boosts radiance for an instant glow"},
			{Title: "C202 Acne Treatment", Price: "$100", Description: "A powerful oxygenating treatment by Circadia to clarify pores and improve acne-prone skin"},
			{Title: "Morpheus8 + PDRN + Jelly Mask", Price: "$200", Description: "Advanced RF microneedling for firming, texture & collagen repair"},
		},
		AddOn:   "+ Dermaplaning add-on — $20",
		CTA:     "Book Your January Glow",
		CTAPath: "/book",
		Phone:   "403-607-1443",
	}
}
