// Package listing filters and groups the service catalog for the services page.
package listing

import (
	"errors"
	"fmt"

	"github.com/wolfman30/lalalu-site/internal/catalog"
)

// ErrUnknownCategory is returned when a category selector names no category.
var ErrUnknownCategory = errors.New("listing: unknown category")

// DefaultSpecialIDs are services rendered full-width below the grid.
var DefaultSpecialIDs = []string{"slimming-treatment"}

// ParseCategory validates a category selector from user input. An empty
// selector means all categories.
func ParseCategory(raw string) (catalog.Category, error) {
	if raw == "" {
		return catalog.CategoryAll, nil
	}
	c := catalog.Category(raw)
	if c == catalog.CategoryAll || c.Valid() {
		return c, nil
	}
	return catalog.CategoryAll, fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
}

// Filter returns the services in category whose name or description contains
// query, case-insensitively. Order is preserved. The query is used exactly as
// given. A category that is neither "all" nor a known category matches nothing.
func Filter(services []catalog.Service, query string, category catalog.Category) []catalog.Service {
	out := make([]catalog.Service, 0, len(services))
	for _, s := range services {
		if category != catalog.CategoryAll && s.Category != category {
			continue
		}
		if !s.Matches(query) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Partition splits rows into the regular grid and the full-width specials,
// keeping the relative order of both.
func Partition(rows []catalog.Service, specialIDs []string) (normal, special []catalog.Service) {
	isSpecial := make(map[string]struct{}, len(specialIDs))
	for _, id := range specialIDs {
		isSpecial[id] = struct{}{}
	}

	normal = make([]catalog.Service, 0, len(rows))
	for _, s := range rows {
		if _, ok := isSpecial[s.ID]; ok {
			special = append(special, s)
			continue
		}
		normal = append(normal, s)
	}
	return normal, special
}

// View is the filtered services page state.
type View struct {
	Query    string
	Category catalog.Category
	Options  []catalog.CategoryOption
	Normal   []catalog.Service
	Special  []catalog.Service
	// Invalid holds a rejected category selector, if any.
	Invalid string
}

// Count is the total number of matching services.
func (v View) Count() int { return len(v.Normal) + len(v.Special) }

// Empty reports whether nothing matched.
func (v View) Empty() bool { return v.Count() == 0 }

// Build filters services by the raw selector values from a request. An
// unknown category falls back to all categories and is recorded in Invalid.
func Build(services []catalog.Service, query, rawCategory string) View {
	category, err := ParseCategory(rawCategory)
	v := View{Query: query, Category: category, Options: catalog.Categories()}
	if err != nil {
		v.Invalid = rawCategory
	}
	v.Normal, v.Special = Partition(Filter(services, query, category), DefaultSpecialIDs)
	return v
}
