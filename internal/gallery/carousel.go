// Package gallery implements the image/video carousel used on service and
// product pages: index navigation with wraparound, swipe gestures, autoplay,
// and a keyboard-driven lightbox.
package gallery

import (
	"errors"
	"fmt"
	"slices"

	"github.com/wolfman30/lalalu-site/internal/catalog"
)

// ErrEmptyGallery is returned when a carousel is built without media.
var ErrEmptyGallery = errors.New("gallery: no media items")

// Navigator is anything that can step forward and back through a sequence.
type Navigator interface {
	Next()
	Previous()
}

// Carousel tracks the current position in a non-empty media sequence.
// A Carousel is owned by the view that created it and is not safe for
// concurrent use; Autoplay adds locking on top.
type Carousel struct {
	items    []catalog.Media
	index    int
	onChange func(int)
}

// New returns a carousel positioned at the first item.
func New(items []catalog.Media) (*Carousel, error) {
	if len(items) == 0 {
		return nil, ErrEmptyGallery
	}
	return &Carousel{items: slices.Clone(items)}, nil
}

// Len returns the number of items.
func (c *Carousel) Len() int { return len(c.items) }

// Index returns the current position.
func (c *Carousel) Index() int { return c.index }

// Current returns the item at the current position.
func (c *Carousel) Current() catalog.Media { return c.items[c.index] }

// Items returns the sequence in display order.
func (c *Carousel) Items() []catalog.Media { return slices.Clone(c.items) }

// NextIndex is the position Next would move to.
func (c *Carousel) NextIndex() int {
	return (c.index + 1) % len(c.items)
}

// PreviousIndex is the position Previous would move to.
func (c *Carousel) PreviousIndex() int {
	return (c.index - 1 + len(c.items)) % len(c.items)
}

// Next advances one item, wrapping from the last to the first.
func (c *Carousel) Next() { c.set(c.NextIndex()) }

// Previous steps back one item, wrapping from the first to the last.
func (c *Carousel) Previous() { c.set(c.PreviousIndex()) }

// JumpTo moves directly to position i. Callers derive i from Len, so an
// out-of-range index is a programming error and panics.
func (c *Carousel) JumpTo(i int) {
	if i < 0 || i >= len(c.items) {
		panic(fmt.Sprintf("gallery: index %d out of range [0,%d)", i, len(c.items)))
	}
	c.set(i)
}

// OnChange registers fn to be called with the new index after every move
// that changes the position. Passing nil removes the callback.
func (c *Carousel) OnChange(fn func(int)) {
	c.onChange = fn
}

// Dot is one position indicator.
type Dot struct {
	Index  int
	Active bool
}

// Dots returns one indicator per item with the current one marked active.
func (c *Carousel) Dots() []Dot {
	dots := make([]Dot, len(c.items))
	for i := range dots {
		dots[i] = Dot{Index: i, Active: i == c.index}
	}
	return dots
}

func (c *Carousel) set(i int) {
	if i == c.index {
		return
	}
	c.index = i
	if c.onChange != nil {
		c.onChange(i)
	}
}
