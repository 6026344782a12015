package gallery

import (
	"sort"
	"sync"

	"github.com/wolfman30/lalalu-site/internal/catalog"
)

// Key names understood by the lightbox.
const (
	KeyEscape     = "Escape"
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
)

// KeyBinder installs a handler for a named key and returns a function that
// removes exactly that handler.
type KeyBinder interface {
	Bind(key string, fn func()) (unbind func())
}

// Keymap is an in-process KeyBinder. Handlers for the same key run in the
// order they were bound.
type Keymap struct {
	mu       sync.Mutex
	seq      int
	handlers map[string]map[int]func()
}

// NewKeymap returns an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{handlers: make(map[string]map[int]func())}
}

func (k *Keymap) Bind(key string, fn func()) func() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.seq++
	id := k.seq
	if k.handlers[key] == nil {
		k.handlers[key] = make(map[int]func())
	}
	k.handlers[key][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			k.mu.Lock()
			defer k.mu.Unlock()
			delete(k.handlers[key], id)
			if len(k.handlers[key]) == 0 {
				delete(k.handlers, key)
			}
		})
	}
}

// Press dispatches key and reports whether any handler ran. Handlers may
// unbind themselves while running.
func (k *Keymap) Press(key string) bool {
	k.mu.Lock()
	ids := make([]int, 0, len(k.handlers[key]))
	for id := range k.handlers[key] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, k.handlers[key][id])
	}
	k.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns) > 0
}

// Bound returns the number of installed handlers across all keys.
func (k *Keymap) Bound() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	n := 0
	for _, m := range k.handlers {
		n += len(m)
	}
	return n
}

// Lightbox is a full-screen carousel that listens for keyboard navigation
// only while it is open.
type Lightbox struct {
	carousel *Carousel
	binder   KeyBinder
	open     bool
	unbind   []func()
}

// NewLightbox returns a closed lightbox over items.
func NewLightbox(items []catalog.Media, binder KeyBinder) (*Lightbox, error) {
	c, err := New(items)
	if err != nil {
		return nil, err
	}
	return &Lightbox{carousel: c, binder: binder}, nil
}

// Open shows item i and installs key handlers. Opening an already open
// lightbox only moves it. i must be in range.
func (l *Lightbox) Open(i int) {
	l.carousel.JumpTo(i)
	if l.open {
		return
	}
	l.open = true
	l.unbind = []func(){
		l.binder.Bind(KeyEscape, l.Close),
		l.binder.Bind(KeyArrowRight, l.Next),
		l.binder.Bind(KeyArrowLeft, l.Previous),
	}
}

// Close hides the lightbox and removes every handler it installed.
func (l *Lightbox) Close() {
	if !l.open {
		return
	}
	l.open = false
	for _, fn := range l.unbind {
		fn()
	}
	l.unbind = nil
}

// IsOpen reports whether the lightbox is showing.
func (l *Lightbox) IsOpen() bool { return l.open }

// Next advances while open.
func (l *Lightbox) Next() {
	if l.open {
		l.carousel.Next()
	}
}

// Previous steps back while open.
func (l *Lightbox) Previous() {
	if l.open {
		l.carousel.Previous()
	}
}

func (l *Lightbox) Index() int             { return l.carousel.Index() }
func (l *Lightbox) Current() catalog.Media { return l.carousel.Current() }
func (l *Lightbox) Len() int               { return l.carousel.Len() }
