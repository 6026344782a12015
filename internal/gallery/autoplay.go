package gallery

import (
	"context"
	"sync"
	"time"

	"github.com/wolfman30/lalalu-site/internal/catalog"
)

// tickerFunc yields ticks every d until stop is called.
type tickerFunc func(d time.Duration) (ticks <-chan time.Time, stop func())

func realTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Autoplay advances a carousel on a fixed interval. User navigation through
// Autoplay applies immediately and shares the carousel lock with the timer.
type Autoplay struct {
	mu       sync.Mutex
	carousel *Carousel
	interval time.Duration
	ticker   tickerFunc

	cancel context.CancelFunc
	done   chan struct{}
}

// NewAutoplay wraps c. A non-positive interval disables automatic advancement.
func NewAutoplay(c *Carousel, interval time.Duration) *Autoplay {
	return &Autoplay{carousel: c, interval: interval, ticker: realTicker}
}

// Start launches the timer. It stops when ctx is cancelled or Stop is called.
// Calling Start on a running autoplay is a no-op.
func (a *Autoplay) Start(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.interval <= 0 || a.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	ticks, stopTicker := a.ticker(a.interval)
	done := make(chan struct{})
	a.cancel = cancel
	a.done = done

	go func() {
		defer close(done)
		defer stopTicker()
		defer a.release(done)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticks:
				a.Next()
			}
		}
	}()
}

// release clears the running state when the timer exits on its own, so a
// later Start can launch a new one.
func (a *Autoplay) release(done chan struct{}) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.done != done {
		return
	}
	a.cancel()
	a.cancel, a.done = nil, nil
}

// Stop cancels the timer and waits for it to exit.
func (a *Autoplay) Stop() {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.cancel, a.done = nil, nil
	a.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the timer is active.
func (a *Autoplay) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancel != nil
}

func (a *Autoplay) Next() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.carousel.Next()
}

func (a *Autoplay) Previous() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.carousel.Previous()
}

func (a *Autoplay) JumpTo(i int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.carousel.JumpTo(i)
}

func (a *Autoplay) Index() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.carousel.Index()
}

func (a *Autoplay) Current() catalog.Media {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.carousel.Current()
}
