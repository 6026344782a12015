package gallery

import "sync"

// Reveal and playback thresholds used by the site's sections and videos.
const (
	RevealThreshold   = 0.18
	PlaybackThreshold = 0.6
)

// VisibilityEvent reports how much of an element is inside the viewport.
type VisibilityEvent struct {
	Intersecting bool
	Ratio        float64
}

// VisibilitySignal delivers visibility changes to subscribers.
type VisibilitySignal interface {
	Subscribe(fn func(VisibilityEvent)) (unsubscribe func())
}

// Observer is an in-process VisibilitySignal.
type Observer struct {
	mu   sync.Mutex
	seq  int
	subs map[int]func(VisibilityEvent)
}

func NewObserver() *Observer {
	return &Observer{subs: make(map[int]func(VisibilityEvent))}
}

func (o *Observer) Subscribe(fn func(VisibilityEvent)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seq++
	id := o.seq
	o.subs[id] = fn
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.subs, id)
	}
}

// Emit delivers ev to the current subscribers. Subscribers may unsubscribe
// from inside the callback.
func (o *Observer) Emit(ev VisibilityEvent) {
	o.mu.Lock()
	fns := make([]func(VisibilityEvent), 0, len(o.subs))
	for _, fn := range o.subs {
		fns = append(fns, fn)
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Subscribers returns the number of active subscriptions.
func (o *Observer) Subscribers() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}

// Reveal flips to visible the first time its element crosses the threshold
// and then stops listening.
type Reveal struct {
	mu          sync.Mutex
	threshold   float64
	visible     bool
	unsubscribe func()
}

func NewReveal(sig VisibilitySignal, threshold float64) *Reveal {
	r := &Reveal{threshold: threshold}
	unsub := sig.Subscribe(r.observe)

	r.mu.Lock()
	if r.visible {
		r.mu.Unlock()
		unsub()
		return r
	}
	r.unsubscribe = unsub
	r.mu.Unlock()
	return r
}

func (r *Reveal) observe(ev VisibilityEvent) {
	if !ev.Intersecting || ev.Ratio < r.threshold {
		return
	}
	r.mu.Lock()
	if r.visible {
		r.mu.Unlock()
		return
	}
	r.visible = true
	unsub := r.unsubscribe
	r.unsubscribe = nil
	r.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

// Visible reports whether the element has been revealed.
func (r *Reveal) Visible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visible
}

// Player is a video element that can be started and paused.
type Player interface {
	Play()
	Pause()
}

// Playback plays its video while enough of it is on screen and pauses it
// otherwise.
type Playback struct {
	threshold   float64
	player      Player
	unsubscribe func()
}

func NewPlayback(sig VisibilitySignal, player Player, threshold float64) *Playback {
	p := &Playback{threshold: threshold, player: player}
	p.unsubscribe = sig.Subscribe(p.observe)
	return p
}

func (p *Playback) observe(ev VisibilityEvent) {
	if ev.Intersecting && ev.Ratio >= p.threshold {
		p.player.Play()
		return
	}
	p.player.Pause()
}

// Detach stops reacting to visibility changes.
func (p *Playback) Detach() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}
