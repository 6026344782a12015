package gallery

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfman30/lalalu-site/internal/catalog"
)

func threeItems() []catalog.Media {
	return catalog.Images("/a.jpg", "/b.jpg", "/c.jpg")
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyGallery)

	_, err = NewLightbox([]catalog.Media{}, NewKeymap())
	assert.ErrorIs(t, err, ErrEmptyGallery)
}

func TestCarouselWraps(t *testing.T) {
	c, err := New(threeItems())
	require.NoError(t, err)

	c.Next()
	c.Next()
	assert.Equal(t, 2, c.Index())
	c.Next()
	assert.Equal(t, 0, c.Index())

	c.Previous()
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, "/c.jpg", c.Current().Src())
}

func TestCarouselNavigationLaws(t *testing.T) {
	paths := []string{"/a.jpg", "/b.jpg", "/c.jpg", "/d.jpg", "/e.jpg", "/f.jpg"}
	for n := 1; n <= len(paths); n++ {
		for start := 0; start < n; start++ {
			c, err := New(catalog.Images(paths[:n]...))
			require.NoError(t, err)

			// Next from the last item wraps to the first; Previous undoes Next.
			c.JumpTo(start)
			c.Next()
			assert.Equal(t, (start+1)%n, c.Index(), "next n=%d start=%d", n, start)
			c.Previous()
			assert.Equal(t, start, c.Index(), "previous after next n=%d start=%d", n, start)

			c.Previous()
			assert.Equal(t, (start-1+n)%n, c.Index(), "previous n=%d start=%d", n, start)
			c.Next()
			assert.Equal(t, start, c.Index(), "next after previous n=%d start=%d", n, start)

			// n steps in either direction return to the start.
			for i := 0; i < n; i++ {
				c.Next()
			}
			assert.Equal(t, start, c.Index(), "full cycle n=%d start=%d", n, start)
		}
	}
}

func TestCarouselSingleItemStaysPut(t *testing.T) {
	c, err := New(catalog.Images("/only.jpg"))
	require.NoError(t, err)

	calls := 0
	c.OnChange(func(int) { calls++ })
	c.Next()
	c.Previous()
	assert.Equal(t, 0, c.Index())
	assert.Zero(t, calls)
}

func TestCarouselJumpTo(t *testing.T) {
	c, err := New(threeItems())
	require.NoError(t, err)

	var seen []int
	c.OnChange(func(i int) { seen = append(seen, i) })

	c.JumpTo(2)
	c.JumpTo(2)
	assert.Equal(t, []int{2}, seen)
	assert.Equal(t, 0, c.NextIndex())
	assert.Equal(t, 1, c.PreviousIndex())

	assert.Panics(t, func() { c.JumpTo(3) })
	assert.Panics(t, func() { c.JumpTo(-1) })
}

func TestCarouselDots(t *testing.T) {
	c, err := New(threeItems())
	require.NoError(t, err)
	c.JumpTo(1)

	assert.Equal(t, []Dot{{0, false}, {1, true}, {2, false}}, c.Dots())
}

func TestCarouselItemsIsCopy(t *testing.T) {
	items := threeItems()
	c, err := New(items)
	require.NoError(t, err)

	items[0] = catalog.ImageItem("/changed.jpg", "", "")
	got := c.Items()
	got[1] = catalog.ImageItem("/changed.jpg", "", "")

	assert.Equal(t, "/a.jpg", c.Current().Src())
	c.Next()
	assert.Equal(t, "/b.jpg", c.Current().Src())
}

func TestSwipe(t *testing.T) {
	tests := []struct {
		name      string
		start     float64
		end       float64
		wantIdx   int
		wantState SwipeAction
	}{
		{"left swipe advances", 200, 100, 1, SwipeNext},
		{"right swipe goes back", 100, 200, 2, SwipePrevious},
		{"exactly threshold is ignored", 100, 50, 0, SwipeNone},
		{"just over threshold advances", 100, 49, 1, SwipeNext},
		{"small move ignored", 100, 90, 0, SwipeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(threeItems())
			require.NoError(t, err)
			s := NewSwipe(c)

			s.Start(tt.start)
			assert.Equal(t, tt.wantState, s.End(tt.end))
			assert.Equal(t, tt.wantIdx, c.Index())
		})
	}
}

func TestSwipeEndWithoutStart(t *testing.T) {
	c, err := New(threeItems())
	require.NoError(t, err)
	s := NewSwipe(c)

	assert.Equal(t, SwipeNone, s.End(0))

	s.Start(300)
	s.End(100)
	// the second End has no matching Start
	assert.Equal(t, SwipeNone, s.End(-500))
	assert.Equal(t, 1, c.Index())
}

func TestSwipeCustomThreshold(t *testing.T) {
	c, err := New(threeItems())
	require.NoError(t, err)
	s := NewSwipe(c)
	s.Threshold = 40

	s.Start(100)
	assert.Equal(t, SwipeNext, s.End(55))
}

func fakeTicker() (tickerFunc, chan time.Time) {
	ch := make(chan time.Time)
	return func(time.Duration) (<-chan time.Time, func()) {
		return ch, func() {}
	}, ch
}

func TestAutoplayAdvancesOnTick(t *testing.T) {
	c, err := New(threeItems())
	require.NoError(t, err)
	a := NewAutoplay(c, time.Second)
	tf, ticks := fakeTicker()
	a.ticker = tf

	a.Start(context.Background())
	require.True(t, a.Running())

	ticks <- time.Now()
	ticks <- time.Now()
	require.Eventually(t, func() bool { return a.Index() == 2 }, time.Second, time.Millisecond)

	ticks <- time.Now()
	require.Eventually(t, func() bool { return a.Index() == 0 }, time.Second, time.Millisecond)

	a.Stop()
	assert.False(t, a.Running())
}

func TestAutoplayManualNavigation(t *testing.T) {
	c, err := New(threeItems())
	require.NoError(t, err)
	a := NewAutoplay(c, time.Second)
	tf, ticks := fakeTicker()
	a.ticker = tf

	a.Start(context.Background())
	defer a.Stop()

	a.JumpTo(2)
	ticks <- time.Now()
	require.Eventually(t, func() bool { return a.Index() == 0 }, time.Second, time.Millisecond)

	a.Previous()
	assert.Equal(t, 2, a.Index())
}

func TestAutoplayZeroIntervalDisabled(t *testing.T) {
	c, err := New(threeItems())
	require.NoError(t, err)
	a := NewAutoplay(c, 0)

	a.Start(context.Background())
	assert.False(t, a.Running())
	a.Stop()
}

func TestAutoplayStopsWithContext(t *testing.T) {
	c, err := New(threeItems())
	require.NoError(t, err)
	a := NewAutoplay(c, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	a.Start(ctx)
	cancel()
	a.Stop()
	idx := a.Index()
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, idx, a.Index())
}

func TestAutoplayRestartsAfterContextCancel(t *testing.T) {
	c, err := New(threeItems())
	require.NoError(t, err)
	a := NewAutoplay(c, time.Second)
	tf, ticks := fakeTicker()
	a.ticker = tf

	ctx, cancel := context.WithCancel(context.Background())
	a.Start(ctx)
	require.True(t, a.Running())
	cancel()
	require.Eventually(t, func() bool { return !a.Running() }, time.Second, time.Millisecond)

	a.Start(context.Background())
	defer a.Stop()
	require.True(t, a.Running())

	ticks <- time.Now()
	require.Eventually(t, func() bool { return a.Index() == 1 }, time.Second, time.Millisecond)
}

func TestLightboxKeyboard(t *testing.T) {
	keys := NewKeymap()
	lb, err := NewLightbox(threeItems(), keys)
	require.NoError(t, err)

	assert.False(t, keys.Press(KeyArrowRight), "no handlers while closed")

	lb.Open(1)
	require.True(t, lb.IsOpen())
	assert.Equal(t, 3, keys.Bound())

	keys.Press(KeyArrowRight)
	assert.Equal(t, 2, lb.Index())
	keys.Press(KeyArrowRight)
	assert.Equal(t, 0, lb.Index())
	keys.Press(KeyArrowLeft)
	assert.Equal(t, 2, lb.Index())

	assert.True(t, keys.Press(KeyEscape))
	assert.False(t, lb.IsOpen())
	assert.Zero(t, keys.Bound())

	assert.False(t, keys.Press(KeyArrowLeft))
	assert.Equal(t, 2, lb.Index())
}

func TestLightboxReopenDoesNotDuplicateHandlers(t *testing.T) {
	keys := NewKeymap()
	lb, err := NewLightbox(threeItems(), keys)
	require.NoError(t, err)

	lb.Open(0)
	lb.Open(2)
	assert.Equal(t, 3, keys.Bound())
	assert.Equal(t, 2, lb.Index())

	lb.Close()
	lb.Close()
	assert.Zero(t, keys.Bound())
}

func TestLightboxLeavesOtherBindings(t *testing.T) {
	keys := NewKeymap()
	other := 0
	keys.Bind(KeyEscape, func() { other++ })

	lb, err := NewLightbox(threeItems(), keys)
	require.NoError(t, err)
	lb.Open(0)
	keys.Press(KeyEscape)

	assert.Equal(t, 1, other)
	assert.Equal(t, 1, keys.Bound())
}

func TestRevealIsSingleShot(t *testing.T) {
	obs := NewObserver()
	r := NewReveal(obs, RevealThreshold)
	require.Equal(t, 1, obs.Subscribers())

	obs.Emit(VisibilityEvent{Intersecting: true, Ratio: 0.1})
	assert.False(t, r.Visible())

	obs.Emit(VisibilityEvent{Intersecting: true, Ratio: 0.2})
	assert.True(t, r.Visible())
	assert.Zero(t, obs.Subscribers())

	obs.Emit(VisibilityEvent{Intersecting: false})
	assert.True(t, r.Visible())
}

type recordingPlayer struct{ calls []string }

func (p *recordingPlayer) Play()  { p.calls = append(p.calls, "play") }
func (p *recordingPlayer) Pause() { p.calls = append(p.calls, "pause") }

func TestPlaybackFollowsVisibility(t *testing.T) {
	obs := NewObserver()
	player := &recordingPlayer{}
	pb := NewPlayback(obs, player, PlaybackThreshold)

	obs.Emit(VisibilityEvent{Intersecting: true, Ratio: 0.7})
	obs.Emit(VisibilityEvent{Intersecting: true, Ratio: 0.3})
	obs.Emit(VisibilityEvent{Intersecting: false})
	obs.Emit(VisibilityEvent{Intersecting: true, Ratio: 0.6})
	assert.Equal(t, []string{"play", "pause", "pause", "play"}, player.calls)

	pb.Detach()
	obs.Emit(VisibilityEvent{Intersecting: false})
	assert.Len(t, player.calls, 4)
}
