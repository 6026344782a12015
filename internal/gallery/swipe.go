package gallery

import "math"

// DefaultSwipeThreshold is the horizontal distance in pixels a touch must
// travel before it counts as a swipe.
const DefaultSwipeThreshold = 50

// SwipeAction is what a completed touch did to the carousel.
type SwipeAction int

const (
	SwipeNone SwipeAction = iota
	SwipeNext
	SwipePrevious
)

func (a SwipeAction) String() string {
	switch a {
	case SwipeNext:
		return "next"
	case SwipePrevious:
		return "previous"
	default:
		return "none"
	}
}

// Swipe turns touch start/end coordinates into navigation.
type Swipe struct {
	// Threshold is the minimum delta magnitude, exclusive.
	Threshold float64

	target  Navigator
	startX  float64
	tracked bool
}

// NewSwipe returns a gesture translator driving target with the default threshold.
func NewSwipe(target Navigator) *Swipe {
	return &Swipe{Threshold: DefaultSwipeThreshold, target: target}
}

// Start records the horizontal coordinate where the touch began.
func (s *Swipe) Start(x float64) {
	s.startX = x
	s.tracked = true
}

// End completes the gesture at x. A leftward swipe (finger moving toward
// smaller x) advances, a rightward one goes back. Gesture state is cleared
// whatever the outcome; End without Start does nothing.
func (s *Swipe) End(x float64) SwipeAction {
	if !s.tracked {
		return SwipeNone
	}
	delta := s.startX - x
	s.tracked = false
	s.startX = 0

	if math.Abs(delta) <= s.Threshold {
		return SwipeNone
	}
	if delta > 0 {
		s.target.Next()
		return SwipeNext
	}
	s.target.Previous()
	return SwipePrevious
}
