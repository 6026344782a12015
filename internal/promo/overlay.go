package promo

import (
	"context"
	"fmt"
	"time"

	"github.com/wolfman30/lalalu-site/pkg/logging"
)

// State is the overlay's visibility.
type State int

const (
	Hidden State = iota
	Shown
)

func (s State) String() string {
	if s == Shown {
		return "shown"
	}
	return "hidden"
}

// Overlay decides whether one session sees the campaign on one page load.
// It starts hidden and can be shown at most once.
type Overlay struct {
	campaign  Campaign
	store     SessionStore
	sessionID string
	logger    *logging.Logger

	state   State
	mounted bool
}

// NewOverlay returns a hidden overlay for sessionID.
func NewOverlay(c Campaign, store SessionStore, sessionID string, logger *logging.Logger) *Overlay {
	if logger == nil {
		logger = logging.Default()
	}
	return &Overlay{campaign: c, store: store, sessionID: sessionID, logger: logger}
}

// Mount shows the overlay when the campaign is running at now and the
// session has not dismissed it yet. Only the first call has an effect. A
// failing store keeps the overlay hidden.
func (o *Overlay) Mount(ctx context.Context, now time.Time) State {
	if o.mounted {
		return o.state
	}
	o.mounted = true

	if !o.campaign.Active(now) {
		return o.state
	}

	seen, err := o.store.Seen(ctx, o.sessionID, o.campaign.Key)
	if err != nil {
		o.logger.Warn("promo: session lookup failed, overlay hidden",
			"campaign", o.campaign.Key,
			"session_id", o.sessionID,
			"error", err,
		)
		return o.state
	}
	if !seen {
		o.state = Shown
	}
	return o.state
}

// Dismiss hides the overlay and records the session marker. It is used for
// both the close control and the call to action.
func (o *Overlay) Dismiss(ctx context.Context) error {
	o.state = Hidden
	if err := o.store.MarkSeen(ctx, o.sessionID, o.campaign.Key); err != nil {
		return fmt.Errorf("promo: dismiss %s: %w", o.campaign.Key, err)
	}
	return nil
}

// State returns the current visibility.
func (o *Overlay) State() State { return o.state }

// Visible reports whether the overlay is shown.
func (o *Overlay) Visible() bool { return o.state == Shown }

// Campaign returns the campaign the overlay presents.
func (o *Overlay) Campaign() Campaign { return o.campaign }
