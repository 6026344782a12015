package site

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"github.com/wolfman30/lalalu-site/internal/http/middleware"
	"github.com/wolfman30/lalalu-site/internal/promo"
)

// StoreFunc returns the promo marker store for one request.
type StoreFunc func(w http.ResponseWriter, r *http.Request) promo.SessionStore

// SharedStore serves every request from the same store, such as a
// promo.RedisStore.
func SharedStore(store promo.SessionStore) StoreFunc {
	return func(http.ResponseWriter, *http.Request) promo.SessionStore { return store }
}

// CookieStores keeps the marker in a browser-session cookie named after the
// campaign key. The cookie holds the session ID it was written for, so a new
// browser session sees the campaign again.
func CookieStores(secure bool) StoreFunc {
	return func(w http.ResponseWriter, r *http.Request) promo.SessionStore {
		return &cookieStore{w: w, r: r, secure: secure}
	}
}

type cookieStore struct {
	w      http.ResponseWriter
	r      *http.Request
	secure bool
}

func (c *cookieStore) Seen(_ context.Context, sessionID, key string) (bool, error) {
	ck, err := c.r.Cookie(key)
	if err != nil {
		return false, nil
	}
	return sessionID != "" && ck.Value == sessionID, nil
}

func (c *cookieStore) MarkSeen(_ context.Context, sessionID, key string) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

type promoView struct {
	Campaign promo.Campaign
	// Next is where the close control returns to.
	Next string
}

func (s *Server) overlay(w http.ResponseWriter, r *http.Request) *promo.Overlay {
	return promo.NewOverlay(s.campaign, s.stores(w, r), middleware.SessionID(r.Context()), s.logger)
}

// mountPromo returns the overlay content when this page load should show it.
func (s *Server) mountPromo(w http.ResponseWriter, r *http.Request) *promoView {
	o := s.overlay(w, r)
	if o.Mount(r.Context(), s.now()) != promo.Shown {
		return nil
	}
	s.metrics.ObservePromo(s.campaign.Key, promo.Shown.String())
	return &promoView{Campaign: o.Campaign(), Next: r.URL.RequestURI()}
}

// DismissPromo handles the overlay's close control and call to action.
// POST /promo/dismiss
func (s *Server) DismissPromo(w http.ResponseWriter, r *http.Request) {
	next := "/"
	if err := r.ParseForm(); err == nil {
		next = s.safeNext(r.PostFormValue("next"))
	}

	o := s.overlay(w, r)
	if err := o.Dismiss(r.Context()); err != nil {
		s.logger.Warn("promo dismiss failed", "campaign", s.campaign.Key, "error", err)
	} else {
		s.metrics.ObservePromo(s.campaign.Key, "dismissed")
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// safeNext accepts local paths and the booking link; anything else goes home.
func (s *Server) safeNext(raw string) string {
	switch {
	case raw == "":
		return "/"
	case s.bookingURL != "" && raw == s.bookingURL:
		return raw
	case strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") && !strings.HasPrefix(raw, "/\\"):
		return raw
	}
	return "/"
}

type promoStatus struct {
	Key     string          `json:"key"`
	Active  bool            `json:"active"`
	Visible bool            `json:"visible"`
	EndsAt  time.Time       `json:"ends_at"`
	Offer   *promo.Campaign `json:"campaign,omitempty"`
}

// APIPromo reports whether the caller's session would see the overlay.
// GET /api/promo
func (s *Server) APIPromo(w http.ResponseWriter, r *http.Request) {
	o := s.overlay(w, r)
	now := s.now()
	status := promoStatus{
		Key:     s.campaign.Key,
		Active:  s.campaign.Active(now),
		Visible: o.Mount(r.Context(), now) == promo.Shown,
		EndsAt:  s.campaign.EndsAt,
	}
	if status.Visible {
		c := o.Campaign()
		status.Offer = &c
	}
	render.JSON(w, r, status)
}
