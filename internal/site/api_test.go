package site

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfman30/lalalu-site/internal/catalog"
	"github.com/wolfman30/lalalu-site/internal/promo"
)

func decode(t *testing.T, body []byte, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, v))
}

func TestAPIServicesFilter(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/api/services?category=laser")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var resp servicesResponse
	decode(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, catalog.CategoryLaser, resp.Category)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "microneedling", resp.Services[0].ID)
	assert.Empty(t, resp.Special)
}

func TestAPIServicesDefaultsToAll(t *testing.T) {
	h := newTestHandler(t)

	var resp servicesResponse
	decode(t, get(t, h, "/api/services").Body.Bytes(), &resp)
	assert.Equal(t, catalog.CategoryAll, resp.Category)
	assert.Equal(t, len(catalog.Default().All()), resp.Count)
	require.Len(t, resp.Special, 1)
	assert.Equal(t, "slimming-treatment", resp.Special[0].ID)
}

func TestAPIServicesQueryIsCaseInsensitive(t *testing.T) {
	h := newTestHandler(t)

	var resp servicesResponse
	decode(t, get(t, h, "/api/services?q="+url.QueryEscape("HYDRAFACIAL")).Body.Bytes(), &resp)
	require.NotZero(t, resp.Count)
	for _, s := range append(resp.Services, resp.Special...) {
		assert.True(t, s.Matches("hydrafacial"), s.ID)
	}
}

func TestAPIServicesRejectsUnknownCategory(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/api/services?category=bogus")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp apiError
	decode(t, rec.Body.Bytes(), &resp)
	assert.Contains(t, resp.Error, "unknown category")
}

func TestAPIServiceDetail(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/api/services/slimming-treatment")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp serviceResponse
	decode(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, "slimming-treatment", resp.Service.ID)
	require.Len(t, resp.Pricing, 3)
	assert.Equal(t, "One session", resp.Pricing[0].Name)
	assert.Equal(t, "$100", resp.Pricing[0].Price)
	assert.NotEmpty(t, resp.Groups)
	assert.False(t, resp.Aftercare.IsFallback)
}

func TestAPIServiceNotFound(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/api/services/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp apiError
	decode(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, "service not found", resp.Error)
}

func TestAPIConcerns(t *testing.T) {
	h := newTestHandler(t)

	var list struct {
		Concerns []catalog.Concern `json:"concerns"`
	}
	decode(t, get(t, h, "/api/concerns").Body.Bytes(), &list)
	assert.Len(t, list.Concerns, len(catalog.Default().Concerns()))

	var one concernResponse
	rec := get(t, h, "/api/concerns/aging")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec.Body.Bytes(), &one)
	assert.Equal(t, "aging", one.Concern.Slug)
	assert.LessOrEqual(t, len(one.Services), len(one.Concern.RecommendedServiceIDs))

	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/concerns/nope").Code)
}

func TestAPIPromoFollowsSession(t *testing.T) {
	h := newTestHandler(t)

	first := get(t, h, "/api/promo")
	var status promoStatus
	decode(t, first.Body.Bytes(), &status)
	assert.True(t, status.Active)
	assert.True(t, status.Visible)
	require.NotNil(t, status.Offer)
	assert.Len(t, status.Offer.Offers, 3)

	sid := cookieNamed(first, sessionCookie)
	require.NotNil(t, sid)
	dismiss := do(t, h, http.MethodPost, "/promo/dismiss", url.Values{"next": {"/"}}, sid)
	marker := cookieNamed(dismiss, promo.DefaultKey)
	require.NotNil(t, marker)

	status = promoStatus{}
	decode(t, get(t, h, "/api/promo", sid, marker).Body.Bytes(), &status)
	assert.True(t, status.Active)
	assert.False(t, status.Visible)
	assert.Nil(t, status.Offer)
}

func TestAPIUnknownRoute(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/api/nothing-here")
	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp apiError
	decode(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, "not found", resp.Error)
}
