package seo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfman30/lalalu-site/internal/catalog"
)

func decode(t *testing.T, js string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(js), &doc))
	return doc
}

func TestNewBuilderTrimsSlash(t *testing.T) {
	b := NewBuilder("https://example.test/")
	assert.Equal(t, "https://example.test/about", b.URL("/about"))
	assert.Equal(t, "https://example.test/about", b.URL("about"))

	assert.Equal(t, DefaultBaseURL+"/", NewBuilder("").URL("/"))
}

func TestHome(t *testing.T) {
	m := NewBuilder(DefaultBaseURL).Home()

	assert.Equal(t, "https://lalaluskinlaser.com/", m.Canonical)
	assert.Equal(t, "index,follow", m.Robots)
	assert.Equal(t, "website", m.OG.Type)
	assert.Equal(t, Locale, m.OG.Locale)
	require.Len(t, m.JSONLD, 1)

	doc := decode(t, string(m.JSONLD[0]))
	assert.Equal(t, "Organization", doc["@type"])
	assert.Equal(t, SiteName, doc["name"])
}

func TestServicesOffersUseLowestPrice(t *testing.T) {
	services := catalog.Default().All()
	m := NewBuilder(DefaultBaseURL).Services(services)
	require.Len(t, m.JSONLD, 2)

	crumbs := decode(t, string(m.JSONLD[0]))
	assert.Equal(t, "BreadcrumbList", crumbs["@type"])

	list := decode(t, string(m.JSONLD[1]))
	items := list["itemListElement"].([]any)
	require.Len(t, items, len(services))

	prices := map[string]float64{}
	for i, raw := range items {
		li := raw.(map[string]any)
		assert.EqualValues(t, i+1, li["position"])
		svc := li["item"].(map[string]any)
		offer := svc["offers"].(map[string]any)
		assert.Equal(t, Currency, offer["priceCurrency"])
		assert.Equal(t, "https://lalaluskinlaser.com/book", offer["url"])
		prices[svc["name"].(string)] = offer["price"].(float64)
	}

	// ranged tiers contribute their lower bound
	assert.Equal(t, float64(150), prices["Morpheus8 RF Microneedling"])
	assert.Equal(t, float64(100), prices["HydraFacial"])
}

func TestServiceDetail(t *testing.T) {
	svc, err := catalog.Default().Find("microneedling")
	require.NoError(t, err)

	m := NewBuilder(DefaultBaseURL).ServiceDetail(svc)
	assert.Equal(t, svc.Name+" | Lalalu Skin & Laser", m.Title)
	assert.True(t, strings.HasPrefix(m.Description, "Discover the benefits of "+svc.Name))
	assert.Equal(t, "https://lalaluskinlaser.com/services/microneedling", m.Canonical)
	assert.Equal(t, "product", m.OG.Type)
	assert.Equal(t, "150", m.PriceAmount)
	assert.Equal(t, "CAD", m.PriceCurrency)
}

func TestConcern(t *testing.T) {
	cn, err := catalog.Default().Concern("acne")
	require.NoError(t, err)

	m := NewBuilder(DefaultBaseURL).Concern(cn)
	assert.Equal(t, "https://lalaluskinlaser.com/concerns/acne", m.Canonical)
	require.Len(t, m.JSONLD, 2)
	assert.Equal(t, cn.Intro[0], m.Description)
	assert.Equal(t, "WebPage", decode(t, string(m.JSONLD[1]))["@type"])
}

func TestAboutAndProducts(t *testing.T) {
	b := NewBuilder(DefaultBaseURL)

	about := b.About()
	assert.Equal(t, "About Lalalu Skin & Laser", about.OG.Title)
	assert.Equal(t, "AboutPage", decode(t, string(about.JSONLD[1]))["@type"])

	products := b.Products()
	assert.Equal(t, "https://lalaluskinlaser.com/products", products.Canonical)
	assert.Equal(t, "WebPage", decode(t, string(products.JSONLD[1]))["@type"])
}

func TestNotFoundIsNoindex(t *testing.T) {
	m := NewBuilder(DefaultBaseURL).NotFound("/services/nope")
	assert.Equal(t, "noindex", m.Robots)
	assert.Empty(t, m.Canonical)
}

func TestScriptEscapesMarkup(t *testing.T) {
	js, err := Script(map[string]string{"name": "</script><b>"})
	require.NoError(t, err)
	assert.NotContains(t, string(js), "</script>")
	assert.Contains(t, string(js), `\u003c/script\u003e`)
}
