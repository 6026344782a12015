package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if matches(m, labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func matches(m *dto.Metric, labels map[string]string) bool {
	found := 0
	for _, lp := range m.GetLabel() {
		if v, ok := labels[lp.GetName()]; ok {
			if v != lp.GetValue() {
				return false
			}
			found++
		}
	}
	return found == len(labels)
}

func TestSiteMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSiteMetrics(reg)

	m.ObservePage("services", 200)
	m.ObservePage("services", 204)
	m.ObservePage("service_detail", 404)
	m.ObservePageLatency("services", 0.02)
	m.ObserveFilter("facial", true)
	m.ObservePromo("lalalu_new_year_2026_seen", "shown")
	m.ObserveNotFound("service")
	m.ObserveMediaFetch("s3", "hit")

	if got := counterValue(t, reg, "lalalu_site_page_views_total", map[string]string{"page": "services", "status": "2xx"}); got != 2 {
		t.Errorf("services 2xx: got %v, want 2", got)
	}
	if got := counterValue(t, reg, "lalalu_site_page_views_total", map[string]string{"page": "service_detail", "status": "4xx"}); got != 1 {
		t.Errorf("detail 4xx: got %v, want 1", got)
	}
	if got := counterValue(t, reg, "lalalu_site_filter_queries_total", map[string]string{"category": "facial", "has_query": "true"}); got != 1 {
		t.Errorf("filter: got %v, want 1", got)
	}
	if got := counterValue(t, reg, "lalalu_promo_transitions_total", map[string]string{"state": "shown"}); got != 1 {
		t.Errorf("promo: got %v, want 1", got)
	}
	if got := counterValue(t, reg, "lalalu_media_fetch_total", map[string]string{"source": "s3", "result": "hit"}); got != 1 {
		t.Errorf("media: got %v, want 1", got)
	}
}

func TestSiteMetricsNilSafe(t *testing.T) {
	var m *SiteMetrics
	m.ObservePage("home", 200)
	m.ObservePageLatency("home", 0.1)
	m.ObserveFilter("all", false)
	m.ObservePromo("k", "hidden")
	m.ObserveNotFound("concern")
	m.ObserveMediaFetch("local", "miss")
}

func TestStatusClass(t *testing.T) {
	tests := map[int]string{200: "2xx", 303: "3xx", 400: "4xx", 404: "4xx", 500: "5xx", 503: "5xx"}
	for status, want := range tests {
		if got := statusClass(status); got != want {
			t.Errorf("statusClass(%d) = %q, want %q", status, got, want)
		}
	}
}
