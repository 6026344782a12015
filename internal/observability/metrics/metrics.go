package metrics

import "github.com/prometheus/client_golang/prometheus"

// SiteMetrics exposes counters/histograms for page and API traffic.
type SiteMetrics struct {
	pageViews     *prometheus.CounterVec
	pageLatency   *prometheus.HistogramVec
	filterQueries *prometheus.CounterVec
	promoTotal    *prometheus.CounterVec
	notFound      *prometheus.CounterVec
	mediaFetches  *prometheus.CounterVec
}

func NewSiteMetrics(reg prometheus.Registerer) *SiteMetrics {
	m := &SiteMetrics{
		pageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lalalu",
			Subsystem: "site",
			Name:      "page_views_total",
			Help:      "Total rendered pages and API responses",
		}, []string{"page", "status"}),
		pageLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lalalu",
			Subsystem: "site",
			Name:      "page_latency_seconds",
			Help:      "Latency of page rendering",
			Buckets:   prometheus.DefBuckets,
		}, []string{"page"}),
		filterQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lalalu",
			Subsystem: "site",
			Name:      "filter_queries_total",
			Help:      "Service listing filters by category and whether a search term was used",
		}, []string{"category", "has_query"}),
		promoTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lalalu",
			Subsystem: "promo",
			Name:      "transitions_total",
			Help:      "Promo overlay state transitions",
		}, []string{"campaign", "state"}),
		notFound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lalalu",
			Subsystem: "site",
			Name:      "not_found_total",
			Help:      "Lookups for unknown services or concerns",
		}, []string{"kind"}),
		mediaFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lalalu",
			Subsystem: "media",
			Name:      "fetch_total",
			Help:      "Media object fetches by source and result",
		}, []string{"source", "result"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.pageViews, m.pageLatency, m.filterQueries, m.promoTotal, m.notFound, m.mediaFetches)
	return m
}

func (m *SiteMetrics) ObservePage(page string, status int) {
	if m == nil {
		return
	}
	m.pageViews.WithLabelValues(page, statusClass(status)).Inc()
}

func (m *SiteMetrics) ObservePageLatency(page string, seconds float64) {
	if m == nil {
		return
	}
	m.pageLatency.WithLabelValues(page).Observe(seconds)
}

func (m *SiteMetrics) ObserveFilter(category string, hasQuery bool) {
	if m == nil {
		return
	}
	label := "false"
	if hasQuery {
		label = "true"
	}
	m.filterQueries.WithLabelValues(category, label).Inc()
}

func (m *SiteMetrics) ObservePromo(campaign, state string) {
	if m == nil {
		return
	}
	m.promoTotal.WithLabelValues(campaign, state).Inc()
}

func (m *SiteMetrics) ObserveNotFound(kind string) {
	if m == nil {
		return
	}
	m.notFound.WithLabelValues(kind).Inc()
}

func (m *SiteMetrics) ObserveMediaFetch(source, result string) {
	if m == nil {
		return
	}
	m.mediaFetches.WithLabelValues(source, result).Inc()
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
