package main

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the site's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	contactSubmissions *prometheus.CounterVec
	providerLatency    prometheus.Histogram
	resumeDownloads    *prometheus.CounterVec
	pageViews          prometheus.Counter
}

func newMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		contactSubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "site_contact_submissions_total",
			Help: "Contact form submissions by outcome",
		}, []string{"outcome"}),
		providerLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "site_email_provider_seconds",
			Help:    "Time spent waiting on the email provider",
			Buckets: prometheus.DefBuckets,
		}),
		resumeDownloads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "site_resume_downloads_total",
			Help: "Resume downloads by file",
		}, []string{"file"}),
		pageViews: factory.NewCounter(prometheus.CounterOpts{
			Name: "site_tracked_page_views_total",
			Help: "Page views recorded by visitor tracking",
		}),
	}
}

func (m *Metrics) ContactSubmission(outcome string) {
	m.contactSubmissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveProvider(d time.Duration) {
	m.providerLatency.Observe(d.Seconds())
}

func (m *Metrics) ResumeDownload(file string) {
	m.resumeDownloads.WithLabelValues(file).Inc()
}

func (m *Metrics) PageView() {
	m.pageViews.Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
