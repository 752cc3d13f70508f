package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ScrapesTotal        *prometheus.CounterVec
	ScrapeDuration      prometheus.Histogram
	PagesPerScrape      prometheus.Histogram
	ArticlesCollected   prometheus.Gauge
)

func Init() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	ScrapesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scrapes_total",
			Help: "Total number of scrape-and-validate runs.",
		},
		[]string{"status"}, // success, failure
	)

	ScrapeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scrape_duration_seconds",
			Help:    "Duration of complete scrape-and-validate runs.",
			Buckets: []float64{5, 10, 30, 60, 120, 300},
		},
	)

	PagesPerScrape = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scrape_pages_total",
			Help:    "Pages visited per scrape run.",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		},
	)

	ArticlesCollected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "scrape_articles_collected",
			Help: "Articles collected by the most recent scrape run.",
		},
	)
}
