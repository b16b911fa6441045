package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portfolio"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	contactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Contact form submissions by outcome.",
	}, []string{"outcome"})

	seedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seed_records_total",
		Help:      "Reference records visited by seeding, split into created and existing.",
	}, []string{"kind", "result"})

	mediaAttachments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_attachments_total",
		Help:      "Media import results by status.",
	}, []string{"status"})

	homepageCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "homepage_cache_lookups_total",
		Help:      "Homepage cache lookups by result.",
	}, []string{"result"})
)

// Contact outcomes
const (
	ContactAccepted = "accepted"
	ContactRejected = "rejected"
)

// Cache lookup results
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func IncContact(outcome string) {
	contactSubmissions.WithLabelValues(outcome).Inc()
}

func AddSeed(kind string, created, existing int) {
	if created > 0 {
		seedRecords.WithLabelValues(kind, "created").Add(float64(created))
	}
	if existing > 0 {
		seedRecords.WithLabelValues(kind, "existing").Add(float64(existing))
	}
}

func IncMedia(status string) {
	mediaAttachments.WithLabelValues(status).Inc()
}

func IncCacheLookup(result string) {
	homepageCache.WithLabelValues(result).Inc()
}

// Handler exposes the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}
