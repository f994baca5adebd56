package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Booking outcomes.
const (
	BookingCreated         = "created"
	BookingSlotUnavailable = "slot_unavailable"
	BookingRejected        = "rejected"
	BookingFailed          = "failed"
	BookingRetried         = "retried"
)

type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	bookings     *prometheus.CounterVec
	availability prometheus.Counter
}

func New(reg prometheus.Registerer, service string) *Metrics {
	f := promauto.With(reg)
	labels := prometheus.Labels{"service": service}

	return &Metrics{
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "HTTP requests by method, route and status.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookings: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_total",
			Help:        "Booking attempts by outcome.",
			ConstLabels: labels,
		}, []string{"outcome"}),
		availability: f.NewCounter(prometheus.CounterOpts{
			Name:        "availability_queries_total",
			Help:        "Availability queries served.",
			ConstLabels: labels,
		}),
	}
}

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) BookingOutcome(outcome string) {
	if m == nil {
		return
	}
	m.bookings.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AvailabilityQuery() {
	if m == nil {
		return
	}
	m.availability.Inc()
}

// Bookings exposes the counter for assertions.
func (m *Metrics) Bookings() *prometheus.CounterVec {
	return m.bookings
}

func (m *Metrics) Availability() prometheus.Counter {
	return m.availability
}

func (m *Metrics) HTTPRequests() *prometheus.CounterVec {
	return m.httpRequests
}
