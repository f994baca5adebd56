package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBookingOutcome(t *testing.T) {
	m := New(prometheus.NewRegistry(), "test")

	m.BookingOutcome(BookingCreated)
	m.BookingOutcome(BookingCreated)
	m.BookingOutcome(BookingSlotUnavailable)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Bookings().WithLabelValues(BookingCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Bookings().WithLabelValues(BookingSlotUnavailable)))
}

func TestObserveHTTP(t *testing.T) {
	m := New(prometheus.NewRegistry(), "test")

	m.ObserveHTTP(http.MethodGet, "/health", http.StatusOK, 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests().WithLabelValues(http.MethodGet, "/health", "200")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.BookingOutcome(BookingCreated)
		m.ObserveHTTP(http.MethodGet, "/", 200, time.Millisecond)
		m.AvailabilityQuery()
	})
}
