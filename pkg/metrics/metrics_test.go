package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_BusinessCounters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "transfer-test")

	m.ReservationCreated("web", "round-trip")
	m.ReservationCreated("web", "round-trip")
	m.TransitionObserved("confirm", "accepted")
	m.VoucherRendered("pdf")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReservationsCreated.WithLabelValues("web", "round-trip")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationTransitions.WithLabelValues("confirm", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.VouchersRendered.WithLabelValues("pdf")))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ReservationCreated("web", "one-way")
		m.TransitionObserved("cancel", "rejected")
		m.VoucherRendered("email")
	})
}
