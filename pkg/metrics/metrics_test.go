package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, c.Write(&metric))
	return metric.GetCounter().GetValue()
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/x", 200, time.Millisecond)
		m.ObserveDBQuery("SELECT", time.Millisecond, nil)
		m.SetDBPoolStats(1, 1, 0, 0)
		m.ReservationCreated("guest", "pending")
		m.ReservationConflict("precheck")
		m.StatusTransition("completed", 3)
		m.ReminderSent(true)
	})
}

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.ReservationConflict("constraint")
	m.ReservationConflict("constraint")
	m.StatusTransition("completed", 5)
	m.StatusTransition("completed", 0)
	m.ObserveDBQuery("INSERT", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, counterValue(t, m.ReservationConflicts.WithLabelValues("constraint")))
	assert.Equal(t, 5.0, counterValue(t, m.StatusTransitions.WithLabelValues("completed")))
	assert.Equal(t, 1.0, counterValue(t, m.DBQueriesTotal.WithLabelValues("INSERT", "error")))
}
