package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecruitment(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncRequestCreated("invite")
	m.IncRequestCreated("invite")
	m.IncRequestCreated("join_request")
	m.IncRequestResolved("invite", "accepted")
	m.IncSlotConflict()
	m.IncApplicationDecided("approved")
	m.IncEventPublishFailure()
	m.ObserveRespond(time.Now())

	assert.InDelta(t, 2, testutil.ToFloat64(m.RequestsCreated.WithLabelValues("invite")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestsCreated.WithLabelValues("join_request")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestsResolved.WithLabelValues("invite", "accepted")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.SlotConflicts), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ApplicationsDecided.WithLabelValues("approved")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.EventPublishFailures), 0)

	count, err := testutil.GatherAndCount(reg, "team_respond_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
