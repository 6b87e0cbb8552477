// Package metrics provides Prometheus instrumentation for recruitment workflows.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recruitment tracks request volume, resolutions and slot contention.
type Recruitment struct {
	RequestsCreated      *prometheus.CounterVec
	RequestsResolved     *prometheus.CounterVec
	SlotConflicts        prometheus.Counter
	RespondDuration      prometheus.Histogram
	ApplicationsDecided  *prometheus.CounterVec
	EventPublishFailures prometheus.Counter
}

// New registers all recruitment metrics with reg.
func New(reg prometheus.Registerer) *Recruitment {
	factory := promauto.With(reg)
	return &Recruitment{
		RequestsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "team_requests_created_total",
			Help: "Recruitment requests created, by kind",
		}, []string{"kind"}),
		RequestsResolved: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "team_requests_resolved_total",
			Help: "Recruitment requests resolved, by kind and final status",
		}, []string{"kind", "status"}),
		SlotConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "team_slot_conflicts_total",
			Help: "Accepts that lost the race for a team's last slot",
		}),
		RespondDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "team_respond_duration_seconds",
			Help:    "Duration of respond operations including transaction retries",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ApplicationsDecided: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "team_applications_decided_total",
			Help: "Competition applications decided, by status",
		}, []string{"status"}),
		EventPublishFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "team_events_publish_failures_total",
			Help: "Recruitment events that could not be delivered",
		}),
	}
}

// IncRequestCreated records a new recruitment request.
func (m *Recruitment) IncRequestCreated(kind string) {
	m.RequestsCreated.WithLabelValues(kind).Inc()
}

// IncRequestResolved records a request leaving the pending state.
func (m *Recruitment) IncRequestResolved(kind, status string) {
	m.RequestsResolved.WithLabelValues(kind, status).Inc()
}

// IncSlotConflict records an accept rejected because the team was full.
func (m *Recruitment) IncSlotConflict() {
	m.SlotConflicts.Inc()
}

// ObserveRespond records the duration of a respond operation.
// Call with time.Now() at the start of the operation.
func (m *Recruitment) ObserveRespond(start time.Time) {
	m.RespondDuration.Observe(time.Since(start).Seconds())
}

// IncApplicationDecided records an application decision.
func (m *Recruitment) IncApplicationDecided(status string) {
	m.ApplicationsDecided.WithLabelValues(status).Inc()
}

// IncEventPublishFailure records an event that failed to publish.
func (m *Recruitment) IncEventPublishFailure() {
	m.EventPublishFailures.Inc()
}
