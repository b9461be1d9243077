package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	registrationsCreated *prometheus.CounterVec
	duplicatesRejected   prometheus.Counter
	allocationConflicts  *prometheus.CounterVec
	confirmationsFailed  prometheus.Counter
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		registrationsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "techfest_registrations_created_total",
			Help: "Total number of registrations stored, by counter scope",
		}, []string{"scope"}),
		duplicatesRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "techfest_duplicate_registrations_rejected_total",
			Help: "Total number of submissions rejected for an already-registered email",
		}),
		allocationConflicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "techfest_allocation_conflicts_total",
			Help: "Total number of registration id races detected and retried, by counter scope",
		}, []string{"scope"}),
		confirmationsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "techfest_confirmation_emails_failed_total",
			Help: "Total number of confirmation emails that failed to send",
		}),
	}
}

// NewNop returns a Metrics that records into an isolated registry. Intended
// for tests, where the default registry would reject duplicate registration.
func NewNop() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registrationsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "techfest_registrations_created_total",
			Help: "Total number of registrations stored, by counter scope",
		}, []string{"scope"}),
		duplicatesRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "techfest_duplicate_registrations_rejected_total",
			Help: "Total number of submissions rejected for an already-registered email",
		}),
		allocationConflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "techfest_allocation_conflicts_total",
			Help: "Total number of registration id races detected and retried, by counter scope",
		}, []string{"scope"}),
		confirmationsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "techfest_confirmation_emails_failed_total",
			Help: "Total number of confirmation emails that failed to send",
		}),
	}
}

// IncRegistrationCreated increments the stored-registration counter for the scope.
func (m *Metrics) IncRegistrationCreated(scope string) {
	m.registrationsCreated.WithLabelValues(scope).Inc()
}

// IncDuplicateRejected increments the duplicate-email rejection counter.
func (m *Metrics) IncDuplicateRejected() {
	m.duplicatesRejected.Inc()
}

// IncAllocationConflict increments the allocation-race counter for the scope.
func (m *Metrics) IncAllocationConflict(scope string) {
	m.allocationConflicts.WithLabelValues(scope).Inc()
}

// IncConfirmationFailed increments the failed-confirmation-email counter.
func (m *Metrics) IncConfirmationFailed() {
	m.confirmationsFailed.Inc()
}
