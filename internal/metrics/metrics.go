// Package metrics counts the office's paperwork with Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/serroba/bureau/internal/form"
)

// Outcome label values.
const (
	OutcomeAccepted = "accepted"
	OutcomeRefused  = "refused"
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
)

// Metrics holds the office counters.
type Metrics struct {
	Drafts     *prometheus.CounterVec
	Signatures *prometheus.CounterVec
	Executions *prometheus.CounterVec
	Robotomies *prometheus.CounterVec
}

// New creates the counters and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Drafts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bureau",
			Name:      "drafts_total",
			Help:      "Forms requested from the intern, by outcome.",
		}, []string{"outcome"}),
		Signatures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bureau",
			Name:      "signatures_total",
			Help:      "Signature attempts, by outcome.",
		}, []string{"outcome"}),
		Executions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bureau",
			Name:      "executions_total",
			Help:      "Execution attempts, by form kind and outcome.",
		}, []string{"kind", "outcome"}),
		Robotomies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bureau",
			Name:      "robotomies_total",
			Help:      "Robotomies performed, by outcome.",
		}, []string{"outcome"}),
	}

	for _, c := range []prometheus.Collector{m.Drafts, m.Signatures, m.Executions, m.Robotomies} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveDraft counts a request to the intern.
func (m *Metrics) ObserveDraft(ok bool) {
	m.Drafts.WithLabelValues(accepted(ok)).Inc()
}

// ObserveSignature counts a signature attempt.
func (m *Metrics) ObserveSignature(ok bool) {
	m.Signatures.WithLabelValues(accepted(ok)).Inc()
}

// ObserveExecution counts an execution attempt for a form kind.
func (m *Metrics) ObserveExecution(kind string, ok bool) {
	m.Executions.WithLabelValues(kind, success(ok)).Inc()
}

// ObserveRobotomy counts a robotomy outcome.
func (m *Metrics) ObserveRobotomy(ok bool) {
	m.Robotomies.WithLabelValues(success(ok)).Inc()
}

// ActionHook returns a callback for form.ActionsConfig.OnOutcome that
// counts robotomy outcomes.
func (m *Metrics) ActionHook() func(kind form.Kind, ok bool) {
	return func(kind form.Kind, ok bool) {
		if kind == form.RobotomyRequest {
			m.ObserveRobotomy(ok)
		}
	}
}

func accepted(ok bool) string {
	if ok {
		return OutcomeAccepted
	}

	return OutcomeRefused
}

func success(ok bool) string {
	if ok {
		return OutcomeSuccess
	}

	return OutcomeFailure
}
