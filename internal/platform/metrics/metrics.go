package metrics

import (
	"net/http"

	"infusion-rate-calculator/internal/domain/drugs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics usa un registry propio (no el global) para poder crear varios routers en tests.
type Metrics struct {
	registry *prometheus.Registry

	calculations *prometheus.CounterVec
	failures     *prometheus.CounterVec
	nonStandard  *prometheus.CounterVec
}

var _ drugs.Observer = (*Metrics)(nil)

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "infusion",
			Name:      "calculations_total",
			Help:      "Infusion rate calculations by drug and dose status.",
		}, []string{"drug", "dose_status"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "infusion",
			Name:      "calculation_failures_total",
			Help:      "Rejected calculations by drug and reason.",
		}, []string{"drug", "reason"}),
		nonStandard: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "infusion",
			Name:      "non_standard_preparations_total",
			Help:      "Calculations done with a preparation other than the standard one.",
		}, []string{"drug"}),
	}

	reg.MustRegister(m.calculations, m.failures, m.nonStandard)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) CalculationSucceeded(drugID string, status drugs.DoseStatus, standardPreparation bool) {
	m.calculations.WithLabelValues(drugID, string(status)).Inc()
	if !standardPreparation {
		m.nonStandard.WithLabelValues(drugID).Inc()
	}
}

func (m *Metrics) CalculationFailed(drugID string, kind string) {
	if drugID == "" {
		drugID = "unknown"
	}
	m.failures.WithLabelValues(drugID, kind).Inc()
}
