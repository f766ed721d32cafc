package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
)

type Metrics struct {
	Registry *prometheus.Registry
	Triggers *prometheus.CounterVec
	Lookups  *prometheus.CounterVec
	Ignored  prometheus.Counter
	Records  prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Triggers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "accessor",
			Name:      "triggers_total",
			Help:      "Recognized signals handled by the dispatcher.",
		}, []string{"signal"}),
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "accessor",
			Name:      "lookups_total",
			Help:      "Registry lookups by result.",
		}, []string{"result"}),
		Ignored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "accessor",
			Name:      "ignored_signals_total",
			Help:      "Signals received with no trigger mapping.",
		}),
		Records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "accessor",
			Name:      "registry_records",
			Help:      "Instances currently registered.",
		}),
	}
	m.Registry.MustRegister(
		m.Triggers,
		m.Lookups,
		m.Ignored,
		m.Records,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveTrigger(signal string) {
	m.Triggers.WithLabelValues(signal).Inc()
}

func (m *Metrics) ObserveLookup(found bool) {
	if found {
		m.Lookups.WithLabelValues(ResultFound).Inc()
		return
	}
	m.Lookups.WithLabelValues(ResultNotFound).Inc()
}

func (m *Metrics) ObserveIgnored() {
	m.Ignored.Inc()
}

func (m *Metrics) SetRecords(n int) {
	m.Records.Set(float64(n))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
