package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts rendered documents and email attempts. A nil *Metrics records nothing.
type Metrics struct {
	rendered      *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

// NewMetrics creates the acta counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		rendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "acta_documents_rendered_total",
				Help: "Total number of acta render attempts by result.",
			},
			[]string{"result"},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "acta_notifications_total",
				Help: "Total number of acta email attempts by result.",
			},
			[]string{"result"},
		),
	}

	for _, c := range []prometheus.Collector{m.rendered, m.notifications} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeRender(result string) {
	if m == nil {
		return
	}
	m.rendered.WithLabelValues(result).Inc()
}

func (m *Metrics) observeNotify(result string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(result).Inc()
}
