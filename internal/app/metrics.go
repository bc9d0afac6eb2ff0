package app

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/dailywisdom/internal/ports"
)

// Metrics holds the application-level collectors.
type Metrics struct {
	resolutions *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors with reg.
// A nil reg uses prometheus.DefaultRegisterer. Registering twice against the
// same registerer reuses the existing collector.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	resolutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dailywisdom",
		Name:      "quote_resolutions_total",
		Help:      "Quote-of-day resolutions by the tier that answered.",
	}, []string{"source"})

	if err := reg.Register(resolutions); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				resolutions = existing
			}
		}
	}

	return &Metrics{resolutions: resolutions}
}

func (m *Metrics) observeResolution(source ports.QuoteSource) {
	if m == nil {
		return
	}

	m.resolutions.WithLabelValues(string(source)).Inc()
}
