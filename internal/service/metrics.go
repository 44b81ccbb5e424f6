package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	badges        *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		badges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubcert_badges_total",
				Help: "Total number of badge generation requests by result.",
			},
			[]string{"result"},
		),
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "clubcert_badge_stage_duration_seconds",
				Help:    "Duration of each badge pipeline stage.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
	}

	for _, c := range []prometheus.Collector{m.badges, m.stageDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// A nil *Metrics records nothing.
func (m *Metrics) observeStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (m *Metrics) countBadge(err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.badges.WithLabelValues(result).Inc()
}
