package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for a decision controller.
type Metrics struct {
	// Decisions counts arm choices, partitioned by exploration vs
	// exploitation.
	Decisions *prometheus.CounterVec

	// Updates counts reward observations fed back, per algorithm label.
	Updates *prometheus.CounterVec

	// RewardTotal accumulates observed reward per algorithm label. A gauge
	// rather than a counter: mean-based policies accept negative rewards.
	RewardTotal *prometheus.GaugeVec
}

// Decision mode labels.
const (
	ModeExploration  = "exploration"
	ModeExploitation = "exploitation"
)

// New creates and registers the controller metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Decisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bandit_decisions_total",
				Help: "Number of arm decisions, by exploration vs exploitation",
			},
			[]string{"mode"},
		),
		Updates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bandit_updates_total",
				Help: "Number of reward observations fed back, per algorithm",
			},
			[]string{"algorithm"},
		),
		RewardTotal: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bandit_reward_total",
				Help: "Cumulative observed reward, per algorithm",
			},
			[]string{"algorithm"},
		),
	}
}
