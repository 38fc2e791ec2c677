package session

import (
	"github.com/prometheus/client_golang/prometheus"
)

var badgesUnlocked = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cashfy_badges_unlocked_total",
		Help: "How many badges were unlocked and announced, partitioned by badge.",
	},
	[]string{"badge"},
)

var xpAwarded = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cashfy_xp_awarded_total",
		Help: "How much XP was awarded, partitioned by source.",
	},
	[]string{"source"},
)

// Collectors returns the metrics of the gamification engine and a gauge
// of the number of sessions loaded by the manager.
func (m *Manager) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		badgesUnlocked,
		xpAwarded,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "cashfy_sessions",
			Help: "How many user sessions are loaded.",
		}, func() float64 {
			return float64(m.Len())
		}),
	}
}
